package raster

import (
	"image"
	"image/color"
	"math"

	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale is the number of device pixels per surface unit. Geometry and
	// stroke widths are both multiplied by it.
	// Default: 1.0
	Scale float64

	// Background sets the background color.
	// Default: white
	Background color.Color

	// Transparent leaves the background clear (ignores Background).
	// Default: false
	Transparent bool

	// Signature holds the path options passed to PathsForSurface.
	Signature []signature.Option
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:      1.0,
		Background: color.White,
	}
}

// Renderer rasterizes signatures.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a new renderer.
func NewRenderer(opts RenderOptions) *Renderer {
	if !(opts.Scale > 0) || math.IsInf(opts.Scale, 0) {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	return &Renderer{opts: opts}
}

// Options returns the renderer's options.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// SetScale sets the device pixel density.
func (r *Renderer) SetScale(scale float64) {
	if scale > 0 && !math.IsInf(scale, 0) {
		r.opts.Scale = scale
	}
}

// PixelSize returns the image bounds a surface of the given size renders to.
func (r *Renderer) PixelSize(size graphics.Size) (int, int) {
	if size.IsDegenerate() {
		return 0, 0
	}
	return int(math.Ceil(size.Width * r.opts.Scale)), int(math.Ceil(size.Height * r.opts.Scale))
}

// NewCanvas returns a cleared canvas for a surface of the given size.
func (r *Renderer) NewCanvas(size graphics.Size) *Canvas {
	w, h := r.PixelSize(size)
	c := NewCanvas(w, h)
	if r.opts.Transparent {
		c.SetBackground(color.Transparent)
	} else {
		c.SetBackground(r.opts.Background)
	}
	c.Clear()
	return c
}

// Draw strokes segments onto the canvas in order, scaling from surface
// units to device pixels.
func (r *Renderer) Draw(c *Canvas, segs []signature.StrokeSegment) {
	m := graphics.Scale(r.opts.Scale, r.opts.Scale)
	for _, seg := range segs {
		if seg.Path == nil {
			continue
		}
		style := graphics.PenStyle(seg.Width * m.ScaleFactor())
		if seg.Guideline {
			style = graphics.StrokeStyle{Width: seg.Width * m.ScaleFactor()}
		}
		c.Stroke(seg.Path.Transform(m), seg.Color, style)
	}
}

// RenderSignature renders sig into a surface of the given size.
func (r *Renderer) RenderSignature(sig *signature.Signature, size graphics.Size) *image.RGBA {
	c := r.NewCanvas(size)
	r.Draw(c, sig.PathsForSurface(size, r.opts.Signature...))
	return c.Image()
}
