// Package raster draws signature paths into RGBA images.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"sigpad/pkg/graphics"
	pathpkg "sigpad/pkg/path"

	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	// Default background
	background color.Color
}

// NewCanvas creates a new canvas with the given dimensions, filled white.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.White,
	}
	c.Clear()
	return c
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// SetBackground sets the background color used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Fill paints the interior of a closed outline with the given color.
// Overlapping subpaths must share a winding direction, otherwise their
// coverage cancels.
func (c *Canvas) Fill(path *graphics.Path, col color.Color) {
	if path.IsEmpty() || c.width == 0 || c.height == 0 {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	r.DrawOp = draw.Over
	pathpkg.ToVector(path, r)
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Stroke draws the outline of a path with the given style.
func (c *Canvas) Stroke(path *graphics.Path, col color.Color, style graphics.StrokeStyle) {
	if path.IsEmpty() || style.Width <= 0 {
		return
	}
	c.Fill(strokeToPath(path, style), col)
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	path := graphics.NewPath()
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	c.Stroke(path, col, graphics.StrokeStyle{Width: width})
}
