package gui

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sigpad/pkg/graphics"
	"sigpad/pkg/raster"
	"sigpad/pkg/signature"
)

// SignaturePad is the drawing surface. Pointer input is recorded in the
// signature's normalized space, so the pad can be resized at any time
// without distorting what was already drawn.
type SignaturePad struct {
	widget.BaseWidget

	mu   sync.Mutex
	sig  *signature.Signature
	opts signature.Options

	pen   color.NRGBA
	width float64

	drawing bool
	lastPos fyne.Position

	raster *canvas.Raster

	// OnChanged is called after every recorded point and after Clear.
	OnChanged func()
}

var _ fyne.Widget = (*SignaturePad)(nil)
var _ fyne.Draggable = (*SignaturePad)(nil)
var _ desktop.Mouseable = (*SignaturePad)(nil)

// NewSignaturePad creates a pad drawing into sig.
func NewSignaturePad(sig *signature.Signature) *SignaturePad {
	p := &SignaturePad{
		sig:   sig,
		opts:  signature.DefaultOptions(),
		pen:   signature.DefaultColor,
		width: signature.DefaultWidth,
	}
	p.ExtendBaseWidget(p)

	p.raster = canvas.NewRaster(p.render)
	p.raster.SetMinSize(fyne.NewSize(300, 150))
	return p
}

// Signature returns the signature the pad draws into.
func (p *SignaturePad) Signature() *signature.Signature {
	return p.sig
}

// SetPen sets the color and width used by the next stroke.
func (p *SignaturePad) SetPen(c color.NRGBA, width float64) {
	p.mu.Lock()
	p.pen, p.width = c, width
	p.mu.Unlock()
}

// Pen returns the current pen.
func (p *SignaturePad) Pen() (color.NRGBA, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pen, p.width
}

// SetPathOptions changes how strokes are drawn.
func (p *SignaturePad) SetPathOptions(opts signature.Options) {
	p.mu.Lock()
	p.opts = opts
	p.mu.Unlock()
	p.Refresh()
}

// PathOptions returns the current path options.
func (p *SignaturePad) PathOptions() signature.Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts
}

// Clear erases the signature.
func (p *SignaturePad) Clear() {
	p.mu.Lock()
	p.sig.Clear()
	p.drawing = false
	p.mu.Unlock()
	p.changed()
}

// SurfaceSize returns the pad size in surface units.
func (p *SignaturePad) SurfaceSize() graphics.Size {
	s := p.Size()
	return graphics.Sz(float64(s.Width), float64(s.Height))
}

func (p *SignaturePad) addPoint(pos fyne.Position) {
	p.sig.AddPoint(graphics.Pt(float64(pos.X), float64(pos.Y)), p.SurfaceSize())
	p.lastPos = pos
}

func (p *SignaturePad) changed() {
	p.Refresh()
	if p.OnChanged != nil {
		p.OnChanged()
	}
}

// MouseDown starts a stroke with the current pen.
func (p *SignaturePad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mu.Lock()
	p.drawing = true
	p.sig.StartNewStroke(p.pen, p.width)
	p.addPoint(e.Position)
	p.mu.Unlock()
	p.changed()
}

// Dragged records a point of the current stroke.
func (p *SignaturePad) Dragged(e *fyne.DragEvent) {
	p.mu.Lock()
	if !p.drawing {
		p.mu.Unlock()
		return
	}
	p.addPoint(e.Position)
	p.mu.Unlock()
	p.changed()
}

// MouseUp records the final point of the stroke.
func (p *SignaturePad) MouseUp(e *desktop.MouseEvent) {
	p.mu.Lock()
	if !p.drawing {
		p.mu.Unlock()
		return
	}
	p.addPoint(e.Position)
	p.drawing = false
	p.mu.Unlock()
	p.changed()
}

// DragEnd finishes the stroke when the release was not seen as a mouse-up.
func (p *SignaturePad) DragEnd() {
	p.mu.Lock()
	if !p.drawing {
		p.mu.Unlock()
		return
	}
	p.addPoint(p.lastPos)
	p.drawing = false
	p.mu.Unlock()
	p.changed()
}

// render draws the signature at device resolution w x h.
func (p *SignaturePad) render(w, h int) image.Image {
	size := p.SurfaceSize()
	c := raster.NewCanvas(w, h)
	if size.IsDegenerate() || w <= 0 || h <= 0 {
		return c.Image()
	}

	p.mu.Lock()
	segs := p.sig.PathsForSurface(size, signature.WithOptions(p.opts))
	p.mu.Unlock()

	r := raster.NewRenderer(raster.RenderOptions{Scale: float64(w) / size.Width})
	r.Draw(c, segs)
	return c.Image()
}

// CreateRenderer creates the renderer for this widget.
func (p *SignaturePad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}
