package gui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"sigpad/pkg/graphics"
	"sigpad/pkg/raster"
	"sigpad/pkg/signature"
)

const (
	minZoom  = 0.5
	maxZoom  = 4.0
	zoomStep = 1.25
)

// PreviewPane shows the signature rendered into a fixed surface, such as
// the signature box of a printed form, independently of the pad size.
type PreviewPane struct {
	widget.BaseWidget

	sig     *signature.Signature
	surface graphics.Size
	opts    signature.Options
	zoom    float64

	image *canvas.Image
	img   image.Image
}

// NewPreviewPane creates a preview of sig at the given surface size.
func NewPreviewPane(sig *signature.Signature, surface graphics.Size) *PreviewPane {
	v := &PreviewPane{
		sig:     sig,
		surface: surface,
		opts:    signature.DefaultOptions(),
		zoom:    1.0,
	}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.Update()

	return v
}

// SetPathOptions changes how strokes are drawn.
func (v *PreviewPane) SetPathOptions(opts signature.Options) {
	v.opts = opts
	v.Update()
}

// Zoom returns the current zoom level.
func (v *PreviewPane) Zoom() float64 {
	return v.zoom
}

// Image returns the last rendered preview.
func (v *PreviewPane) Image() image.Image {
	return v.img
}

// Update re-renders the preview. The signature is rendered at the zoomed
// resolution rather than scaled as a bitmap.
func (v *PreviewPane) Update() {
	r := raster.NewRenderer(raster.RenderOptions{
		Scale:     v.zoom,
		Signature: []signature.Option{signature.WithOptions(v.opts)},
	})
	v.img = r.RenderSignature(v.sig, v.surface)
	v.image.Image = v.img
	v.Refresh()
}

// ZoomIn increases zoom level.
func (v *PreviewPane) ZoomIn() {
	v.zoom = math.Min(maxZoom, v.zoom*zoomStep)
	v.Update()
}

// ZoomOut decreases zoom level.
func (v *PreviewPane) ZoomOut() {
	v.zoom = math.Max(minZoom, v.zoom/zoomStep)
	v.Update()
}

// ResetZoom shows the preview at its natural size.
func (v *PreviewPane) ResetZoom() {
	v.zoom = 1.0
	v.Update()
}

// CreateRenderer creates the renderer for this widget.
func (v *PreviewPane) CreateRenderer() fyne.WidgetRenderer {
	return &previewRenderer{pane: v}
}

// previewRenderer centers the preview image in the pane.
type previewRenderer struct {
	pane *PreviewPane
}

func (r *previewRenderer) imageSize() fyne.Size {
	z := float32(r.pane.zoom)
	return fyne.NewSize(float32(r.pane.surface.Width)*z, float32(r.pane.surface.Height)*z)
}

func (r *previewRenderer) Layout(size fyne.Size) {
	img := r.imageSize()
	r.pane.image.Move(fyne.NewPos((size.Width-img.Width)/2, (size.Height-img.Height)/2))
	r.pane.image.Resize(img)
}

func (r *previewRenderer) MinSize() fyne.Size {
	return r.imageSize()
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.pane.image}
}

func (r *previewRenderer) Refresh() {
	r.Layout(r.pane.Size())
	r.pane.image.Refresh()
}

func (r *previewRenderer) Destroy() {}
