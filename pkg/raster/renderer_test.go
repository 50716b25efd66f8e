package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

var opaqueBlack = color.RGBA{0, 0, 0, 255}

func lineSignature(surface graphics.Size, points ...graphics.Point) *signature.Signature {
	sig := signature.New()
	sig.StartNewStroke(graphics.Black, 4)
	for _, p := range points {
		sig.AddPoint(p, surface)
	}
	return sig
}

func TestRenderStroke(t *testing.T) {
	surface := graphics.Sz(100, 100)
	sig := lineSignature(surface, graphics.Pt(10, 50), graphics.Pt(90, 50))

	r := NewRenderer(RenderOptions{Signature: []signature.Option{signature.Guideline(false)}})
	img := r.RenderSignature(sig, surface)

	require.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 50))
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 49))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(50, 20))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(3, 50))
}

func TestRenderCrossingStrokesDoNotCancel(t *testing.T) {
	surface := graphics.Sz(100, 100)
	sig := signature.New()
	sig.StartNewStroke(graphics.Black, 6)
	sig.AddPoint(graphics.Pt(10, 10), surface)
	sig.AddPoint(graphics.Pt(90, 90), surface)
	sig.StartNewStroke(graphics.Black, 6)
	sig.AddPoint(graphics.Pt(10, 90), surface)
	sig.AddPoint(graphics.Pt(90, 10), surface)

	r := NewRenderer(RenderOptions{Signature: []signature.Option{signature.Guideline(false)}})
	img := r.RenderSignature(sig, surface)

	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 50))
	assert.Equal(t, opaqueBlack, img.RGBAAt(49, 49))
}

func TestRenderSelfOverlappingStroke(t *testing.T) {
	surface := graphics.Sz(100, 100)
	sig := lineSignature(surface,
		graphics.Pt(10, 50), graphics.Pt(90, 50), graphics.Pt(50, 50), graphics.Pt(50, 90))

	r := NewRenderer(RenderOptions{Signature: []signature.Option{signature.Guideline(false), signature.Smoothed(false)}})
	img := r.RenderSignature(sig, surface)

	assert.Equal(t, opaqueBlack, img.RGBAAt(70, 50))
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 50))
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 70))
}

func TestRenderDot(t *testing.T) {
	surface := graphics.Sz(40, 40)
	sig := lineSignature(surface, graphics.Pt(20, 20))

	r := NewRenderer(RenderOptions{Signature: []signature.Option{signature.Guideline(false)}})
	img := r.RenderSignature(sig, surface)

	assert.Equal(t, opaqueBlack, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(30, 30))
}

func TestRenderGuideline(t *testing.T) {
	surface := graphics.Sz(200, 400)
	img := NewRenderer(DefaultRenderOptions()).RenderSignature(signature.New(), surface)

	// 1.5 wide line centred on y=300 covers three quarters of pixel row 299
	px := img.RGBAAt(100, 299)
	assert.Less(t, px.R, uint8(255))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(5, 299))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(100, 200))
}

func TestRenderScale(t *testing.T) {
	surface := graphics.Sz(50, 30)
	sig := lineSignature(surface, graphics.Pt(5, 15), graphics.Pt(45, 15))

	r := NewRenderer(RenderOptions{Scale: 2, Signature: []signature.Option{signature.Guideline(false)}})
	img := r.RenderSignature(sig, surface)

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	// width 4 scaled to 8 pixels around y=30
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 27))
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 32))
}

func TestRenderTransparent(t *testing.T) {
	r := NewRenderer(RenderOptions{Transparent: true})
	img := r.RenderSignature(signature.New(), graphics.Sz(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1))
}

func TestRenderDegenerateSurface(t *testing.T) {
	img := NewRenderer(DefaultRenderOptions()).RenderSignature(signature.New(), graphics.Sz(0, 20))
	assert.True(t, img.Bounds().Empty())
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(RenderOptions{Scale: -1})
	assert.Equal(t, 1.0, r.Options().Scale)
	assert.Equal(t, color.White, r.Options().Background)

	r.SetScale(0)
	assert.Equal(t, 1.0, r.Options().Scale)
	r.SetScale(3)
	w, h := r.PixelSize(graphics.Sz(10.2, 4))
	assert.Equal(t, 31, w)
	assert.Equal(t, 12, h)
}
