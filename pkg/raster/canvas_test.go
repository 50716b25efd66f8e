package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"sigpad/pkg/graphics"
)

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Image().RGBAAt(0, 0))

	c.SetBackground(color.RGBA{10, 20, 30, 255})
	c.Clear()
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c.Image().RGBAAt(3, 2))
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.DrawLine(0, 10, 20, 10, graphics.Black, 2)

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(10, 9))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Image().RGBAAt(10, 12))
}

func TestCanvasZeroSize(t *testing.T) {
	c := NewCanvas(0, -5)
	c.DrawLine(0, 0, 10, 10, graphics.Black, 2)
	assert.True(t, c.Image().Bounds().Empty())
}

func TestStrokeToPathWinding(t *testing.T) {
	p := graphics.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	outline := strokeToPath(p, graphics.PenStyle(2))
	for i, poly := range outline.Flatten(0.1) {
		assert.Less(t, signedArea(poly), 0.0, "polygon %d", i)
	}
}

func signedArea(pts []graphics.Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
