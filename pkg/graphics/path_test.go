package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCommands(t *testing.T) {
	p := NewPath()
	assert.True(t, p.IsEmpty())

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadTo(5, 6, 7, 8)

	require.Len(t, p.Segments, 3)
	assert.Equal(t, PathOpMoveTo, p.Segments[0].Op)
	assert.Equal(t, PathOpLineTo, p.Segments[1].Op)
	assert.Equal(t, PathOpQuadTo, p.Segments[2].Op)
	assert.Equal(t, []Point{{5, 6}, {7, 8}}, p.Segments[2].Points)
	assert.Equal(t, Pt(7, 8), p.CurrentPoint())
	assert.Equal(t, Pt(7, 8), p.Segments[2].End())
	assert.Equal(t, "quadCurveTo", PathOpQuadTo.String())
}

func TestPathBoundsAndClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.QuadTo(0, 40, 30, 20)

	assert.Equal(t, Rect{X: 0, Y: 10, Width: 30, Height: 30}, p.Bounds())

	c := p.Clone()
	c.Segments[0].Points[0] = Pt(-1, -1)
	assert.Equal(t, Pt(10, 10), p.Segments[0].Points[0])

	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, Rect{}, p.Bounds())
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.QuadTo(2, 2, 3, 1)

	s := p.Transform(Scale(10, 10))
	assert.Equal(t, []Point{{10, 10}}, s.Segments[0].Points)
	assert.Equal(t, []Point{{20, 20}, {30, 10}}, s.Segments[1].Points)
	assert.Equal(t, Pt(30, 10), s.CurrentPoint())
}

func TestPathFlatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(0, 10)
	p.QuadTo(50, 60, 100, 10)
	p.MoveTo(5, 5)

	polys := p.Flatten(0.25)
	require.Len(t, polys, 3)
	assert.Equal(t, []Point{{0, 0}, {10, 0}}, polys[0])

	curve := polys[1]
	assert.Greater(t, len(curve), 4)
	assert.Equal(t, Pt(0, 10), curve[0])
	assert.InDelta(t, 100, curve[len(curve)-1].X, 1e-9)
	assert.InDelta(t, 10, curve[len(curve)-1].Y, 1e-9)
	// the curve apex of a symmetric quadratic sits halfway to its control point
	mid := curve[len(curve)/2]
	assert.InDelta(t, 50, mid.X, 5)
	assert.InDelta(t, 35, mid.Y, 1)

	assert.Equal(t, []Point{{5, 5}}, polys[2])
}
