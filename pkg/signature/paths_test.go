package signature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigpad/pkg/graphics"
)

func strokeOf(surface graphics.Size, points ...graphics.Point) *Signature {
	sig := New()
	sig.StartNewStroke(graphics.Black, 2)
	for _, p := range points {
		sig.AddPoint(p, surface)
	}
	return sig
}

func TestLandscapeScenario(t *testing.T) {
	surface := graphics.Sz(300, 200)
	sig := strokeOf(surface,
		graphics.Pt(0, 0),
		graphics.Pt(150, 100),
		graphics.Pt(300, 200),
	)

	st, ok := sig.Current()
	require.True(t, ok)
	pad := 1.0 / 6
	assertPointNear(t, graphics.Pt(0, pad), st.Points[0])
	assertPointNear(t, graphics.Pt(0.5, 0.5+pad), st.Points[1])
	assertPointNear(t, graphics.Pt(1, 1+pad), st.Points[2])

	segs := sig.PathsForSurface(surface, Smoothed(false), Guideline(false))
	require.Len(t, segs, 1)
	assert.Equal(t, graphics.Black, segs[0].Color)
	assert.Equal(t, 2.0, segs[0].Width)
	assertSegments(t, []graphics.PathSegment{
		move(graphics.Pt(0, 0)),
		line(graphics.Pt(150, 100)),
		line(graphics.Pt(300, 200)),
	}, segs[0].Path)
}

func TestRenderToLargerSurface(t *testing.T) {
	sig := strokeOf(graphics.Sz(100, 100), graphics.Pt(50, 50), graphics.Pt(25, 75))

	segs := sig.PathsForSurface(graphics.Sz(400, 400), Guideline(false))
	require.Len(t, segs, 1)
	assertSegments(t, []graphics.PathSegment{
		move(graphics.Pt(200, 200)),
		line(graphics.Pt(100, 300)),
	}, segs[0].Path)
}

func TestSmoothingNeedsFourPoints(t *testing.T) {
	surface := graphics.Sz(100, 100)
	pts := []graphics.Point{{X: 10, Y: 10}, {X: 50, Y: 80}, {X: 90, Y: 20}}
	sig := strokeOf(surface, pts...)

	smoothed := sig.PathsForSurface(surface, Guideline(false))
	plain := sig.PathsForSurface(surface, Guideline(false), Smoothed(false))
	require.Len(t, smoothed, 1)
	require.Len(t, plain, 1)

	want := []graphics.PathSegment{move(pts[0]), line(pts[1]), line(pts[2])}
	assertSegments(t, want, smoothed[0].Path)
	assertSegments(t, want, plain[0].Path)
}

func TestMidpointSmoothing(t *testing.T) {
	surface := graphics.Sz(100, 100)
	p := []graphics.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 30, Y: 20}, {X: 40, Y: 0}, {X: 60, Y: 10}}
	sig := strokeOf(surface, p...)

	segs := sig.PathsForSurface(surface, Guideline(false))
	require.Len(t, segs, 1)
	assertSegments(t, []graphics.PathSegment{
		move(p[0]),
		line(graphics.Midpoint(p[0], p[1])),
		quad(p[1], graphics.Midpoint(p[1], p[2])),
		quad(p[2], graphics.Midpoint(p[2], p[3])),
	}, segs[0].Path)
}

func TestMidpointSmoothingStride(t *testing.T) {
	surface := graphics.Sz(100, 100)
	p := []graphics.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}, {X: 40, Y: 0}, {X: 50, Y: 10}}
	sig := strokeOf(surface, p...)

	segs := sig.PathsForSurface(surface, Guideline(false), SmoothStep(2))
	require.Len(t, segs, 1)
	assertSegments(t, []graphics.PathSegment{
		move(p[0]),
		line(graphics.Midpoint(p[0], p[1])),
		quad(p[1], graphics.Midpoint(p[1], p[3])),
	}, segs[0].Path)
}

func TestInvalidStrideIsClamped(t *testing.T) {
	surface := graphics.Sz(100, 100)
	sig := strokeOf(surface, graphics.Pt(0, 0), graphics.Pt(1, 1), graphics.Pt(2, 2), graphics.Pt(3, 3))

	want := sig.PathsForSurface(surface, SmoothStep(1))
	assert.Equal(t, want, sig.PathsForSurface(surface, SmoothStep(0)))
	assert.Equal(t, want, sig.PathsForSurface(surface, SmoothStep(-3)))
}

func TestGuidelineGeometry(t *testing.T) {
	tests := []struct {
		name  string
		size  graphics.Size
		pos   float64
		wantY float64
	}{
		{"portrait", graphics.Sz(200, 400), 0.75, 300},
		{"square", graphics.Sz(300, 300), 0.5, 150},
		{"landscape", graphics.Sz(300, 200), 0.75, (0.75 - 1.0/6) * 200},
		{"clamped", graphics.Sz(100, 100), 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := New().PathsForSurface(tt.size, LinePosition(tt.pos))
			require.Len(t, segs, 1)
			g := segs[0]
			assert.True(t, g.Guideline)
			assert.Equal(t, graphics.Black, g.Color)
			assert.Equal(t, GuidelineWidth, g.Width)
			assertSegments(t, []graphics.PathSegment{
				move(graphics.Pt(0.05*tt.size.Width, tt.wantY)),
				line(graphics.Pt(0.95*tt.size.Width, tt.wantY)),
			}, g.Path)
		})
	}
}

func TestPathOrderAndStyle(t *testing.T) {
	surface := graphics.Sz(100, 100)
	sig := New()
	sig.StartNewStroke(graphics.Red, 3)
	sig.AddPoint(graphics.Pt(1, 1), surface)
	sig.StartNewStroke(graphics.Blue, 1)
	sig.StartNewStroke(graphics.Green, 4)
	sig.AddPoint(graphics.Pt(2, 2), surface)

	segs := sig.PathsForSurface(surface)
	require.Len(t, segs, 3)
	assert.True(t, segs[0].Guideline)
	assert.Equal(t, graphics.Red, segs[1].Color)
	assert.Equal(t, 3.0, segs[1].Width)
	assert.Equal(t, graphics.Green, segs[2].Color)
	assert.Equal(t, 4.0, segs[2].Width)
	assertSegments(t, []graphics.PathSegment{move(graphics.Pt(2, 2))}, segs[2].Path)
}

func TestPathsForSurfaceIsPure(t *testing.T) {
	surface := graphics.Sz(320, 240)
	sig := strokeOf(surface,
		graphics.Pt(10, 10), graphics.Pt(40, 80), graphics.Pt(90, 20), graphics.Pt(120, 60), graphics.Pt(200, 30))
	before := sig.Strokes()

	first := sig.PathsForSurface(graphics.Sz(640, 480))
	second := sig.PathsForSurface(graphics.Sz(640, 480))

	assert.Equal(t, first, second)
	assert.Equal(t, before, sig.Strokes())
}

func TestPathsForDegenerateSurface(t *testing.T) {
	sig := strokeOf(graphics.Sz(100, 100), graphics.Pt(1, 1))
	assert.Empty(t, sig.PathsForSurface(graphics.Sz(0, 100)))
	assert.Empty(t, sig.PathsForSurface(graphics.Sz(100, -1)))
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, NewOptions(LinePosition(0), SmoothStep(5)).Validate())

	err := NewOptions(SmoothStep(0)).Validate()
	assert.True(t, errors.Is(err, ErrInvalidSmoothStep))

	err = NewOptions(LinePosition(1.5)).Validate()
	assert.True(t, errors.Is(err, ErrInvalidLinePosition))

	err = NewOptions(LinePosition(-0.1)).Validate()
	assert.True(t, errors.Is(err, ErrInvalidLinePosition))
}

func TestNewOptions(t *testing.T) {
	o := NewOptions(Smoothed(false), SmoothStep(3), Guideline(false), LinePosition(0.6))
	assert.Equal(t, Options{Smoothed: false, SmoothStep: 3, IncludeLine: false, LinePosition: 0.6}, o)
	assert.Equal(t, DefaultOptions(), NewOptions())
	assert.Equal(t, o, NewOptions(WithOptions(o)))
	assert.Equal(t, 2, NewOptions(WithOptions(o), SmoothStep(2)).SmoothStep)
}
