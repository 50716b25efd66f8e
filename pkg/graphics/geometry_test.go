package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Pt(5, 10), Midpoint(Pt(0, 0), Pt(10, 20)))
	assert.Equal(t, Pt(-1, 2.5), Midpoint(Pt(-4, 5), Pt(2, 0)))
	assert.Equal(t, Pt(3, 3), Midpoint(Pt(3, 3), Pt(3, 3)))
}

func TestControlPoint(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Point
	}{
		{"downward", Pt(0, 0), Pt(10, 20), Pt(5, 20)},
		{"upward", Pt(0, 20), Pt(10, 0), Pt(5, 0)},
		{"level", Pt(0, 7), Pt(10, 7), Pt(5, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ControlPoint(tt.p1, tt.p2))
		})
	}
}

func TestSize(t *testing.T) {
	assert.InDelta(t, 1.5, Sz(300, 200).Aspect(), 1e-12)
	assert.False(t, Sz(1, 1).IsDegenerate())
	assert.True(t, Sz(0, 1).IsDegenerate())
	assert.True(t, Sz(1, 0).IsDegenerate())
	assert.True(t, Sz(-1, 1).IsDegenerate())
	assert.True(t, Sz(math.NaN(), 1).IsDegenerate())
	assert.True(t, Sz(1, math.Inf(1)).IsDegenerate())
	assert.Equal(t, Sz(20, 10), Sz(10, 5).Scale(2))
}

func TestMatrix(t *testing.T) {
	m := Scale(2, 3)
	assert.Equal(t, Pt(2, 3), m.TransformPoint(Pt(1, 1)))
	assert.Equal(t, Pt(4, 5), Scale(1, 1).TransformPoint(Pt(4, 5)))
	assert.InDelta(t, 2.5, Scale(2, 3).ScaleFactor(), 1e-12)
}
