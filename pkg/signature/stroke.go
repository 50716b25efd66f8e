package signature

import (
	"image/color"
	"math"

	"sigpad/pkg/graphics"
)

// BoundingBox is the extent of a stroke in normalized space.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// newBoundingBox returns the degenerate box at the center of the unit square
// that every stroke starts from.
func newBoundingBox() BoundingBox {
	return BoundingBox{MinX: 0.5, MinY: 0.5, MaxX: 0.5, MaxY: 0.5}
}

// expand grows the box to include p and clamps every edge back into [0, 1].
// Points captured outside the surface therefore never widen the box past the
// unit square.
func (b *BoundingBox) expand(p graphics.Point) {
	b.MinX = clamp01(math.Min(b.MinX, p.X))
	b.MinY = clamp01(math.Min(b.MinY, p.Y))
	b.MaxX = clamp01(math.Max(b.MaxX, p.X))
	b.MaxY = clamp01(math.Max(b.MaxY, p.Y))
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Rect returns the box as a graphics.Rect in normalized space.
func (b BoundingBox) Rect() graphics.Rect {
	return graphics.NewRect(b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Stroke is one pen-down to pen-up gesture.
type Stroke struct {
	ID     string
	Points []graphics.Point // normalized space, in capture order
	Color  color.NRGBA
	Width  float64 // surface units
	Bounds BoundingBox
}

func (s *Stroke) add(p graphics.Point) {
	s.Points = append(s.Points, p)
	s.Bounds.expand(p)
}

func (s Stroke) clone() Stroke {
	c := s
	c.Points = make([]graphics.Point, len(s.Points))
	copy(c.Points, s.Points)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
