// Package path provides path construction utilities for the rasterizer.
package path

import (
	"sigpad/pkg/graphics"

	"golang.org/x/image/vector"
)

// ToVector feeds a graphics.Path into a golang.org/x/image/vector rasterizer.
// Every subpath is closed, so callers pass outlines, not open strokes.
func ToVector(p *graphics.Path, rasterizer *vector.Rasterizer) {
	open := false
	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			if len(seg.Points) >= 1 {
				if open {
					rasterizer.ClosePath()
				}
				rasterizer.MoveTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
				open = true
			}
		case graphics.PathOpLineTo:
			if len(seg.Points) >= 1 {
				rasterizer.LineTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
			}
		case graphics.PathOpQuadTo:
			if len(seg.Points) >= 2 {
				rasterizer.QuadTo(
					float32(seg.Points[0].X), float32(seg.Points[0].Y),
					float32(seg.Points[1].X), float32(seg.Points[1].Y),
				)
			}
		}
	}
	if open {
		rasterizer.ClosePath()
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *graphics.Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{
		path: graphics.NewPath(),
	}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(p graphics.Point) *Builder {
	b.path.MoveTo(p.X, p.Y)
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(p graphics.Point) *Builder {
	b.path.LineTo(p.X, p.Y)
	return b
}

// QuadTo draws a quadratic Bezier curve to end, bending toward control.
func (b *Builder) QuadTo(control, end graphics.Point) *Builder {
	b.path.QuadTo(control.X, control.Y, end.X, end.Y)
	return b
}

// Polyline moves to the first point and draws straight lines through the rest.
func (b *Builder) Polyline(points []graphics.Point) *Builder {
	if len(points) == 0 {
		return b
	}
	b.MoveTo(points[0])
	for _, p := range points[1:] {
		b.LineTo(p)
	}
	return b
}

// Polygon adds a closed outline through points.
func (b *Builder) Polygon(points []graphics.Point) *Builder {
	if len(points) < 3 {
		return b
	}
	b.Polyline(points)
	b.LineTo(points[0])
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *graphics.Path {
	return b.path
}

// Clear resets the builder for reuse.
func (b *Builder) Clear() *Builder {
	b.path = graphics.NewPath()
	return b
}
