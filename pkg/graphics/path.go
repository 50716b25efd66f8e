package graphics

import (
	"math"
)

// PathOp represents a path operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpQuadTo // Quadratic bezier: Points[0] is the control point, Points[1] the end
)

// String returns the drawing-command name of the operation.
func (op PathOp) String() string {
	switch op {
	case PathOpMoveTo:
		return "moveTo"
	case PathOpLineTo:
		return "lineTo"
	case PathOpQuadTo:
		return "quadCurveTo"
	}
	return "unknown"
}

// PathSegment represents a single segment in a path.
type PathSegment struct {
	Op     PathOp
	Points []Point
}

// End returns the point the segment finishes at.
func (s PathSegment) End() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[len(s.Points)-1]
}

// Path represents a sequence of drawing commands (moves, lines and quadratic curves).
type Path struct {
	Segments []PathSegment
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		Segments: make([]PathSegment, len(p.Segments)),
		current:  p.current,
	}
	for i, seg := range p.Segments {
		clone.Segments[i] = PathSegment{
			Op:     seg.Op,
			Points: make([]Point, len(seg.Points)),
		}
		copy(clone.Segments[i].Points, seg.Points)
	}
	return clone
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	pt := Point{x, y}
	p.Segments = append(p.Segments, PathSegment{
		Op:     PathOpMoveTo,
		Points: []Point{pt},
	})
	p.current = pt
}

// LineTo draws a line from the current point to the given point.
func (p *Path) LineTo(x, y float64) {
	pt := Point{x, y}
	p.Segments = append(p.Segments, PathSegment{
		Op:     PathOpLineTo,
		Points: []Point{pt},
	})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve from the current point to (x, y)
// using (cpx, cpy) as the control point.
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.Segments = append(p.Segments, PathSegment{
		Op: PathOpQuadTo,
		Points: []Point{
			{cpx, cpy},
			{x, y},
		},
	})
	p.current = Point{x, y}
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.current = Point{}
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of the path, control points included.
func (p *Path) Bounds() Rect {
	if len(p.Segments) == 0 {
		return Rect{}
	}

	minX := math.MaxFloat64
	minY := math.MaxFloat64
	maxX := -math.MaxFloat64
	maxY := -math.MaxFloat64

	for _, seg := range p.Segments {
		for _, pt := range seg.Points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}

	if minX == math.MaxFloat64 {
		return Rect{}
	}

	return NewRect(minX, minY, maxX, maxY)
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, seg := range p.Segments {
		newSeg := PathSegment{
			Op:     seg.Op,
			Points: make([]Point, len(seg.Points)),
		}
		for i, pt := range seg.Points {
			newSeg.Points[i] = m.TransformPoint(pt)
		}
		result.Segments = append(result.Segments, newSeg)
	}
	if len(p.Segments) > 0 {
		result.current = m.TransformPoint(p.current)
	}
	return result
}

// Flatten approximates the path with polylines, one per subpath. Curves are
// subdivided so that no chord strays more than tolerance from the curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var (
		polys [][]Point
		cur   []Point
		last  Point
	)
	for _, seg := range p.Segments {
		switch seg.Op {
		case PathOpMoveTo:
			if len(seg.Points) == 0 {
				continue
			}
			if len(cur) > 0 {
				polys = append(polys, cur)
			}
			last = seg.Points[0]
			cur = []Point{last}
		case PathOpLineTo:
			if len(seg.Points) == 0 {
				continue
			}
			if cur == nil {
				cur = []Point{last}
			}
			last = seg.Points[0]
			cur = append(cur, last)
		case PathOpQuadTo:
			if len(seg.Points) < 2 {
				continue
			}
			if cur == nil {
				cur = []Point{last}
			}
			cp, end := seg.Points[0], seg.Points[1]
			n := quadSubdivisions(last, cp, end, tolerance)
			for i := 1; i <= n; i++ {
				cur = append(cur, quadAt(last, cp, end, float64(i)/float64(n)))
			}
			last = end
		}
	}
	if len(cur) > 0 {
		polys = append(polys, cur)
	}
	return polys
}

// quadSubdivisions bounds the chord error of a quadratic by its second
// difference: err <= |p0 - 2c + p1| / (8 n^2).
func quadSubdivisions(p0, c, p1 Point, tolerance float64) int {
	dd := p0.Sub(c.Scale(2)).Add(p1).Length()
	n := int(math.Ceil(math.Sqrt(dd / (8 * tolerance))))
	if n < 1 {
		return 1
	}
	if n > 256 {
		return 256
	}
	return n
}

func quadAt(p0, c, p1 Point, t float64) Point {
	mt := 1 - t
	return Point{
		mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
		mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
	}
}
