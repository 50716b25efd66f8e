package raster

import (
	"math"

	"sigpad/pkg/graphics"
	pathpkg "sigpad/pkg/path"
)

// flattenTolerance is the maximum distance, in pixels, between a curve and
// the chords that replace it.
const flattenTolerance = 0.2

// strokeToPath converts a stroke to a fillable path. Each straight piece
// becomes a quad, and round joins and caps become discs. Every polygon is
// emitted with the same (clockwise on screen) winding so overlaps add up
// instead of cancelling in the rasterizer.
func strokeToPath(path *graphics.Path, style graphics.StrokeStyle) *graphics.Path {
	halfWidth := style.Width / 2
	b := pathpkg.NewBuilder()

	for _, poly := range path.Flatten(flattenTolerance) {
		pts := dedupe(poly)
		if len(pts) == 1 {
			addDot(b, pts[0], halfWidth, style.Cap)
			continue
		}

		segments := make([]strokeSegment, 0, len(pts)-1)
		for i := 1; i < len(pts); i++ {
			segments = append(segments, strokeSegment{start: pts[i-1], end: pts[i]})
		}
		if style.Cap == graphics.LineCapSquare {
			segments[0].start = segments[0].start.Sub(segments[0].dir().Scale(halfWidth))
			last := len(segments) - 1
			segments[last].end = segments[last].end.Add(segments[last].dir().Scale(halfWidth))
		}

		for _, seg := range segments {
			addQuad(b, seg, halfWidth)
		}
		if style.Join == graphics.LineJoinRound {
			for _, p := range pts[1 : len(pts)-1] {
				addDisc(b, p, halfWidth)
			}
		}
		if style.Cap == graphics.LineCapRound {
			addDisc(b, pts[0], halfWidth)
			addDisc(b, pts[len(pts)-1], halfWidth)
		}
	}
	return b.Build()
}

type strokeSegment struct {
	start, end graphics.Point
}

func (s strokeSegment) dir() graphics.Point {
	return s.end.Sub(s.start).Normalize()
}

// dedupe drops consecutive repeated points, which have no direction.
func dedupe(pts []graphics.Point) []graphics.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func addQuad(b *pathpkg.Builder, seg strokeSegment, halfWidth float64) {
	d := seg.dir()
	n := graphics.Pt(-d.Y, d.X).Scale(halfWidth)
	b.Polygon([]graphics.Point{
		seg.start.Add(n),
		seg.end.Add(n),
		seg.end.Sub(n),
		seg.start.Sub(n),
	})
}

// addDot marks a subpath with no length, as left by a tap.
func addDot(b *pathpkg.Builder, p graphics.Point, halfWidth float64, lc graphics.LineCap) {
	switch lc {
	case graphics.LineCapRound:
		addDisc(b, p, halfWidth)
	case graphics.LineCapSquare:
		b.Polygon([]graphics.Point{
			{X: p.X - halfWidth, Y: p.Y - halfWidth},
			{X: p.X - halfWidth, Y: p.Y + halfWidth},
			{X: p.X + halfWidth, Y: p.Y + halfWidth},
			{X: p.X + halfWidth, Y: p.Y - halfWidth},
		})
	case graphics.LineCapButt:
		// Nothing to draw
	}
}

// addDisc approximates a circle with a polygon, walking the angle so the
// winding matches addQuad.
func addDisc(b *pathpkg.Builder, c graphics.Point, r float64) {
	if r <= 0 {
		return
	}
	n := int(math.Ceil(2 * math.Pi * r / 1.5))
	if n < 8 {
		n = 8
	}
	if n > 64 {
		n = 64
	}
	pts := make([]graphics.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = graphics.Pt(c.X+r*math.Cos(a), c.Y-r*math.Sin(a))
	}
	b.Polygon(pts)
}
