package signature

import (
	"image/color"

	"sigpad/pkg/graphics"
	"sigpad/pkg/path"
)

// StrokeSegment is one drawable entry: a path in target-surface space plus
// the color and width to stroke it with.
type StrokeSegment struct {
	Path      *graphics.Path
	Color     color.NRGBA
	Width     float64
	Guideline bool
}

// PathsForSurface returns the signature as drawable paths for a surface of the
// given size, which need not match any surface the points were captured on.
//
// The result is ordered for painting: the guideline (when enabled) first, then
// the strokes in drawing order. A degenerate size yields no segments.
// PathsForSurface does not modify the signature.
func (s *Signature) PathsForSurface(size graphics.Size, opts ...Option) []StrokeSegment {
	if size.IsDegenerate() {
		return nil
	}
	o := NewOptions(opts...).sanitized()

	ret := make([]StrokeSegment, 0, len(s.strokes)+1)
	if o.IncludeLine {
		ret = append(ret, guideline(size, o.LinePosition))
	}

	for _, st := range s.strokes {
		if len(st.Points) == 0 {
			continue
		}
		points := make([]graphics.Point, len(st.Points))
		for i, p := range st.Points {
			points[i] = Denormalize(p, size)
		}
		ret = append(ret, StrokeSegment{
			Path:  buildPath(points, o.Smoothed, o.SmoothStep),
			Color: st.Color,
			Width: st.Width,
		})
	}
	return ret
}

// guideline places a horizontal rule at linePosition of the surface height.
// Landscape surfaces shift it up by their letterbox padding so it sits at the
// same place relative to the captured strokes.
func guideline(size graphics.Size, linePosition float64) StrokeSegment {
	_, padY := letterbox(size)
	y := (linePosition - padY) * size.Height

	p := path.NewBuilder().
		MoveTo(graphics.Pt(guidelineStart*size.Width, y)).
		LineTo(graphics.Pt(guidelineEnd*size.Width, y)).
		Build()
	return StrokeSegment{
		Path:      p,
		Color:     graphics.Black,
		Width:     GuidelineWidth,
		Guideline: true,
	}
}

// buildPath connects points with straight lines, or, when smoothing is on and
// there are at least four points, with a chain of quadratic curves through
// the midpoints of consecutive samples. Each curve uses the sample between
// two midpoints as its control point. The walk stops before the last sample,
// so a smoothed stroke ends at the midpoint of its final visited pair.
func buildPath(points []graphics.Point, smoothed bool, step int) *graphics.Path {
	b := path.NewBuilder()
	if len(points) < 4 || !smoothed {
		return b.Polyline(points).Build()
	}

	b.MoveTo(points[0])
	p1 := points[0]
	for i := 1; i < len(points)-1; i += step {
		p2 := points[i]
		mid := graphics.Midpoint(p1, p2)
		if i == 1 {
			b.LineTo(mid)
		} else {
			b.QuadTo(p1, mid)
		}
		p1 = p2
	}
	return b.Build()
}
