// Package signature stores handwritten strokes independently of the surface
// they were captured on, and produces drawable paths for any other surface.
//
// Points arrive in surface space (pixels of the capturing view) and are kept
// in normalized space: the unit square with the capture surface letterboxed
// along its shorter axis. PathsForSurface applies the inverse mapping for the
// target surface, so a signature captured on a phone can be redrawn into a
// thumbnail or a print preview without distortion.
//
// A Signature is not safe for concurrent use; it is driven from one event
// thread, the same way the surface that feeds it is.
package signature

import (
	"image/color"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sigpad/pkg/graphics"
)

// Defaults for strokes started implicitly by AddPoint.
const (
	DefaultWidth = 2.0
)

// DefaultColor is the pen color of implicitly started strokes.
var DefaultColor = graphics.Black

const noStroke = -1

// Signature is an ordered set of strokes. Later strokes paint over earlier ones.
type Signature struct {
	strokes []Stroke
	current int // index into strokes, or noStroke
}

// New returns an empty signature.
func New() *Signature {
	return &Signature{current: noStroke}
}

// StartNewStroke seals the current stroke, if any, and begins a new empty one
// drawn with c at the given width. A nil color falls back to DefaultColor and
// a width that is not a positive number falls back to DefaultWidth.
// It returns the ID of the new stroke.
func (s *Signature) StartNewStroke(c color.Color, width float64) string {
	col := DefaultColor
	if c != nil {
		col = graphics.ToNRGBA(c)
	}
	if !(width > 0) || math.IsInf(width, 0) {
		width = DefaultWidth
	}

	st := Stroke{
		ID:     uuid.NewString(),
		Color:  col,
		Width:  width,
		Bounds: newBoundingBox(),
	}
	s.strokes = append(s.strokes, st)
	s.current = len(s.strokes) - 1

	logger().WithFields(logrus.Fields{
		"stroke": st.ID,
		"color":  graphics.FormatColor(col),
		"width":  width,
	}).Debug("stroke started")
	return st.ID
}

// AddPoint records a surface-space sample taken on a surface of the given
// size. Samples from a degenerate surface, or with non-finite coordinates,
// are dropped without touching the signature. When no stroke is in progress
// one is started with DefaultColor and DefaultWidth.
func (s *Signature) AddPoint(p graphics.Point, surface graphics.Size) {
	if !p.IsFinite() {
		logger().WithField("point", p).Debug("non-finite point ignored")
		return
	}
	np, ok := Normalize(p, surface)
	if !ok {
		logger().WithFields(logrus.Fields{
			"width":  surface.Width,
			"height": surface.Height,
		}).Debug("degenerate surface, point ignored")
		return
	}

	if s.current == noStroke {
		s.StartNewStroke(DefaultColor, DefaultWidth)
	}
	s.strokes[s.current].add(np)
}

// Clear discards every stroke.
func (s *Signature) Clear() {
	logger().WithField("strokes", len(s.strokes)).Debug("signature cleared")
	s.strokes = nil
	s.current = noStroke
}

// StrokeCount returns the number of strokes, including an empty current one.
func (s *Signature) StrokeCount() int {
	return len(s.strokes)
}

// IsEmpty reports whether the signature holds no points at all.
func (s *Signature) IsEmpty() bool {
	for _, st := range s.strokes {
		if len(st.Points) > 0 {
			return false
		}
	}
	return true
}

// Strokes returns a copy of all strokes in drawing order.
func (s *Signature) Strokes() []Stroke {
	out := make([]Stroke, len(s.strokes))
	for i, st := range s.strokes {
		out[i] = st.clone()
	}
	return out
}

// Current returns a copy of the stroke in progress.
func (s *Signature) Current() (Stroke, bool) {
	if s.current == noStroke {
		return Stroke{}, false
	}
	return s.strokes[s.current].clone(), true
}

// Bounds returns the union of the bounding boxes of all non-empty strokes.
func (s *Signature) Bounds() (BoundingBox, bool) {
	var (
		box   BoundingBox
		found bool
	)
	for _, st := range s.strokes {
		if len(st.Points) == 0 {
			continue
		}
		if !found {
			box, found = st.Bounds, true
			continue
		}
		box = box.Union(st.Bounds)
	}
	return box, found
}
