package signature

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSmoothStep is returned for a smoothing stride below 1.
	ErrInvalidSmoothStep = errors.New("smooth step must be at least 1")
	// ErrInvalidLinePosition is returned for a guideline position outside [0, 1].
	ErrInvalidLinePosition = errors.New("line position must be within [0, 1]")
)

// Options controls how PathsForSurface builds paths.
type Options struct {
	// Smoothed turns on midpoint quadratic smoothing for strokes of four or
	// more points.
	// Default: true
	Smoothed bool

	// SmoothStep is the stride between samples used as curve controls.
	// Higher values give smoother, less faithful strokes.
	// Default: 1
	SmoothStep int

	// IncludeLine prepends the horizontal "sign here" guideline.
	// Default: true
	IncludeLine bool

	// LinePosition is the guideline height as a fraction of the surface.
	// Default: 0.75
	LinePosition float64
}

// Guideline style.
const (
	GuidelineWidth = 1.5
	guidelineStart = 0.05
	guidelineEnd   = 0.95
)

// DefaultOptions returns the options PathsForSurface uses when none are given.
func DefaultOptions() Options {
	return Options{
		Smoothed:     true,
		SmoothStep:   1,
		IncludeLine:  true,
		LinePosition: 0.75,
	}
}

// Validate reports the first option that is out of range.
func (o Options) Validate() error {
	if o.SmoothStep < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSmoothStep, o.SmoothStep)
	}
	if math.IsNaN(o.LinePosition) || o.LinePosition < 0 || o.LinePosition > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidLinePosition, o.LinePosition)
	}
	return nil
}

// sanitized clamps out-of-range values so rendering never fails.
func (o Options) sanitized() Options {
	if o.SmoothStep < 1 {
		o.SmoothStep = 1
	}
	switch {
	case math.IsNaN(o.LinePosition):
		o.LinePosition = DefaultOptions().LinePosition
	case o.LinePosition < 0:
		o.LinePosition = 0
	case o.LinePosition > 1:
		o.LinePosition = 1
	}
	return o
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// Smoothed enables or disables curve smoothing.
func Smoothed(on bool) Option {
	return func(o *Options) {
		o.Smoothed = on
	}
}

// SmoothStep sets the smoothing stride.
func SmoothStep(step int) Option {
	return func(o *Options) {
		o.SmoothStep = step
	}
}

// Guideline enables or disables the guideline.
func Guideline(on bool) Option {
	return func(o *Options) {
		o.IncludeLine = on
	}
}

// LinePosition sets the guideline height as a fraction of the surface height.
func LinePosition(pos float64) Option {
	return func(o *Options) {
		o.LinePosition = pos
	}
}

// WithOptions replaces every setting with opts.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	o.Apply(opts...)
	return o
}

// Apply applies functional options to existing options.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
