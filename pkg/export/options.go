// Package export writes rendered signatures as PNG, JPEG or PDF files.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"sigpad/pkg/signature"
)

// Format is an output file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
)

var (
	// ErrUnsupportedFormat is returned for formats other than png, jpeg and pdf.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrEmptySurface is returned when asked to export into a degenerate size.
	ErrEmptySurface = errors.New("export surface has no area")
)

// ParseFormat accepts "png", "jpg", "jpeg" and "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// PageSize contains page dimensions.
type PageSize struct {
	Width  float64 // Width in points (1/72 inch)
	Height float64 // Height in points
}

// Common page sizes in points
var (
	PageSizeLetter = PageSize{612, 792}
	PageSizeA4     = PageSize{595.28, 841.89}
	PageSizeLegal  = PageSize{612, 1008}
)

// PageSizes maps names accepted on the command line to page sizes.
var PageSizes = map[string]PageSize{
	"letter": PageSizeLetter,
	"a4":     PageSizeA4,
	"legal":  PageSizeLegal,
}

// pageMargin keeps the signature off the edge of a named page.
const pageMargin = 36

// Options configures an export.
type Options struct {
	// Format specifies the output format.
	// Default: png
	Format Format

	// Quality for JPEG (1-100)
	// Default: 90
	Quality int

	// Compression for PNG (0-9, where 0 is no compression)
	// Default: 6
	Compression int

	// Scale is the number of output pixels per surface unit.
	// Default: 1.0
	Scale float64

	// Background sets the background color.
	// Default: white
	Background color.Color

	// Transparent enables a transparent background for PNG.
	// JPEG and PDF output always use Background.
	// Default: false
	Transparent bool

	// Page places the signature centered on a page of this size for PDF
	// output. nil makes the page exactly the surface size.
	Page *PageSize

	// Signature holds the path options passed to PathsForSurface.
	Signature []signature.Option
}

// DefaultOptions returns export options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format:      FormatPNG,
		Quality:     90,
		Compression: 6,
		Scale:       1.0,
		Background:  color.White,
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// As sets the output format.
func As(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// Quality sets the JPEG quality, clamped to 1-100.
func Quality(q int) Option {
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return func(o *Options) {
		o.Quality = q
	}
}

// Scale sets the output pixel density.
func Scale(scale float64) Option {
	return func(o *Options) {
		o.Scale = scale
	}
}

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *Options) {
		o.Background = c
	}
}

// Transparent enables transparent background.
func Transparent() Option {
	return func(o *Options) {
		o.Transparent = true
	}
}

// Page places PDF output on a page of the given size.
func Page(size PageSize) Option {
	return func(o *Options) {
		o.Page = &size
	}
}

// Signature sets the path options used when rendering.
func Signature(opts ...signature.Option) Option {
	return func(o *Options) {
		o.Signature = append(o.Signature, opts...)
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
