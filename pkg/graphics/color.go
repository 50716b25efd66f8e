package graphics

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Pen colors offered by the signature pad.
var (
	Black = color.NRGBA{0, 0, 0, 255}
	White = color.NRGBA{255, 255, 255, 255}
	Blue  = color.NRGBA{15, 7, 130, 255}
	Red   = color.NRGBA{182, 0, 0, 255}
	Green = color.NRGBA{4, 123, 23, 255}
)

// Palette maps the names accepted in configuration to pen colors.
var Palette = map[string]color.NRGBA{
	"black": Black,
	"white": White,
	"blue":  Blue,
	"red":   Red,
	"green": Green,
}

// NewRGB creates an opaque color from components in [0, 1].
func NewRGB(r, g, b float64) color.NRGBA {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA creates a color from components in [0, 1].
func NewRGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(r, 0, 1)*255 + 0.5),
		G: uint8(clamp(g, 0, 1)*255 + 0.5),
		B: uint8(clamp(b, 0, 1)*255 + 0.5),
		A: uint8(clamp(a, 0, 1)*255 + 0.5),
	}
}

// ToNRGBA converts any color to a non-premultiplied RGBA color.
// A nil color converts to opaque black.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return Black
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ParseColor accepts a palette name, "#RGB", "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := Palette[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor returns the palette name of c, or its "#rrggbbaa" form.
func FormatColor(c color.NRGBA) string {
	for name, p := range Palette {
		if p == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
