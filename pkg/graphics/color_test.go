package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"black", Black},
		{" Blue ", Blue},
		{"#fff", White},
		{"#b60000", Red},
		{"#047B1780", color.NRGBA{4, 123, 23, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "purple"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "red", FormatColor(Red))
	assert.Equal(t, "#01020304", FormatColor(color.NRGBA{1, 2, 3, 4}))
}

func TestToNRGBA(t *testing.T) {
	assert.Equal(t, Black, ToNRGBA(nil))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, ToNRGBA(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, NewRGB(0.5, 0.5, 0.5))
}
