package cli

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sigpad/internal/config"
	"sigpad/pkg/graphics"
	"sigpad/pkg/replay"
)

const lineScript = `# one horizontal stroke
surface 300 200
color blue
width 4
down 20 100
move 150 100
up 280 100
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderPNG(t *testing.T) {
	script := writeTemp(t, "line.sig", lineScript)
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := run(t, "render", script, "-o", out, "--size", "600x400", "--scale", "1", "--guideline=false")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
	assert.Equal(t, graphics.Blue, color.NRGBAModel.Convert(img.At(300, 200)))
	assert.Equal(t, graphics.White, color.NRGBAModel.Convert(img.At(300, 300)))
}

func TestRenderPDFToStdout(t *testing.T) {
	script := writeTemp(t, "line.sig", lineScript)

	out, err := run(t, "render", script, "--format", "pdf", "--page", "a4", "--scale", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
}

func TestRenderErrors(t *testing.T) {
	script := writeTemp(t, "line.sig", lineScript)

	_, err := run(t, "render", script, "--size", "600by400")
	assert.Error(t, err)

	_, err = run(t, "render", script, "--page", "tabloid", "--format", "pdf")
	assert.Error(t, err)

	_, err = run(t, "render", filepath.Join(t.TempDir(), "missing.sig"))
	assert.Error(t, err)

	bad := writeTemp(t, "bad.sig", "down 1\n")
	_, err = run(t, "render", bad)
	assert.ErrorIs(t, err, replay.ErrSyntax)

	_, err = run(t, "render", script, "--step", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg := writeTemp(t, "sigpad.yaml", "pen:\n  width: -1\n")
	_, err = run(t, "render", script, "--config", cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "render")
	assert.Error(t, err)
}

func TestInfoYAML(t *testing.T) {
	script := writeTemp(t, "two.sig", lineScript+"color red\ndown 10 10\nup 20 20\n")

	out, err := run(t, "info", script, "--output", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "300x200", r.Surface)
	require.Len(t, r.Strokes, 2)
	assert.Equal(t, 3, r.Strokes[0].Points)
	assert.Equal(t, "blue", r.Strokes[0].Color)
	assert.Equal(t, 4.0, r.Strokes[0].Width)
	assert.Equal(t, "red", r.Strokes[1].Color)
	assert.NotEmpty(t, r.Strokes[1].ID)
	assert.Len(t, r.Bounds, 4)
}

func TestInfoText(t *testing.T) {
	script := writeTemp(t, "line.sig", lineScript)

	out, err := run(t, "info", script)
	require.NoError(t, err)
	assert.Contains(t, out, "surface: 300x200")
	assert.Contains(t, out, "strokes: 1")
	assert.Contains(t, out, "color=blue")

	_, err = run(t, "info", script, "--output", "xml")
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	size, err := parseSize("640X480")
	require.NoError(t, err)
	assert.Equal(t, graphics.Sz(640, 480), size)

	for _, bad := range []string{"", "640", "x480", "0x480", "axb"} {
		_, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}
