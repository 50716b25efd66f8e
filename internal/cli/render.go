package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sigpad/internal/config"
	"sigpad/internal/logging"
	"sigpad/pkg/export"
	"sigpad/pkg/graphics"
	"sigpad/pkg/replay"
	"sigpad/pkg/signature"
)

func newRenderCmd(s *session) *cobra.Command {
	var (
		output      string
		size        string
		format      string
		page        string
		transparent bool
	)

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Replay a script and render the signature to an image or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, script, err := s.play(args[0])
			if err != nil {
				return err
			}

			target := script.CaptureSurface(s.windowSize())
			if size != "" {
				if target, err = parseSize(size); err != nil {
					return err
				}
			}

			f, err := s.outputFormat(format, output)
			if err != nil {
				return err
			}

			exportOpts, err := s.cfg.ExportOptions()
			if err != nil {
				return err
			}
			exportOpts = append(exportOpts, export.As(f))
			if transparent {
				exportOpts = append(exportOpts, export.Transparent())
			}
			if page != "" {
				ps, ok := export.PageSizes[strings.ToLower(page)]
				if !ok {
					return fmt.Errorf("unknown page size %q", page)
				}
				exportOpts = append(exportOpts, export.Page(ps))
			}
			opts := export.NewOptions(exportOpts...)

			logging.Log.WithFields(logrus.Fields{
				"strokes": sig.StrokeCount(),
				"size":    fmt.Sprintf("%vx%v", target.Width, target.Height),
				"format":  f,
			}).Debug("rendering signature")

			if output == "" || output == "-" {
				return export.Encode(cmd.OutOrStdout(), sig, target, opts)
			}
			if err := writeFile(output, sig, target, opts); err != nil {
				return err
			}
			logging.Log.Infof("wrote %s", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file, - for stdout")
	flags.StringVar(&size, "size", "", "target surface size WxH (default: the script's capture surface)")
	flags.StringVar(&format, "format", "", "png, jpeg or pdf (default: from the output extension)")
	flags.StringVar(&page, "page", "", "place PDF output on a letter, a4 or legal page")
	flags.BoolVar(&transparent, "transparent", false, "transparent PNG background")
	flags.Float64("scale", 0, "output pixels per surface unit")
	flags.Bool("smooth", true, "smooth strokes with quadratic curves")
	flags.Int("step", 1, "smoothing stride")
	flags.Bool("guideline", true, "draw the signature guideline")
	flags.Float64("line-position", 0, "guideline height as a fraction of the surface")
	flags.String("background", "", "background color")

	s.v.BindPFlag(config.KeyExportScale, flags.Lookup("scale"))
	s.v.BindPFlag(config.KeySmoothed, flags.Lookup("smooth"))
	s.v.BindPFlag(config.KeySmoothStep, flags.Lookup("step"))
	s.v.BindPFlag(config.KeyGuideline, flags.Lookup("guideline"))
	s.v.BindPFlag(config.KeyLinePosition, flags.Lookup("line-position"))
	s.v.BindPFlag(config.KeyBackground, flags.Lookup("background"))

	return cmd
}

// play parses the script at path and replays it into a new signature using
// the configured pen.
func (s *session) play(path string) (*signature.Signature, replay.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, replay.Script{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	script, err := replay.Parse(f)
	if err != nil {
		return nil, replay.Script{}, fmt.Errorf("%s: %w", path, err)
	}

	pen, err := s.cfg.PenColor()
	if err != nil {
		return nil, replay.Script{}, err
	}
	p := replay.NewPlayer(s.windowSize())
	p.Pen = replay.Pen{Color: pen, Width: s.cfg.Pen.Width}

	sig := signature.New()
	p.Play(script, sig)
	return sig, script, nil
}

func (s *session) windowSize() graphics.Size {
	return graphics.Sz(float64(s.cfg.Window.Width), float64(s.cfg.Window.Height))
}

// outputFormat picks the --format flag, then the output extension, then
// the configured default.
func (s *session) outputFormat(flag, output string) (export.Format, error) {
	switch {
	case flag != "":
		return export.ParseFormat(flag)
	case output != "" && output != "-":
		if f, err := export.FormatFromPath(output); err == nil {
			return f, nil
		}
	}
	return export.ParseFormat(s.cfg.Export.Format)
}

// writeFile is export.WriteFile with the format already decided.
func writeFile(path string, sig *signature.Signature, size graphics.Size, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := export.Encode(f, sig, size, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseSize parses "WxH".
func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("bad size %q, want WxH", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("bad size %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("bad size %q: %w", s, err)
	}
	size := graphics.Sz(width, height)
	if size.IsDegenerate() {
		return graphics.Size{}, fmt.Errorf("bad size %q: %w", s, export.ErrEmptySurface)
	}
	return size, nil
}
