package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

type strokeInfo struct {
	Index  int        `yaml:"index"`
	ID     string     `yaml:"id"`
	Points int        `yaml:"points"`
	Color  string     `yaml:"color"`
	Width  float64    `yaml:"width"`
	Bounds [4]float64 `yaml:"bounds,flow"`
}

type report struct {
	Surface string       `yaml:"surface"`
	Strokes []strokeInfo `yaml:"strokes"`
	Bounds  []float64    `yaml:"bounds,flow,omitempty"`
}

func newInfoCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <script>",
		Short: "Replay a script and describe the captured strokes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, script, err := s.play(args[0])
			if err != nil {
				return err
			}
			r := newReport(sig, script.CaptureSurface(s.windowSize()))

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				return enc.Close()
			case "text", "":
				r.print(cmd.OutOrStdout())
				return nil
			default:
				return fmt.Errorf("unknown output %q, want text or yaml", output)
			}
		},
	}
	cmd.Flags().StringVar(&output, "output", "text", "report format: text or yaml")
	return cmd
}

func newReport(sig *signature.Signature, surface graphics.Size) report {
	r := report{
		Surface: fmt.Sprintf("%gx%g", surface.Width, surface.Height),
		Strokes: []strokeInfo{},
	}
	for i, st := range sig.Strokes() {
		r.Strokes = append(r.Strokes, strokeInfo{
			Index:  i,
			ID:     st.ID,
			Points: len(st.Points),
			Color:  graphics.FormatColor(st.Color),
			Width:  st.Width,
			Bounds: boxValues(st.Bounds),
		})
	}
	if b, ok := sig.Bounds(); ok {
		v := boxValues(b)
		r.Bounds = v[:]
	}
	return r
}

func boxValues(b signature.BoundingBox) [4]float64 {
	return [4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "surface: %s\n", r.Surface)
	fmt.Fprintf(w, "strokes: %d\n", len(r.Strokes))
	for _, st := range r.Strokes {
		fmt.Fprintf(w, "  #%d %s points=%d color=%s width=%g bounds=[%.3f %.3f %.3f %.3f]\n",
			st.Index, st.ID, st.Points, st.Color, st.Width,
			st.Bounds[0], st.Bounds[1], st.Bounds[2], st.Bounds[3])
	}
	if len(r.Bounds) == 4 {
		fmt.Fprintf(w, "bounds: [%.3f %.3f %.3f %.3f]\n", r.Bounds[0], r.Bounds[1], r.Bounds[2], r.Bounds[3])
	}
}
