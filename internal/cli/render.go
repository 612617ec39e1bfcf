package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/render"
)

func newRenderCmd() *cobra.Command {
	var (
		flags   runFlags
		step    int
		format  string
		output  string
		weights bool
	)

	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Draw one recorded step as DOT or SVG",
		Long: `Record a traversal and draw the graph colored by the statuses of one
step. Negative --step values count from the end, so -1 is the final step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			doc, req, err := flags.request(args[0])
			if err != nil {
				return err
			}
			run, err := record(ctx, flags.newEngine(ctx), req)
			if err != nil {
				return err
			}

			idx := step
			if idx < 0 {
				idx += run.Sequence.Len()
			}
			s, ok := run.Sequence.At(idx)
			if !ok {
				return fmt.Errorf("step %d out of range [0, %d)", step, run.Sequence.Len())
			}

			dot := render.ToDOT(doc.Graph(), s, render.Options{
				Weights: weights,
				Title:   fmt.Sprintf("%s from %s, step %d/%d", req.Algorithm, req.Source, idx+1, run.Sequence.Len()),
			})

			var out []byte
			switch format {
			case "dot":
				out = []byte(dot)
			case "svg":
				p := newProgress(logger)
				if out, err = render.RenderSVG(ctx, dot); err != nil {
					return err
				}
				p.done("rendered svg", "bytes", len(out))
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			logger.Info("wrote", "file", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&step, "step", -1, "step index to draw")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&weights, "weights", false, "label edges with their weights")

	return cmd
}
