package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/builder"
	"github.com/katalvlaran/stepwalk/document"
	"github.com/katalvlaran/stepwalk/steps"
)

var shapes = []string{"path", "cycle", "star", "wheel", "complete", "grid", "tree", "random"}

type genFlags struct {
	n          int
	rows, cols int
	depth      int
	p          float64
	seed       int64
	directed   bool
	minWeight  int64
	maxWeight  int64
	ids        string
	algorithm  string
	source     string
	format     string
	output     string
}

func (f *genFlags) constructor(shape string) (builder.Constructor, error) {
	switch shape {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "wheel":
		return builder.Wheel(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "tree":
		return builder.BinaryTree(f.depth), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	}
	return nil, fmt.Errorf("unknown shape %q (want %s)", shape, strings.Join(shapes, ", "))
}

func (f *genFlags) options() ([]builder.Option, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, fmt.Errorf("weights need 0 <= --min-weight <= --max-weight, got %d..%d", f.minWeight, f.maxWeight)
	}
	opts := []builder.Option{
		builder.WithSeed(f.seed),
		builder.WithWeightFn(builder.UniformWeightFn(f.minWeight, f.maxWeight)),
	}
	switch f.ids {
	case "numbers":
	case "letters":
		opts = append(opts, builder.WithIDScheme(builder.ExcelColumnIDFn))
	default:
		return nil, fmt.Errorf("unknown id scheme %q (want numbers or letters)", f.ids)
	}

	return opts, nil
}

func newGenCmd() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "gen <shape>",
		Short: "Generate a sample graph file",
		Long: `Generate a graph document for run, play and render.

Shapes: ` + strings.Join(shapes, ", ") + `. Grids use "r,c" vertex IDs; trees
are complete binary trees of --depth levels below the root. Edge weights are
drawn from [--min-weight, --max-weight] with --seed, as is the random shape.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cons, err := flags.constructor(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			var alg steps.Algorithm
			if flags.algorithm != "" {
				if alg, err = steps.ParseAlgorithm(flags.algorithm); err != nil {
					return err
				}
			}

			g, err := builder.Build(flags.directed, opts, cons)
			if err != nil {
				return err
			}
			source := flags.source
			if source == "" {
				source = g.Vertices[0].ID
			}
			doc := &document.Document{
				Algorithm: alg,
				Directed:  g.Directed,
				Source:    source,
				Nodes:     g.Vertices,
				Edges:     g.Edges,
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			format := document.Format(flags.format)
			if format == "" {
				format = document.TOML
				if flags.output != "" && flags.output != "-" {
					if format, err = document.FormatOf(flags.output); err != nil {
						return err
					}
				}
			}
			out, err := document.Encode(doc, format)
			if err != nil {
				return err
			}

			logger.Debug("generated", "shape", args[0], "vertices", len(g.Vertices), "edges", len(g.Edges))
			if flags.output == "" || flags.output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(flags.output, out, 0o644); err != nil {
				return err
			}
			logger.Info("wrote", "file", flags.output)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&flags.n, "vertices", "n", 6, "vertex count for path, cycle, star, wheel, complete and random")
	fs.IntVar(&flags.rows, "rows", 3, "grid rows")
	fs.IntVar(&flags.cols, "cols", 3, "grid columns")
	fs.IntVar(&flags.depth, "depth", 2, "tree depth")
	fs.Float64Var(&flags.p, "p", 0.3, "edge probability for random")
	fs.Int64Var(&flags.seed, "seed", 1, "random seed")
	fs.BoolVarP(&flags.directed, "directed", "d", false, "generate a directed graph")
	fs.Int64Var(&flags.minWeight, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&flags.maxWeight, "max-weight", 1, "largest edge weight")
	fs.StringVar(&flags.ids, "ids", "numbers", "vertex IDs: numbers or letters")
	fs.StringVarP(&flags.algorithm, "algorithm", "a", "", "algorithm stored in the file")
	fs.StringVarP(&flags.source, "source", "s", "", "source stored in the file (default: first vertex)")
	fs.StringVarP(&flags.format, "format", "f", "", "toml, yaml or json (default: from -o, else toml)")
	fs.StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
