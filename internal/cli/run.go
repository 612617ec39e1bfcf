package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/dijkstra"
	"github.com/katalvlaran/stepwalk/engine"
)

func newRunCmd() *cobra.Command {
	var (
		flags  runFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run <graph>",
		Short: "Record a traversal and print every step",
		Long: `Record a traversal of a graph file (TOML, YAML or JSON) and print the
step table: processing vertex, frontier, visited list, highlighted
pseudocode lines and, for Dijkstra, the best known distances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, req, err := flags.request(args[0])
			if err != nil {
				return err
			}
			run, err := record(ctx, flags.newEngine(ctx), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(run.Sequence)
			}
			return writeStepTable(cmd.OutOrStdout(), run)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sequence in its wire form")

	return cmd
}

func writeStepTable(w io.Writer, run *engine.Run) error {
	headers := []string{"STEP", "PROCESSING", "FRONTIER", "VISITED", "LINES"}
	withDist := run.Sequence.Steps[0].Shortest != nil
	if withDist {
		headers = append(headers, "DISTANCES")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, s := range run.Sequence.Steps {
		processing := s.Processing
		if processing == "" {
			processing = "-"
		}
		cells := []string{
			strconv.Itoa(i),
			processing,
			strings.Join(s.Frontier, " "),
			strings.Join(s.Visited, " "),
			joinInts(run.Highlights.At(i)),
		}
		if withDist {
			cells = append(cells, formatDistances(run, s.Shortest))
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

func formatDistances(run *engine.Run, dist map[string]int64) string {
	parts := make([]string, 0, len(dist))
	for _, v := range run.Request.Vertices {
		d, ok := dist[v.ID]
		if !ok {
			continue
		}
		if d == dijkstra.Infinity {
			parts = append(parts, v.ID+"=∞")
			continue
		}
		parts = append(parts, v.ID+"="+strconv.FormatInt(d, 10))
	}

	return strings.Join(parts, " ")
}
