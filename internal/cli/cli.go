// Package cli implements the stepwalk command-line interface.
//
// # Commands
//
//   - run:    record a traversal of a graph file and print its steps
//   - play:   scrub through a recorded traversal in the terminal
//   - render: draw one step as Graphviz DOT or SVG
//   - serve:  serve sequences over HTTP for remote clients
//   - gen:    write a sample graph file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; otherwise the
// level comes from the [log] section of --config. Loggers and the loaded
// configuration are passed through context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "stepwalk",
		Short:         "stepwalk records and replays graph traversals step by step",
		Long:          `stepwalk records BFS, DFS and Dijkstra runs as replayable step histories and lets you scrub through them with the pseudocode highlighted.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stepwalk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newGenCmd())

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
