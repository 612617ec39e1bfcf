package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/document"
	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/internal/tui"
)

// errNoTerminal is returned by play when stdin or stdout is not a terminal.
var errNoTerminal = errors.New("play needs an interactive terminal; use `stepwalk run` instead")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newPlayCmd() *cobra.Command {
	var (
		flags    runFlags
		watch    bool
		autoplay bool
	)

	cmd := &cobra.Command{
		Use:   "play <graph>",
		Short: "Step through a traversal in the terminal",
		Long: `Record a traversal and open the terminal player. Use →/l and ←/h to move,
r to restart, space to autoplay and q to quit. With --watch the run is
rebuilt whenever the graph file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNoTerminal
			}

			doc, req, err := flags.request(args[0])
			if err != nil {
				return err
			}
			if req.Source == "" {
				if req.Source, err = pickSource(doc); err != nil {
					return err
				}
				flags.source = req.Source
			}

			eng := flags.newEngine(ctx)
			run, err := record(ctx, eng, req)
			if err != nil {
				return err
			}

			opts := []tui.Option{tui.WithInterval(cfg.Play.Interval)}
			if autoplay {
				opts = append(opts, tui.WithAutoplay())
			}
			p := tea.NewProgram(tui.New(run, opts...), tea.WithAltScreen(), tea.WithContext(ctx))

			if watch {
				watchCtx, cancel := context.WithCancel(ctx)
				defer cancel()
				go func() {
					err := document.Watch(watchCtx, args[0], func(doc *document.Document, err error) {
						p.Send(reload(watchCtx, eng, &flags, doc, err))
					})
					if err != nil {
						logger.Error("watch stopped", "err", err)
					}
				}()
			}

			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload when the graph file changes")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start in autoplay mode")

	return cmd
}

// reload rebuilds the run from the document the watcher delivered.
func reload(ctx context.Context, eng *engine.Engine, flags *runFlags, doc *document.Document, watchErr error) tui.ReloadMsg {
	if watchErr != nil {
		return tui.ReloadMsg{Err: watchErr}
	}
	req, err := flags.requestFor(doc)
	if err != nil {
		return tui.ReloadMsg{Err: err}
	}
	run, err := eng.Run(ctx, req)
	if err != nil {
		return tui.ReloadMsg{Err: err}
	}

	return tui.ReloadMsg{Run: run}
}

// pickSource asks for a source vertex when neither the file nor the flags
// name one.
func pickSource(doc *document.Document) (string, error) {
	var source string
	err := huh.NewSelect[string]().
		Title("Source vertex").
		Options(huh.NewOptions(doc.VertexIDs()...)...).
		Value(&source).
		Run()
	if err != nil {
		return "", err
	}

	return source, nil
}
