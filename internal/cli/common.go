package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/config"
	"github.com/katalvlaran/stepwalk/document"
	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/remote"
	"github.com/katalvlaran/stepwalk/steps"
)

// runFlags are shared by commands that record a run.
type runFlags struct {
	algorithm string
	source    string
	remote    string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "bfs, dfs or dijkstra (default: from the file, else bfs)")
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source vertex (default: from the file)")
	cmd.Flags().StringVar(&f.remote, "remote", "", "compute Dijkstra on the stepwalk server at this URL")
}

// request loads path and applies the flag overrides.
func (f *runFlags) request(path string) (*document.Document, engine.Request, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, engine.Request{}, err
	}
	req, err := f.requestFor(doc)
	if err != nil {
		return nil, engine.Request{}, err
	}

	return doc, req, nil
}

// requestFor applies the flag overrides to an already loaded document.
func (f *runFlags) requestFor(doc *document.Document) (engine.Request, error) {
	var alg steps.Algorithm
	if f.algorithm != "" {
		var err error
		if alg, err = steps.ParseAlgorithm(f.algorithm); err != nil {
			return engine.Request{}, err
		}
	}

	return doc.Request(alg, f.source), nil
}

// newEngine routes Dijkstra to a remote server when one is configured; the
// flag wins over the config file.
func (f *runFlags) newEngine(ctx context.Context) *engine.Engine {
	cfg := configFromContext(ctx)
	url := f.remote
	if url == "" {
		url = cfg.Remote.URL
	}
	if url == "" {
		return engine.New()
	}

	loggerFromContext(ctx).Debug("dijkstra goes remote", "url", url)
	return engine.New(engine.WithDijkstraComputer(remoteClient(url, cfg)))
}

func remoteClient(url string, cfg config.Config) *remote.Client {
	return remote.NewClient(url, remote.WithTimeout(cfg.Remote.Timeout))
}

// record runs req and logs its shape.
func record(ctx context.Context, e *engine.Engine, req engine.Request) (*engine.Run, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)
	run, err := e.Run(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("record %s from %q: %w", req.Algorithm, req.Source, err)
	}
	p.done("recorded", "algorithm", req.Algorithm, "source", req.Source, "steps", run.Sequence.Len(), "run", run.ID)

	return run, nil
}
