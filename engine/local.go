package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwalk/bfs"
	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/dfs"
	"github.com/katalvlaran/stepwalk/dijkstra"
	"github.com/katalvlaran/stepwalk/steps"
)

// Local records sequences in process.
type Local struct{}

// Compute records req with the matching driver. The run is not interruptible;
// ctx is only checked before it starts.
func (Local) Compute(ctx context.Context, req Request) (*steps.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	adj, err := req.Adjacency()
	if err != nil {
		return nil, err
	}

	switch req.Algorithm {
	case steps.BFS:
		res, err := bfs.BFS(adj, req.Source)
		if err != nil {
			return nil, err
		}
		return res.Sequence, nil
	case steps.DFS:
		res, err := dfs.DFS(adj, req.Source)
		if err != nil {
			return nil, err
		}
		return res.Sequence, nil
	case steps.Dijkstra:
		res, err := dijkstra.Dijkstra(adj, core.Weights(req.Edges, req.Directed), dijkstra.Source(req.Source))
		if err != nil {
			return nil, err
		}
		return res.Sequence, nil
	}

	return nil, fmt.Errorf("%w: %q", steps.ErrBadAlgorithm, req.Algorithm)
}
