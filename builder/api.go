package builder

import (
	"fmt"

	"github.com/katalvlaran/stepwalk/core"
)

// MaxVertices bounds every generated graph.
const MaxVertices = 1 << 16

// Graph is a generated vertex and edge list in insertion order.
type Graph struct {
	Directed bool
	Vertices []core.Vertex
	Edges    []core.Edge

	index map[string]struct{}
}

// AddVertex appends id; repeated IDs return core.ErrDuplicateVertex.
func (g *Graph) AddVertex(id string) error {
	if g.index == nil {
		g.index = make(map[string]struct{})
	}
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("%w: %q", core.ErrDuplicateVertex, id)
	}
	if len(g.Vertices) >= MaxVertices {
		return fmt.Errorf("%w: more than %d vertices", ErrTooManyVertices, MaxVertices)
	}
	g.index[id] = struct{}{}
	g.Vertices = append(g.Vertices, core.Vertex{ID: id})

	return nil
}

// AddEdge appends from→to; both endpoints must already exist.
func (g *Graph) AddEdge(from, to string, w int64) error {
	for _, id := range [2]string{from, to} {
		if _, ok := g.index[id]; !ok {
			return fmt.Errorf("%w: %q", core.ErrUnknownVertex, id)
		}
	}
	g.Edges = append(g.Edges, core.Edge{From: from, To: to, Weight: w})

	return nil
}

// Constructor appends one topology to g using the resolved config.
type Constructor func(g *Graph, cfg config) error

// Build creates a graph, resolves opts and applies cons in order.
// Constructor errors are wrapped once with "Build: ".
func Build(directed bool, opts []Option, cons ...Constructor) (*Graph, error) {
	g := &Graph{Directed: directed}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if _, err := core.BuildAdjacency(g.Vertices, g.Edges, g.Directed); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// addVertices adds cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *Graph, cfg config, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

func addEdge(g *Graph, cfg config, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
