// Package bfs provides tunable options and error definitions
// for step-recording breadth-first search over a core.AdjacencyMap.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwalk/steps"
)

// Sentinel errors for BFS execution.
var (
	// ErrEmptySource is returned when no start vertex was selected.
	ErrEmptySource = errors.New("bfs: source vertex ID is empty")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to observe BFS recording.
type BFSOptions struct {
	// OnStep is called after each recorded step with its index.
	OnStep func(i int, s steps.Step)

	// OnDequeue is called when a vertex leaves the queue, with its depth.
	OnDequeue func(id string, depth int)
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnStep:    func(int, steps.Step) {},
		OnDequeue: func(string, int) {},
	}
}

// WithOnStep registers a callback run after every recorded step.
func WithOnStep(fn func(i int, s steps.Step)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnDequeue registers a callback run when a vertex is dequeued.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// BFSResult holds the outcome of a recorded BFS:
//   - Sequence: the step history, three steps per dequeued vertex.
//   - Order: vertices in the order they turned visited.
//   - Layers: the source, then each round's newly queued vertices.
//   - Depth: distance in edges from the source.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Sequence *steps.Sequence
	Order    []string
	Layers   [][]string
	Depth    map[string]int
	Parent   map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
