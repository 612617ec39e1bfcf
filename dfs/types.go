// Package dfs defines types and options for step-recording depth-first search,
// including a finish hook and per-step observation.
package dfs

import (
	"errors"

	"github.com/katalvlaran/stepwalk/steps"
)

var (
	// ErrEmptySource is returned when no start vertex was selected.
	ErrEmptySource = errors.New("dfs: source vertex ID is empty")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the adjacency map.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS recording.
// Use with DFS(adj, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds observation hooks for DFS recording.
// Hooks cannot abort a run: a recording is either complete or absent.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex turns fully visited,
	// with the neighbors it pushed.
	OnVisit func(id string, pushed []string)

	// OnStep, if non-nil, is invoked after each recorded step.
	OnStep func(i int, s steps.Step)
}

// DefaultOptions returns a DFSOptions struct with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as the finish hook.
func WithOnVisit(fn func(id string, pushed []string)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnStep returns an Option that observes every recorded step.
func WithOnStep(fn func(i int, s steps.Step)) Option {
	return func(o *DFSOptions) {
		o.OnStep = fn
	}
}

// DFSResult captures the outcome of a recorded depth-first traversal.
type DFSResult struct {
	// Sequence is the step history, three steps per popped vertex.
	Sequence *steps.Sequence

	// Order records vertices in the sequence they turned visited.
	Order []string

	// Depth maps each reached vertex ID to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex that pushed it.
	// The start vertex does not appear in this map.
	Parent map[string]string
}
