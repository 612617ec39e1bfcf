// Package dijkstra defines core types and configuration options
// for step-recording Dijkstra shortest paths.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the map).
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnStep:           hook observing every recorded step.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrVertexNotFound  if the source vertex does not exist in the map.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepwalk/steps"
)

// Infinity is the distance of a vertex no relaxation has reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra recorder.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided adjacency map.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra recorder.
//
// Source           – starting vertex ID (must be non-empty and present in the map).
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	Source           string                    // The ID of the source vertex
	InfEdgeThreshold int64                     // Weight threshold above which edges are non-traversable
	OnStep           func(i int, s steps.Step) // Called after every recorded step

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Such edges are classified useless when met.
// Zero or negative values make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnStep registers a hook called after each recorded step.
func WithOnStep(fn func(i int, s steps.Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - InfEdgeThreshold: Infinity (no edges treated as impassable).
//   - OnStep:           nil.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the outcome of a recorded Dijkstra run.
//   - Sequence: three steps per finalized vertex; each carries a Shortest snapshot.
//   - Order: vertices in the order their distance became final.
//   - Dist: final distances, Infinity for unreachable vertices.
//   - Prev: predecessor on the shortest path; the source and unreachable
//     vertices are absent.
type Result struct {
	Sequence *steps.Sequence
	Order    []string
	Dist     map[string]int64
	Prev     map[string]string
}

// PathTo rebuilds the shortest path from the source to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if d, ok := r.Dist[dest]; !ok || d == Infinity {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
