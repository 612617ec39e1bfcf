// Package steps defines the immutable step snapshots produced by the traversal
// recorders, the Sequence that orders them, and the Recorder that maintains the
// mutable edge-status map while a recorder runs.
package steps

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwalk/core"
)

// Sentinel errors for sequence handling.
var (
	// ErrInvalidSequence is returned by Validate when a sequence breaks one of
	// the replay invariants.
	ErrInvalidSequence = errors.New("steps: invalid sequence")

	// ErrBadAlgorithm indicates an unknown algorithm name.
	ErrBadAlgorithm = errors.New("steps: unknown algorithm")
)

// Algorithm names the driver that produced a Sequence.
type Algorithm string

const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm accepts the canonical lower-case names.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case BFS, DFS, Dijkstra:
		return a, nil
	}

	return "", fmt.Errorf("%w: %q", ErrBadAlgorithm, s)
}

// Step is one snapshot of algorithm state. Every field is a private copy: a
// Step never shares backing storage with the Recorder or with another Step.
type Step struct {
	// Visited lists fully processed vertices in the order they finished.
	Visited []string `json:"visited"`

	// Frontier is the pending structure at this instant: queue front first for
	// BFS, stack bottom first for DFS, ascending priority for Dijkstra.
	Frontier []string `json:"frontier"`

	// Processing is the vertex being expanded, or "" on a transition step.
	Processing string `json:"processing"`

	// Edges holds every classified edge keyed by core.EdgeKey. Missing keys
	// are core.EdgeDefault.
	Edges map[string]core.EdgeStatus `json:"edges"`

	// Shortest is the best known distance per vertex (Dijkstra only).
	Shortest map[string]int64 `json:"shortest,omitempty"`
}

// IsTransition reports whether the step is the "vertex turned fully visited"
// step that closes an expansion.
func (s Step) IsTransition() bool { return s.Processing == "" }

// EdgeStatus returns the status of from→to at this step.
func (s Step) EdgeStatus(from, to string) core.EdgeStatus {
	return s.Edges[core.EdgeKey(from, to)]
}

// Sequence is the full ordered history of one run. It is append-only while a
// Recorder builds it and immutable once returned; consumers hold it by pointer
// and may use that pointer as its identity.
type Sequence struct {
	Algorithm Algorithm `json:"algorithm"`
	Directed  bool      `json:"directed"`
	Source    string    `json:"source"`
	Steps     []Step    `json:"steps"`
}

// Len returns the number of steps; a nil Sequence has none.
func (q *Sequence) Len() int {
	if q == nil {
		return 0
	}

	return len(q.Steps)
}

// At returns the step at index i and whether i is in range.
func (q *Sequence) At(i int) (Step, bool) {
	if i < 0 || i >= q.Len() {
		return Step{}, false
	}

	return q.Steps[i], true
}

// Final returns the last step, or false for an empty sequence.
func (q *Sequence) Final() (Step, bool) {
	return q.At(q.Len() - 1)
}
