// Package dfs records depth-first search over a core.AdjacencyMap as a
// replayable steps.Sequence.
package dfs

import (
	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/steps"
)

// stack is a LIFO frontier; Items lists it bottom first.
type stack struct {
	items   []string
	pending map[string]int
}

func (s *stack) Len() int { return len(s.items) }

func (s *stack) Pop() string {
	top := len(s.items) - 1
	id := s.items[top]
	s.items = s.items[:top]
	if s.pending[id]--; s.pending[id] == 0 {
		delete(s.pending, id)
	}

	return id
}

// Push pushes ids in order, so the last one is popped first.
func (s *stack) Push(ids ...string) {
	for _, id := range ids {
		s.items = append(s.items, id)
		s.pending[id]++
	}
}

func (s *stack) Contains(id string) bool { return s.pending[id] > 0 }

func (s *stack) Items() []string { return s.items }

// dfsWalker encapsulates state beyond the recorder during DFS.
type dfsWalker struct {
	opts DFSOptions // traversal options
	res  *DFSResult // result collector
}

// DFS records depth-first search on adj from startID.
//
// The frontier is an explicit stack. Each round's newly discovered neighbors
// are pushed in adjacency order, so the last discovered is expanded next.
// Each popped vertex yields three steps (see steps.Discover).
//
// Errors: ErrEmptySource, ErrStartVertexNotFound. No partial sequence is
// returned.
func DFS(adj core.AdjacencyMap, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate source
	if startID == "" {
		return nil, ErrEmptySource
	}
	if !adj.Has(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := adj.Len()
	w := &dfsWalker{
		opts: dopts,
		res: &DFSResult{
			Depth:  map[string]int{startID: 0},
			Parent: make(map[string]string, n),
		},
	}

	rec := steps.NewRecorder(steps.DFS, startID, adj.Directed())
	rec.OnStep(dopts.OnStep)

	// 4. Walk
	st := &stack{items: make([]string, 0, n), pending: make(map[string]int, n)}
	steps.Discover(adj, startID, st, rec, w.round)

	w.res.Sequence = rec.Sequence()
	w.res.Order = rec.Order()

	return w.res, nil
}

// round records tree links for one expansion and fires OnVisit.
func (w *dfsWalker) round(r steps.Round) {
	for _, id := range r.Staged {
		w.res.Parent[id] = r.Processing
		w.res.Depth[id] = w.res.Depth[r.Processing] + 1
	}
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(r.Processing, r.Staged)
	}
}
