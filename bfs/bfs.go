// Package bfs records breadth-first search over a core.AdjacencyMap as a
// replayable steps.Sequence, together with visit order, layers, depths and
// parent links.
package bfs

import (
	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/steps"
)

// queue is a FIFO frontier with O(1) membership checks.
type queue struct {
	items   []string
	pending map[string]int
	onPop   func(id string)
}

func newQueue(capacity int) *queue {
	return &queue{
		items:   make([]string, 0, capacity),
		pending: make(map[string]int, capacity),
	}
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Pop() string {
	id := q.items[0]
	q.items = q.items[1:]
	q.pending[id]--
	if q.pending[id] == 0 {
		delete(q.pending, id)
	}
	if q.onPop != nil {
		q.onPop(id)
	}

	return id
}

func (q *queue) Push(ids ...string) {
	for _, id := range ids {
		q.items = append(q.items, id)
		q.pending[id]++
	}
}

func (q *queue) Contains(id string) bool { return q.pending[id] > 0 }

func (q *queue) Items() []string { return q.items }

// walker encapsulates mutable BFS state beyond the recorder.
type walker struct {
	opts BFSOptions
	res  *BFSResult
}

// BFS records breadth-first search on adj starting from source.
//
// Each dequeued vertex yields three steps (see steps.Discover). Neighbors are
// queued in adjacency order, so the sequence is fully reproducible.
// Returns ErrEmptySource or ErrStartVertexNotFound for invalid input; no
// partial sequence is ever returned.
//
// Complexity: Time O(V + E) for the search plus O(S·(V+E)) for S = 3·V'
// snapshots, where V' is the number of reachable vertices.
func BFS(adj core.AdjacencyMap, source string, opts ...Option) (*BFSResult, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if !adj.Has(source) {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := adj.Len()
	w := &walker{
		opts: o,
		res: &BFSResult{
			Layers: [][]string{{source}},
			Depth:  map[string]int{source: 0},
			Parent: make(map[string]string, n),
		},
	}

	rec := steps.NewRecorder(steps.BFS, source, adj.Directed())
	rec.OnStep(o.OnStep)

	q := newQueue(n)
	q.onPop = func(id string) { w.opts.OnDequeue(id, w.res.Depth[id]) }

	steps.Discover(adj, source, q, rec, w.round)

	w.res.Sequence = rec.Sequence()
	w.res.Order = rec.Order()

	return w.res, nil
}

// round records depths, parents and the layer discovered by one expansion.
func (w *walker) round(r steps.Round) {
	if len(r.Staged) == 0 {
		return
	}
	d := w.res.Depth[r.Processing] + 1
	for _, id := range r.Staged {
		w.res.Depth[id] = d
		w.res.Parent[id] = r.Processing
	}
	w.res.Layers = append(w.res.Layers, append([]string{}, r.Staged...))
}
