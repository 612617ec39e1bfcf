package dijkstra

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/steps"
)

// Dijkstra records shortest-path search over adj from Options.Source.
// weights is keyed by core.EdgeKey (see core.Weights); a missing key weighs 0.
//
// Each finalized vertex yields three steps:
//
//  1. popped: the queued edge that set its final distance turns visited;
//  2. relaxed: every improved neighbor's edge is queued and the edge it
//     replaces becomes useless; non-improving unclassified edges become useless;
//  3. finalized: the vertex joins Visited and Processing is cleared.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. InfEdgeThreshold must be positive (ErrBadInfThreshold).
//  3. adj must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V) search plus O(V·(V+E)) snapshot copying
//   - Space: O(V·(V+E))
func Dijkstra(adj core.AdjacencyMap, weights map[string]int64, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !adj.Has(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 2) Prepare runner
	V := adj.Len()
	r := &runner{
		adj:     adj,
		weights: weights,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		pq:      make(nodePQ, 0, V),
		rec:     steps.NewRecorder(steps.Dijkstra, cfg.Source, adj.Directed()),
	}
	r.rec.OnStep(cfg.OnStep)

	// 3) Run
	r.init()
	r.process()

	return &Result{
		Sequence: r.rec.Sequence(),
		Order:    r.rec.Order(),
		Dist:     r.dist,
		Prev:     r.prev,
	}, nil
}

// runner holds the mutable state for a single Dijkstra recording.
type runner struct {
	adj     core.AdjacencyMap // read-only input
	weights map[string]int64  // EdgeKey → weight
	options Options           // configuration
	dist    map[string]int64  // vertex ID → current best distance from Source
	prev    map[string]string // vertex ID → predecessor on the best known path
	pq      nodePQ            // min-heap for lazy priority queue
	seq     uint64            // push counter for tie-breaking
	rec     *steps.Recorder   // edge statuses, visited list, steps
}

// init sets dist[v] = Infinity for all vertices and pushes Source at 0.
func (r *runner) init() {
	for _, v := range r.adj.Vertices() {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process is the main loop: pop the closest vertex, skip stale entries,
// and record its three steps.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.rec.Visited(u) {
			continue // stale duplicate
		}

		// step 1
		r.rec.PromoteInto(u)
		r.rec.Emit(r.frontier(), u, r.dist)

		// step 2
		r.relax(u)
		r.rec.Emit(r.frontier(), u, r.dist)

		// step 3
		r.rec.Visit(u)
		r.rec.Emit(r.frontier(), "", r.dist)
	}
}

// relax examines each neighbor of u in adjacency order.
func (r *runner) relax(u string) {
	for _, v := range r.adj.Neighbors(u) {
		w := r.weights[core.EdgeKey(u, v)]
		if v == u || r.rec.Visited(v) || w >= r.options.InfEdgeThreshold {
			r.markUseless(u, v)
			continue
		}

		newDist := addDist(r.dist[u], w)
		if newDist >= r.dist[v] {
			r.markUseless(u, v)
			continue
		}

		// A strictly shorter path: the edge that set the old distance loses.
		if p, ok := r.prev[v]; ok {
			r.rec.Mark(p, v, core.EdgeUseless)
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.rec.Mark(u, v, core.EdgeQueued)
		r.push(v, newDist)
	}
}

func (r *runner) markUseless(u, v string) {
	if !r.rec.Classified(u, v) {
		r.rec.Mark(u, v, core.EdgeUseless)
	}
}

// frontier lists live heap entries (unvisited, current distance) by priority.
func (r *runner) frontier() []string {
	live := make([]*nodeItem, 0, len(r.pq))
	for _, it := range r.pq {
		if !r.rec.Visited(it.id) && it.dist == r.dist[it.id] {
			live = append(live, it)
		}
	}
	slices.SortFunc(live, func(a, b *nodeItem) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	ids := make([]string, len(live))
	for i, it := range live {
		ids[i] = it.id
	}

	return ids
}

// addDist adds without wrapping past Infinity.
func addDist(d, w int64) int64 {
	if w > 0 && d > Infinity-w {
		return Infinity
	}

	return d + w
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist, then earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
