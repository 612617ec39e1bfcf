package steps

import (
	"maps"

	"github.com/katalvlaran/stepwalk/core"
)

// Recorder owns the mutable state shared by all traversal drivers: the edge
// status map, the visited list and the growing Sequence. Drivers mutate it
// and call Emit at each micro-step; Emit copies everything it publishes.
//
// A Recorder is single-use and not safe for concurrent use.
type Recorder struct {
	directed   bool
	edges      map[string]core.EdgeStatus
	visited    []string
	visitedSet map[string]struct{}
	seq        *Sequence
	onStep     func(i int, s Step)
}

// NewRecorder starts an empty Sequence for algorithm run from source.
// When directed is false every Mark is mirrored onto the reverse key.
func NewRecorder(algorithm Algorithm, source string, directed bool) *Recorder {
	return &Recorder{
		directed:   directed,
		edges:      make(map[string]core.EdgeStatus),
		visitedSet: make(map[string]struct{}),
		seq: &Sequence{
			Algorithm: algorithm,
			Directed:  directed,
			Source:    source,
			Steps:     []Step{},
		},
	}
}

// OnStep installs a hook invoked after every Emit with the new step index.
func (r *Recorder) OnStep(fn func(i int, s Step)) {
	r.onStep = fn
}

// Status returns the current status of from→to.
func (r *Recorder) Status(from, to string) core.EdgeStatus {
	return r.edges[core.EdgeKey(from, to)]
}

// Classified reports whether from→to already has a non-default status.
func (r *Recorder) Classified(from, to string) bool {
	return r.Status(from, to) != core.EdgeDefault
}

// Mark sets from→to to s, and to→from as well on undirected graphs. The two
// keys change together or not at all: if either move is forbidden by
// core.CanTransition nothing is written and Mark returns false.
func (r *Recorder) Mark(from, to string, s core.EdgeStatus) bool {
	fwd := core.EdgeKey(from, to)
	if !core.CanTransition(r.edges[fwd], s) {
		return false
	}
	if r.directed {
		r.edges[fwd] = s
		return true
	}

	rev := core.EdgeKey(to, from)
	if !core.CanTransition(r.edges[rev], s) {
		return false
	}
	r.edges[fwd] = s
	r.edges[rev] = s

	return true
}

// PromoteInto turns every queued edge from an already visited vertex into v
// to visited. It returns the promoted tails in visited order.
func (r *Recorder) PromoteInto(v string) []string {
	var tails []string
	for _, u := range r.visited {
		if r.Status(u, v) == core.EdgeQueued && r.Mark(u, v, core.EdgeVisited) {
			tails = append(tails, u)
		}
	}

	return tails
}

// Visit appends v to the visited list. Repeated calls are ignored so the list
// stays a set.
func (r *Recorder) Visit(v string) {
	if _, ok := r.visitedSet[v]; ok {
		return
	}
	r.visitedSet[v] = struct{}{}
	r.visited = append(r.visited, v)
}

// Visited reports whether v has been appended by Visit.
func (r *Recorder) Visited(v string) bool {
	_, ok := r.visitedSet[v]
	return ok
}

// Order returns a copy of the visited list.
func (r *Recorder) Order() []string {
	return append([]string{}, r.visited...)
}

// Emit appends a snapshot built from the recorder state and the given frontier,
// processing vertex and distances. frontier and shortest are copied, so the
// caller may keep mutating them.
func (r *Recorder) Emit(frontier []string, processing string, shortest map[string]int64) {
	s := Step{
		Visited:    append([]string{}, r.visited...),
		Frontier:   append([]string{}, frontier...),
		Processing: processing,
		Edges:      maps.Clone(r.edges),
	}
	if shortest != nil {
		s.Shortest = maps.Clone(shortest)
	}
	r.seq.Steps = append(r.seq.Steps, s)
	if r.onStep != nil {
		r.onStep(len(r.seq.Steps)-1, s)
	}
}

// Sequence returns the recorded sequence. The recorder must not be used
// afterwards.
func (r *Recorder) Sequence() *Sequence {
	return r.seq
}
