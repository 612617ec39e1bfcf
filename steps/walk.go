package steps

import "github.com/katalvlaran/stepwalk/core"

// Frontier is the pending-vertex structure a discovery walk draws from.
// BFS backs it with a queue and DFS with a stack; the walk itself is the same.
type Frontier interface {
	// Len returns the number of pending vertices.
	Len() int
	// Pop removes the next vertex per the discipline.
	Pop() string
	// Push adds vertices in the given order.
	Push(ids ...string)
	// Contains reports whether id is pending.
	Contains(id string) bool
	// Items returns the pending vertices in display order.
	Items() []string
}

// Round describes one expansion of a discovery walk.
type Round struct {
	Processing string
	Staged     []string // newly discovered neighbors, first-seen order
}

// Discover runs the shared discovery protocol from source until f is empty,
// emitting exactly three steps per expansion into rec:
//
//  1. after the pop: the vertex is processing and queued edges into it from
//     visited vertices are promoted to visited;
//  2. after the frontier is extended and new edges are classified;
//  3. after the vertex joins the visited list and processing is cleared.
//
// A neighbor is staged when it is not visited, not the processing vertex, not
// pending and not already staged; its edge becomes queued. Any other neighbor
// whose edge is still unclassified makes that edge useless. onRound, if set,
// is called after step 3 of each expansion.
//
// source must be a vertex of adj; callers validate it.
//
// Complexity: O(V + E) expansions work, plus O(S·(V+E)) for S snapshots.
func Discover(adj core.AdjacencyMap, source string, f Frontier, rec *Recorder, onRound func(Round)) {
	f.Push(source)
	for f.Len() > 0 {
		v := f.Pop()

		// step 1: processing assigned, discovery edge resolved
		rec.PromoteInto(v)
		rec.Emit(f.Items(), v, nil)

		// step 2: classify neighbors, extend frontier
		staged := make([]string, 0)
		seen := make(map[string]struct{})
		for _, n := range adj.Neighbors(v) {
			_, already := seen[n]
			if !already && n != v && !rec.Visited(n) && !f.Contains(n) {
				seen[n] = struct{}{}
				staged = append(staged, n)
				rec.Mark(v, n, core.EdgeQueued)
				continue
			}
			if !rec.Classified(v, n) {
				rec.Mark(v, n, core.EdgeUseless)
			}
		}
		f.Push(staged...)
		rec.Emit(f.Items(), v, nil)

		// step 3: vertex turns fully visited
		rec.Visit(v)
		rec.Emit(f.Items(), "", nil)

		if onRound != nil {
			onRound(Round{Processing: v, Staged: staged})
		}
	}
}
