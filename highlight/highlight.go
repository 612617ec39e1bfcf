package highlight

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepwalk/steps"
)

// ErrNoProgram is returned by For for an algorithm without pseudocode.
var ErrNoProgram = errors.New("highlight: no pseudocode for algorithm")

// Lines assigns pseudocode line indices to the three step roles.
type Lines struct {
	Pop         []int // frontier removal
	Expand      []int // neighbor enumeration and frontier extension
	MarkVisited []int // vertex turns fully visited
}

// Program is a pseudocode listing with its role lines.
type Program struct {
	Algorithm steps.Algorithm
	Source    []string
	Lines     Lines
}

// Table holds the active line indices per step index.
type Table [][]int

// At returns the active lines of step i, or nil when i is out of range.
func (t Table) At(i int) []int {
	if i < 0 || i >= len(t) {
		return nil
	}

	return t[i]
}

// Active reports whether line is emphasized at step i.
func (t Table) Active(i, line int) bool {
	return slices.Contains(t.At(i), line)
}

var programs = map[steps.Algorithm]Program{
	steps.BFS: {
		Algorithm: steps.BFS,
		Source: []string{
			"BFS(G, s):",
			"  Q ← [s]",
			"  while Q is not empty:",
			"    v ← Q.dequeue()",
			"    for each n in G.adj[v]:",
			"      if n is not visited and not in Q:",
			"        Q.enqueue(n)",
			"    mark v visited",
		},
		Lines: Lines{Pop: []int{2, 3}, Expand: []int{4, 5, 6}, MarkVisited: []int{7}},
	},
	steps.DFS: {
		Algorithm: steps.DFS,
		Source: []string{
			"DFS(G, s):",
			"  S ← [s]",
			"  while S is not empty:",
			"    v ← S.pop()",
			"    for each n in G.adj[v]:",
			"      if n is not visited and not in S:",
			"        S.push(n)",
			"    mark v visited",
		},
		Lines: Lines{Pop: []int{2, 3}, Expand: []int{4, 5, 6}, MarkVisited: []int{7}},
	},
	steps.Dijkstra: {
		Algorithm: steps.Dijkstra,
		Source: []string{
			"Dijkstra(G, s):",
			"  dist[*] ← ∞; dist[s] ← 0",
			"  PQ ← [(0, s)]",
			"  while PQ is not empty:",
			"    v ← PQ.popMin()",
			"    if v is visited: continue",
			"    for each n in G.adj[v]:",
			"      if dist[v] + w(v, n) < dist[n]:",
			"        dist[n] ← dist[v] + w(v, n)",
			"        PQ.push(n, dist[n])",
			"    mark v visited",
		},
		Lines: Lines{Pop: []int{3, 4, 5}, Expand: []int{6, 7, 8, 9}, MarkVisited: []int{10}},
	},
}

// For returns a copy of the pseudocode program for alg.
func For(alg steps.Algorithm) (Program, error) {
	p, ok := programs[alg]
	if !ok {
		return Program{}, fmt.Errorf("%w: %q", ErrNoProgram, alg)
	}
	p.Source = slices.Clone(p.Source)
	p.Lines = Lines{
		Pop:         slices.Clone(p.Lines.Pop),
		Expand:      slices.Clone(p.Lines.Expand),
		MarkVisited: slices.Clone(p.Lines.MarkVisited),
	}

	return p, nil
}

// Map builds the highlight table for seq in one pass.
//
// A transition step (empty Processing) gets MarkVisited. Two consecutive
// processing steps get Pop and Expand and the walk moves past both. Steps left
// over get Pop. Entries are fresh slices owned by the table.
func Map(seq *steps.Sequence, lines Lines) Table {
	n := seq.Len()
	table := make(Table, n)
	for i := 0; i < n; {
		cur := seq.Steps[i]
		if cur.IsTransition() {
			table[i] = slices.Clone(lines.MarkVisited)
			i++
			continue
		}
		if i+1 < n && !seq.Steps[i+1].IsTransition() {
			table[i] = slices.Clone(lines.Pop)
			table[i+1] = slices.Clone(lines.Expand)
			i += 2
			continue
		}
		i++
	}
	for i := range table {
		if table[i] == nil {
			table[i] = slices.Clone(lines.Pop)
		}
	}

	return table
}
