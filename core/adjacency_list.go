package core

import (
	"fmt"
	"strings"
)

// AdjacencyMap is the forward adjacency of a graph: vertex ID → ordered
// neighbor IDs, in edge insertion order. It is built once per run by
// BuildAdjacency and never mutated afterwards; the zero value is an empty
// directed graph.
type AdjacencyMap struct {
	directed bool
	order    []string            // vertex IDs in input order
	adj      map[string][]string // vertex ID → neighbors in edge order
}

// BuildAdjacency converts a vertex list and an edge list into an AdjacencyMap.
//
// Every vertex gets an entry, possibly empty. For each edge, To is appended to
// From's list; when directed is false, From is also appended to To's list.
// Parallel edges are kept, so a neighbor may appear more than once.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadVertexID, ErrDuplicateVertex for a malformed vertex list.
//   - ErrUnknownVertex if an edge endpoint is not in vertices.
//
// Complexity: O(V + E) time and space.
func BuildAdjacency(vertices []Vertex, edges []Edge, directed bool) (AdjacencyMap, error) {
	m := AdjacencyMap{
		directed: directed,
		order:    make([]string, 0, len(vertices)),
		adj:      make(map[string][]string, len(vertices)),
	}

	// 1) Register vertices in input order.
	for _, v := range vertices {
		if err := validateID(v.ID); err != nil {
			return AdjacencyMap{}, err
		}
		if _, dup := m.adj[v.ID]; dup {
			return AdjacencyMap{}, fmt.Errorf("%w: %q", ErrDuplicateVertex, v.ID)
		}
		m.adj[v.ID] = []string{}
		m.order = append(m.order, v.ID)
	}

	// 2) Append neighbors, mirroring undirected edges.
	for _, e := range edges {
		if _, ok := m.adj[e.From]; !ok {
			return AdjacencyMap{}, fmt.Errorf("%w: edge %s references %q", ErrUnknownVertex, EdgeKey(e.From, e.To), e.From)
		}
		if _, ok := m.adj[e.To]; !ok {
			return AdjacencyMap{}, fmt.Errorf("%w: edge %s references %q", ErrUnknownVertex, EdgeKey(e.From, e.To), e.To)
		}
		m.adj[e.From] = append(m.adj[e.From], e.To)
		if !directed {
			m.adj[e.To] = append(m.adj[e.To], e.From)
		}
	}

	return m, nil
}

func validateID(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if strings.Contains(id, EdgeKeyDelimiter) {
		return fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return nil
}

// Directed reports whether edges were added one-way only.
func (m AdjacencyMap) Directed() bool { return m.directed }

// Has reports whether id is a vertex of the map.
func (m AdjacencyMap) Has(id string) bool {
	_, ok := m.adj[id]
	return ok
}

// Len returns the number of vertices.
func (m AdjacencyMap) Len() int { return len(m.order) }

// Vertices returns a copy of the vertex IDs in input order.
func (m AdjacencyMap) Vertices() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Neighbors returns a copy of id's neighbors in edge insertion order.
// Unknown IDs yield nil.
func (m AdjacencyMap) Neighbors(id string) []string {
	nbs, ok := m.adj[id]
	if !ok {
		return nil
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out
}

// Weights returns the weight of every edge keyed by EdgeKey. Undirected edges
// are recorded under both orientations. For parallel edges the lightest
// weight wins, which is the only one a shortest-path search can use.
//
// Complexity: O(E).
func Weights(edges []Edge, directed bool) map[string]int64 {
	w := make(map[string]int64, 2*len(edges))
	put := func(from, to string, weight int64) {
		k := EdgeKey(from, to)
		if cur, ok := w[k]; ok && cur <= weight {
			return
		}
		w[k] = weight
	}
	for _, e := range edges {
		put(e.From, e.To, e.Weight)
		if !directed {
			put(e.To, e.From, e.Weight)
		}
	}

	return w
}
