package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwalk/core"
)

func vertices(ids ...string) []core.Vertex {
	out := make([]core.Vertex, len(ids))
	for i, id := range ids {
		out[i] = core.Vertex{ID: id}
	}

	return out
}

// TestBuildAdjacency_Directed checks one-way appends and empty entries.
func TestBuildAdjacency_Directed(t *testing.T) {
	adj, err := core.BuildAdjacency(
		vertices("A", "B", "C", "D"),
		[]core.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "D"}},
		true,
	)
	require.NoError(t, err)

	assert.True(t, adj.Directed())
	assert.Equal(t, 4, adj.Len())
	assert.Equal(t, []string{"A", "B", "C", "D"}, adj.Vertices())
	assert.Equal(t, []string{"B", "C"}, adj.Neighbors("A"))
	assert.Equal(t, []string{"D"}, adj.Neighbors("B"))
	assert.Empty(t, adj.Neighbors("C"))
	assert.NotNil(t, adj.Neighbors("C"), "every vertex has an entry")
	assert.Nil(t, adj.Neighbors("Z"))
}

// TestBuildAdjacency_Undirected checks that edges are mirrored in edge order.
func TestBuildAdjacency_Undirected(t *testing.T) {
	adj, err := core.BuildAdjacency(
		vertices("A", "B", "C"),
		[]core.Edge{{From: "A", To: "B"}, {From: "C", To: "A"}},
		false,
	)
	require.NoError(t, err)

	assert.False(t, adj.Directed())
	assert.Equal(t, []string{"B", "C"}, adj.Neighbors("A"))
	assert.Equal(t, []string{"A"}, adj.Neighbors("B"))
	assert.Equal(t, []string{"A"}, adj.Neighbors("C"))
}

// TestBuildAdjacency_ParallelEdgesKept verifies there is no deduplication.
func TestBuildAdjacency_ParallelEdgesKept(t *testing.T) {
	adj, err := core.BuildAdjacency(
		vertices("A", "B"),
		[]core.Edge{{From: "A", To: "B"}, {From: "A", To: "B"}},
		true,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "B"}, adj.Neighbors("A"))
}

// TestBuildAdjacency_Errors covers every rejected input.
func TestBuildAdjacency_Errors(t *testing.T) {
	cases := []struct {
		name  string
		verts []core.Vertex
		edges []core.Edge
		want  error
	}{
		{"unknown from", vertices("A"), []core.Edge{{From: "X", To: "A"}}, core.ErrUnknownVertex},
		{"unknown to", vertices("A"), []core.Edge{{From: "A", To: "X"}}, core.ErrUnknownVertex},
		{"empty id", vertices(""), nil, core.ErrEmptyVertexID},
		{"delimiter in id", vertices("A-B"), nil, core.ErrBadVertexID},
		{"duplicate id", vertices("A", "A"), nil, core.ErrDuplicateVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.BuildAdjacency(tc.verts, tc.edges, true)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNeighbors_ReturnsCopy ensures callers cannot mutate the built map.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	adj, err := core.BuildAdjacency(vertices("A", "B"), []core.Edge{{From: "A", To: "B"}}, true)
	require.NoError(t, err)

	nbs := adj.Neighbors("A")
	nbs[0] = "Z"
	assert.Equal(t, []string{"B"}, adj.Neighbors("A"))
}

// TestWeights mirrors undirected weights and keeps the lightest parallel edge.
func TestWeights(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B", Weight: 5},
		{From: "A", To: "B", Weight: 3},
		{From: "B", To: "C", Weight: 1},
	}

	w := core.Weights(edges, false)
	assert.Equal(t, map[string]int64{"A-B": 3, "B-A": 3, "B-C": 1, "C-B": 1}, w)

	w = core.Weights(edges, true)
	assert.Equal(t, map[string]int64{"A-B": 3, "B-C": 1}, w)
}
