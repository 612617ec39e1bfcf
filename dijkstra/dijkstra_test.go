package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/dijkstra"
	"github.com/katalvlaran/stepwalk/steps"
)

// weighted builds an adjacency map and weight table from edges; vertices are
// registered in first-seen order.
func weighted(t *testing.T, directed bool, edges ...core.Edge) (core.AdjacencyMap, map[string]int64) {
	t.Helper()
	var verts []core.Vertex
	seen := map[string]bool{}
	for _, e := range edges {
		for _, id := range []string{e.From, e.To} {
			if !seen[id] {
				seen[id] = true
				verts = append(verts, core.Vertex{ID: id})
			}
		}
	}
	adj, err := core.BuildAdjacency(verts, edges, directed)
	require.NoError(t, err)

	return adj, core.Weights(edges, directed)
}

func TestDijkstra_Validation(t *testing.T) {
	adj, w := weighted(t, true, core.Edge{From: "A", To: "B", Weight: 1})

	_, err := dijkstra.Dijkstra(adj, w)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(adj, w, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(adj, w, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// TestDijkstra_DetourBeatsDirectEdge covers A→B(5), A→C(1), C→B(1).
func TestDijkstra_DetourBeatsDirectEdge(t *testing.T) {
	adj, w := weighted(t, true,
		core.Edge{From: "A", To: "B", Weight: 5},
		core.Edge{From: "A", To: "C", Weight: 1},
		core.Edge{From: "C", To: "B", Weight: 1},
	)

	res, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"))
	require.NoError(t, err)
	require.NoError(t, steps.Validate(res.Sequence))

	s := res.Sequence.Steps
	require.Len(t, s, 9, "the stale B entry emits nothing")
	assert.Equal(t, steps.Dijkstra, res.Sequence.Algorithm)
	assert.Equal(t, []string{"A", "C", "B"}, res.Order)
	assert.Equal(t, map[string]int64{"A": 0, "C": 1, "B": 2}, res.Dist)

	// first pop: nothing relaxed yet
	assert.Equal(t, "A", s[0].Processing)
	assert.Empty(t, s[0].Frontier)
	assert.Equal(t, dijkstra.Infinity, s[0].Shortest["B"])

	// after relaxing A the frontier is ordered by distance
	assert.Equal(t, []string{"C", "B"}, s[1].Frontier)
	assert.Equal(t, int64(5), s[1].Shortest["B"])
	assert.Equal(t, core.EdgeQueued, s[1].EdgeStatus("A", "B"))

	// C improves B: the direct edge loses
	assert.Equal(t, core.EdgeVisited, s[3].EdgeStatus("A", "C"))
	assert.Equal(t, core.EdgeUseless, s[4].EdgeStatus("A", "B"))
	assert.Equal(t, core.EdgeQueued, s[4].EdgeStatus("C", "B"))
	assert.Equal(t, []string{"B"}, s[4].Frontier, "stale entries are hidden")
	assert.Equal(t, int64(2), s[4].Shortest["B"])

	final, _ := res.Sequence.Final()
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("C", "B"))
	assert.True(t, final.IsTransition())

	path, err := res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, path)
}

func TestDijkstra_UndirectedMirroring(t *testing.T) {
	adj, w := weighted(t, false,
		core.Edge{From: "A", To: "B", Weight: 2},
		core.Edge{From: "B", To: "C", Weight: 2},
		core.Edge{From: "A", To: "C", Weight: 3},
	)

	res, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"))
	require.NoError(t, err)
	require.NoError(t, steps.Validate(res.Sequence))

	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 3}, res.Dist)
	final, _ := res.Sequence.Final()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		assert.Equal(t, final.EdgeStatus(pair[0], pair[1]), final.EdgeStatus(pair[1], pair[0]), pair)
	}
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("A", "B"))
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("C", "A"))
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("B", "C"))
}

// TestDijkstra_EqualDistancesKeepDiscoveryOrder checks the tie-break.
func TestDijkstra_EqualDistancesKeepDiscoveryOrder(t *testing.T) {
	adj, w := weighted(t, true,
		core.Edge{From: "S", To: "X", Weight: 1},
		core.Edge{From: "S", To: "Y", Weight: 1},
		core.Edge{From: "S", To: "Z", Weight: 1},
	)

	res, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("S"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "Y", "Z"}, res.Order)
	assert.Equal(t, []string{"X", "Y", "Z"}, res.Sequence.Steps[1].Frontier)
}

func TestDijkstra_UnreachableAndThreshold(t *testing.T) {
	verts := []core.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []core.Edge{{From: "A", To: "B", Weight: 10}}
	adj, err := core.BuildAdjacency(verts, edges, true)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(adj, core.Weights(edges, true),
		dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 3, res.Sequence.Len())
	assert.Equal(t, dijkstra.Infinity, res.Dist["B"])
	assert.Equal(t, dijkstra.Infinity, res.Dist["C"])
	final, _ := res.Sequence.Final()
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("A", "B"))

	_, err = res.PathTo("C")
	assert.Error(t, err)
}

// TestDijkstra_ZeroWeightsAndSelfLoop treats missing weights as 0.
func TestDijkstra_ZeroWeightsAndSelfLoop(t *testing.T) {
	adj, _ := weighted(t, true,
		core.Edge{From: "A", To: "A"},
		core.Edge{From: "A", To: "B"},
	)

	res, err := dijkstra.Dijkstra(adj, nil, dijkstra.Source("A"))
	require.NoError(t, err)
	require.NoError(t, steps.Validate(res.Sequence))

	assert.Equal(t, map[string]int64{"A": 0, "B": 0}, res.Dist)
	final, _ := res.Sequence.Final()
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("A", "A"))
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("A", "B"))
}

// TestDijkstra_NegativeWeightDoesNotPanic runs on a negative cycle.
func TestDijkstra_NegativeWeightDoesNotPanic(t *testing.T) {
	adj, w := weighted(t, true,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "A", Weight: -5},
	)

	assert.NotPanics(t, func() {
		res, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"))
		require.NoError(t, err)
		assert.Len(t, res.Order, 2)
	})
}

func TestDijkstra_OverflowSaturates(t *testing.T) {
	adj, w := weighted(t, true,
		core.Edge{From: "A", To: "B", Weight: dijkstra.Infinity - 1},
		core.Edge{From: "B", To: "C", Weight: dijkstra.Infinity - 1},
	)

	res, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, res.Dist["B"])
	assert.Equal(t, dijkstra.Infinity, res.Dist["C"])
}

func TestDijkstra_OnStepAndReplay(t *testing.T) {
	adj, w := weighted(t, false,
		core.Edge{From: "A", To: "B", Weight: 4},
		core.Edge{From: "A", To: "C", Weight: 1},
		core.Edge{From: "C", To: "B", Weight: 1},
		core.Edge{From: "B", To: "D", Weight: 3},
	)

	var seen []int
	first, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"),
		dijkstra.WithOnStep(func(i int, _ steps.Step) { seen = append(seen, i) }))
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(adj, w, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Len(t, seen, first.Sequence.Len())
	assert.Equal(t, first.Sequence, second.Sequence)
}
