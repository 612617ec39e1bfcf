package dfs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/dfs"
	"github.com/katalvlaran/stepwalk/steps"
)

// buildMap creates an adjacency map from "from>to" pairs; vertices are
// registered in first-seen order.
func buildMap(t *testing.T, directed bool, pairs ...string) core.AdjacencyMap {
	t.Helper()
	var verts []core.Vertex
	seen := map[string]bool{}
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			verts = append(verts, core.Vertex{ID: id})
		}
	}
	var edges []core.Edge
	for _, p := range pairs {
		from, to := p[:1], p[2:]
		add(from)
		add(to)
		edges = append(edges, core.Edge{From: from, To: to})
	}
	adj, err := core.BuildAdjacency(verts, edges, directed)
	require.NoError(t, err)

	return adj
}

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) core.AdjacencyMap {
	t.Helper()
	verts := make([]core.Vertex, n)
	var edges []core.Edge
	for i := 0; i < n; i++ {
		verts[i] = core.Vertex{ID: "N" + strconv.Itoa(i)}
		if i > 0 {
			edges = append(edges, core.Edge{From: verts[i-1].ID, To: verts[i].ID})
		}
	}
	adj, err := core.BuildAdjacency(verts, edges, true)
	require.NoError(t, err)

	return adj
}

func TestDFS_Errors(t *testing.T) {
	adj := buildMap(t, true, "A>B")

	_, err := dfs.DFS(adj, "")
	assert.ErrorIs(t, err, dfs.ErrEmptySource)

	_, err = dfs.DFS(adj, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFS_LastStagedPoppedFirst checks the LIFO discipline and stack snapshots.
func TestDFS_LastStagedPoppedFirst(t *testing.T) {
	adj := buildMap(t, true, "A>B", "A>C", "B>D")

	res, err := dfs.DFS(adj, "A")
	require.NoError(t, err)
	s := res.Sequence.Steps

	require.Len(t, s, 12)
	assert.Equal(t, steps.DFS, res.Sequence.Algorithm)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Order)

	assert.Equal(t, []string{"B", "C"}, s[1].Frontier, "stack bottom first")
	assert.Equal(t, "C", s[3].Processing)
	assert.Equal(t, []string{"B"}, s[3].Frontier)
	assert.Equal(t, core.EdgeVisited, s[3].EdgeStatus("A", "C"))
	assert.Equal(t, core.EdgeQueued, s[3].EdgeStatus("A", "B"))
	assert.Equal(t, "B", s[6].Processing)
	assert.Equal(t, []string{"D"}, s[7].Frontier)

	final, _ := res.Sequence.Final()
	assert.Equal(t, []string{"A", "C", "B", "D"}, final.Visited)
	for _, k := range []string{"A-B", "A-C", "B-D"} {
		assert.Equal(t, core.EdgeVisited, final.Edges[k], k)
	}
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
	assert.Equal(t, 2, res.Depth["D"])
}

// TestDFS_UndirectedDiamond verifies the cross edge is useless on both keys.
func TestDFS_UndirectedDiamond(t *testing.T) {
	adj := buildMap(t, false, "A>B", "A>C", "B>D", "C>D")

	res, err := dfs.DFS(adj, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "B"}, res.Order)

	final, _ := res.Sequence.Final()
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("A", "B"))
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("A", "C"))
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("D", "C"))
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("B", "D"))
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("D", "B"))
	assert.NoError(t, steps.Validate(res.Sequence))
}

// TestDFS_Chain walks a long chain without recursion.
func TestDFS_Chain(t *testing.T) {
	adj := buildChain(t, 200)

	res, err := dfs.DFS(adj, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 200)
	assert.Equal(t, 600, res.Sequence.Len())
	assert.Equal(t, 199, res.Depth["N199"])
}

// TestDFS_CycleAndSelfLoop covers a directed cycle back to the source and a loop.
func TestDFS_CycleAndSelfLoop(t *testing.T) {
	adj := buildMap(t, true, "A>B", "B>C", "C>A", "C>C")

	res, err := dfs.DFS(adj, "A")
	require.NoError(t, err)

	final, _ := res.Sequence.Final()
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("C", "A"))
	assert.Equal(t, core.EdgeUseless, final.EdgeStatus("C", "C"))
	assert.Equal(t, core.EdgeVisited, final.EdgeStatus("B", "C"))
	assert.NoError(t, steps.Validate(res.Sequence))
}

func TestDFS_Hooks(t *testing.T) {
	adj := buildMap(t, true, "A>B", "A>C")

	var visits []string
	var pushedByA []string
	var stepCount int
	_, err := dfs.DFS(adj, "A",
		dfs.WithOnVisit(func(id string, pushed []string) {
			visits = append(visits, id)
			if id == "A" {
				pushedByA = pushed
			}
		}),
		dfs.WithOnStep(func(int, steps.Step) { stepCount++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, visits)
	assert.Equal(t, []string{"B", "C"}, pushedByA)
	assert.Equal(t, 9, stepCount)
}

// TestDFS_VisitedMonotone checks visited prefixes on a denser graph.
func TestDFS_VisitedMonotone(t *testing.T) {
	adj := buildMap(t, false, "A>B", "A>C", "B>C", "C>D", "D>E", "E>B", "B>F")

	res, err := dfs.DFS(adj, "A")
	require.NoError(t, err)
	require.NoError(t, steps.Validate(res.Sequence))

	s := res.Sequence.Steps
	for i := 1; i < len(s); i++ {
		assert.GreaterOrEqual(t, len(s[i].Visited), len(s[i-1].Visited))
		assert.Equal(t, s[i-1].Visited, s[i].Visited[:len(s[i-1].Visited)])
	}
}
