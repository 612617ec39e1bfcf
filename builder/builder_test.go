package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwalk/bfs"
	"github.com/katalvlaran/stepwalk/builder"
	"github.com/katalvlaran/stepwalk/core"
)

func edgePairs(g *builder.Graph) []string {
	out := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		out[i] = core.EdgeKey(e.From, e.To)
	}

	return out
}

func vertexIDs(g *builder.Graph) []string {
	out := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.ID
	}

	return out
}

func TestTopologies(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"path", false, builder.Path(4), 4, 3},
		{"cycle", true, builder.Cycle(5), 5, 5},
		{"star", false, builder.Star(6), 6, 5},
		{"wheel", false, builder.Wheel(5), 5, 8},
		{"complete undirected", false, builder.Complete(4), 4, 6},
		{"complete directed", true, builder.Complete(4), 4, 12},
		{"single vertex", false, builder.Complete(1), 1, 0},
		{"grid", false, builder.Grid(2, 3), 6, 7},
		{"tree", true, builder.BinaryTree(2), 7, 6},
		{"tree root only", true, builder.BinaryTree(0), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := builder.Build(tt.directed, nil, tt.cons)
			require.NoError(t, err)
			assert.Equal(t, tt.directed, g.Directed)
			assert.Len(t, g.Vertices, tt.vertices)
			assert.Len(t, g.Edges, tt.edges)
			for _, e := range g.Edges {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestEmissionOrder(t *testing.T) {
	g, err := builder.Build(true,
		[]builder.Option{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, vertexIDs(g))
	assert.Equal(t, []string{"A-B", "B-C", "C-A"}, edgePairs(g))

	g, err = builder.Build(false, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, vertexIDs(g))
	assert.Equal(t, []string{"0,0-0,1", "0,0-1,0", "0,1-1,1", "1,0-1,1"}, edgePairs(g))

	g, err = builder.Build(false, nil, builder.Wheel(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"1-2", "2-3", "3-1", "0-1", "0-2", "0-3"}, edgePairs(g))
}

func TestBuildErrors(t *testing.T) {
	_, err := builder.Build(false, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(false, nil, builder.Wheel(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(false, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(false, nil, builder.Grid(1000, 1000))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)

	_, err = builder.Build(false, nil, builder.BinaryTree(-1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(false, nil, builder.BinaryTree(16))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)

	_, err = builder.Build(false, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(false, nil, builder.Path(2), builder.Path(2))
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	dashed := builder.WithIDScheme(func(i int) string { return "v-" + builder.DefaultIDFn(i) })
	_, err = builder.Build(false, []builder.Option{dashed}, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrBadVertexID)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.Build(false, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(false, []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	g, err := builder.Build(false, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Empty(t, g.Edges)

	g, err = builder.Build(true, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Len(t, g.Edges, 12)

	opts := []builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a, err := builder.Build(false, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(false, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges, "same seed, same graph")
	for _, e := range a.Edges {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestIDAndWeightFns(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))
	assert.Equal(t, int64(5), builder.UniformWeightFn(5, 5)(rand.New(rand.NewSource(1))))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))

	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestTreeFeedsBFS records a level-order walk of a generated tree.
func TestTreeFeedsBFS(t *testing.T) {
	g, err := builder.Build(true, nil, builder.BinaryTree(2))
	require.NoError(t, err)
	adj, err := core.BuildAdjacency(g.Vertices, g.Edges, g.Directed)
	require.NoError(t, err)

	res, err := bfs.BFS(adj, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, res.Order)
	assert.Equal(t, 21, res.Sequence.Len())
}
