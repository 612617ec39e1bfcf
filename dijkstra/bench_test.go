package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/stepwalk/builder"
	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/dijkstra"
)

// BenchmarkDijkstra_Grid records a 12×12 undirected grid with weights in [1,20].
func BenchmarkDijkstra_Grid(b *testing.B) {
	g, err := builder.Build(false,
		[]builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.Grid(12, 12))
	if err != nil {
		b.Fatal(err)
	}
	adj, err := core.BuildAdjacency(g.Vertices, g.Edges, g.Directed)
	if err != nil {
		b.Fatal(err)
	}
	weights := core.Weights(g.Edges, g.Directed)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(adj, weights, dijkstra.Source("0,0"))
	}
}
