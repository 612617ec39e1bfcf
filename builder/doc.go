// Package builder generates sample graphs for stepwalk documents.
//
// A Constructor appends vertices and edges to a Graph; Build runs
// constructors in order and checks the result with core.BuildAdjacency, so
// every generated graph can be fed straight to a recorder.
//
//	g, err := builder.Build(false,
//	        []builder.Option{builder.WithIDScheme(builder.ExcelColumnIDFn)},
//	        builder.Cycle(5))
//
// Generation is deterministic: equal constructors, options and seed give
// equal vertex and edge order. Topologies:
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//   - Grid(rows, cols) with fixed "r,c" IDs
//   - BinaryTree(depth)
//   - RandomSparse(n, p), which needs WithSeed or WithRand for 0 < p < 1
//
// Option constructors panic on meaningless input (nil functions, inverted
// ranges); constructors themselves only return errors.
package builder
