// Package dijkstra records Dijkstra's single-source shortest paths as a
// replayable step history.
//
// What
//
//   - Finalizes vertices in order of distance from Options.Source.
//   - Emits the same three snapshots per finalized vertex as bfs and dfs;
//     each snapshot also carries the Shortest distance table.
//   - The Frontier of a snapshot lists live heap entries by ascending
//     (distance, push order). Stale duplicates are never shown.
//   - Edge lifecycle: an edge that improves a distance is queued; it is
//     visited when its head is popped, or useless once a shorter path to
//     the same head replaces it. Edges that never improve anything are useless.
//
// Options
//
//   - Source(id):                starting vertex (required).
//   - WithInfEdgeThreshold(t):   weights >= t are impassable.
//   - WithOnStep(fn):            observe every recorded step.
//
// Weights
//
//	Weights come from core.Weights, keyed by core.EdgeKey. A missing key
//	weighs 0. Negative weights are not rejected; the result is then
//	meaningless but the run terminates. Sums saturate at Infinity.
//
// Complexity
//
//   - Time:   O((V + E) log V) search, plus O(V·(V+E)) for snapshots
//   - Memory: O(V·(V+E))
package dijkstra
