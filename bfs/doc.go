// Package bfs records breadth-first search over a core.AdjacencyMap as a
// replayable step history.
//
// What
//
//   - Explores vertices layer by layer from a source vertex, FIFO.
//   - Returns a BFSResult containing:
//   - Sequence: three immutable snapshots per dequeued vertex
//     (processing, frontier extended, turned visited)
//   - Order: the order vertices turned visited
//   - Layers: the source, then each round's newly queued vertices
//   - Depth / Parent: BFS tree, with PathTo for path reconstruction
//   - Every edge is classified queued → visited when it discovered a vertex,
//     or useless when it led to a visited, pending or processing vertex.
//     On undirected maps both orientations always carry the same status.
//   - Hooks: OnStep (after every snapshot) and OnDequeue.
//
// Why
//
//   - Drive a step-by-step animation that can be scrubbed backwards exactly:
//     every snapshot is a value copy, so replaying step i never depends on
//     how the caller got there.
//
// Determinism
//
//	Neighbors are staged in adjacency insertion order. There is no sorting
//	and no randomness, so two runs over the same map are identical.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) search, plus O(V·(V+E)) to copy snapshots
//   - Memory: O(V·(V+E)) for the snapshots
package bfs
