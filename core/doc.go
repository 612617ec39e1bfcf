// Package core holds the input side of every traversal recording.
//
// What
//
//   - Vertex and Edge: the graph editor's node and edge lists.
//   - AdjacencyMap: vertex → ordered neighbors, built by BuildAdjacency;
//     undirected edges are appended in both directions.
//   - EdgeKey: "from-to", the identity of a directed edge instance and the
//     only key used by status and weight maps.
//   - EdgeStatus / NodeStatus: closed enumerations read by renderers.
//
// Determinism
//
//	Neighbor order is edge insertion order. Nothing is sorted, nothing is
//	randomized, so two builds from the same lists are identical.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BuildAdjacency: Time O(V + E), Memory O(V + E)
//   - Weights:        Time O(E),     Memory O(E)
package core
