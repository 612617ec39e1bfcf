// Package highlight maps recorded steps to the pseudocode lines a player
// should emphasize.
//
// The mapping looks only at the shape of a steps.Sequence: a step whose
// Processing vertex is empty closes an expansion and maps to the
// "mark visited" line; two consecutive processing steps map to the "pop"
// line and the "expand" block. Any step the pairing walk leaves unassigned
// falls back to the "pop" line, so every entry of a Table is non-empty.
//
// Programs for BFS, DFS and Dijkstra ship with the package (see For); the
// Dijkstra program is longer but uses the same three roles.
//
// Tables are pure functions of a sequence. Memo caches one per sequence
// pointer, so navigation never recomputes them.
package highlight
