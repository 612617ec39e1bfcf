package core

import "strings"

// EdgeKeyDelimiter separates the endpoints inside an EdgeKey.
// Vertex IDs must never contain it.
const EdgeKeyDelimiter = "-"

// EdgeKey returns the canonical identity of the directed edge instance from→to.
// It is the sole key of every edge status and weight map.
//
// Complexity: O(len(from)+len(to)).
func EdgeKey(from, to string) string {
	return from + EdgeKeyDelimiter + to
}

// SplitEdgeKey is the inverse of EdgeKey. ok is false when key holds no delimiter.
func SplitEdgeKey(key string) (from, to string, ok bool) {
	return strings.Cut(key, EdgeKeyDelimiter)
}
