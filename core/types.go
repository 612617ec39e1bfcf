// Package core defines the vertex and edge input types, the adjacency map
// consumed by every traversal recorder, the canonical EdgeKey identity and the
// closed status enumerations that recorded steps expose to renderers.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrBadVertexID     - vertex ID contains the EdgeKey delimiter.
//	ErrDuplicateVertex - vertex ID listed twice.
//	ErrUnknownVertex   - an edge or source references a vertex not in the list.
//	ErrBadStatus       - text does not name a known status.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrEmptyVertexID indicates that a Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadVertexID indicates that a vertex ID contains the EdgeKey delimiter,
	// which would make EdgeKey ambiguous.
	ErrBadVertexID = errors.New("core: vertex ID contains edge key delimiter")

	// ErrDuplicateVertex indicates that the same vertex ID was listed twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrUnknownVertex indicates an edge or source referenced a vertex absent
	// from the vertex list.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrBadStatus indicates that a status name could not be parsed.
	ErrBadStatus = errors.New("core: unknown status")
)

// Vertex is a node of the edited graph. ID is opaque and unique.
type Vertex struct {
	ID string `json:"id" toml:"id" yaml:"id" validate:"required"`
}

// Edge connects From to To. Weight is only read by Dijkstra.
type Edge struct {
	From   string `json:"from" toml:"from" yaml:"from" validate:"required"`
	To     string `json:"to" toml:"to" yaml:"to" validate:"required"`
	Weight int64  `json:"weight,omitempty" toml:"weight" yaml:"weight"`
}

// EdgeStatus is the lifecycle state of a single directed edge instance.
//
// The enumeration is closed: renderers may switch over it exhaustively.
type EdgeStatus uint8

const (
	// EdgeDefault means the edge has not been classified yet.
	EdgeDefault EdgeStatus = iota
	// EdgeQueued means the edge discovered a vertex now waiting in the frontier.
	EdgeQueued
	// EdgeProcessing is reserved for renderers that highlight the edge being walked.
	EdgeProcessing
	// EdgeVisited means the edge belongs to the traversal tree.
	EdgeVisited
	// EdgeUseless means the edge led to an already known vertex.
	EdgeUseless
)

var edgeStatusNames = [...]string{
	EdgeDefault:    "default",
	EdgeQueued:     "queued",
	EdgeProcessing: "processing",
	EdgeVisited:    "visited",
	EdgeUseless:    "useless",
}

// String returns the lower-case status name.
func (s EdgeStatus) String() string {
	if int(s) < len(edgeStatusNames) {
		return edgeStatusNames[s]
	}

	return fmt.Sprintf("EdgeStatus(%d)", uint8(s))
}

// MarshalText encodes the status by name.
func (s EdgeStatus) MarshalText() ([]byte, error) {
	if int(s) >= len(edgeStatusNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, uint8(s))
	}

	return []byte(edgeStatusNames[s]), nil
}

// UnmarshalText decodes a status name. "stacked" is accepted as an alias of
// "queued" so DFS payloads can use their own vocabulary.
func (s *EdgeStatus) UnmarshalText(text []byte) error {
	name := string(text)
	if name == "stacked" {
		*s = EdgeQueued
		return nil
	}
	for i, n := range edgeStatusNames {
		if n == name {
			*s = EdgeStatus(i)
			return nil
		}
	}

	return fmt.Errorf("%w: edge status %q", ErrBadStatus, name)
}

// CanTransition reports whether an edge may move from one status to another.
// Setting the same status again is always allowed. Once visited an edge stays
// visited; a useless edge can only be promoted to visited, never re-queued.
func CanTransition(from, to EdgeStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case EdgeDefault, EdgeProcessing:
		return true
	case EdgeQueued:
		return to != EdgeDefault
	case EdgeUseless:
		return to == EdgeVisited
	case EdgeVisited:
		return false
	}

	return false
}

// NodeStatus is the render status of a vertex at one step.
type NodeStatus uint8

const (
	// NodeDefault means the vertex has not been discovered.
	NodeDefault NodeStatus = iota
	// NodeFrontier means the vertex waits in the queue, stack or heap.
	NodeFrontier
	// NodeProcessing means the vertex is being expanded.
	NodeProcessing
	// NodeVisited means the vertex is fully processed.
	NodeVisited
)

var nodeStatusNames = [...]string{
	NodeDefault:    "default",
	NodeFrontier:   "frontier",
	NodeProcessing: "processing",
	NodeVisited:    "visited",
}

// String returns the lower-case status name.
func (s NodeStatus) String() string {
	if int(s) < len(nodeStatusNames) {
		return nodeStatusNames[s]
	}

	return fmt.Sprintf("NodeStatus(%d)", uint8(s))
}
