// Package playback moves a cursor through a recorded steps.Sequence and
// derives node and edge render statuses from the step under the cursor.
//
// Every status is read from the current step alone; nothing is patched
// incrementally, so stepping backwards yields exactly what stepping forwards
// showed. Navigation never fails: moves past either end are no-ops.
//
// A Cursor is not safe for concurrent use; callers serialize navigation.
package playback

import (
	"errors"
	"maps"
	"slices"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/steps"
)

// ErrEmptySequence is returned by Start for a nil or empty sequence.
var ErrEmptySequence = errors.New("playback: empty step sequence")

// Cursor is the index into one run's steps. The zero value is a cursor with
// no run.
type Cursor struct {
	seq   *steps.Sequence
	index int
}

// New returns a cursor started on seq.
func New(seq *steps.Sequence) (*Cursor, error) {
	c := &Cursor{}
	if err := c.Start(seq); err != nil {
		return nil, err
	}

	return c, nil
}

// Start begins playback of seq at index 0. On error the cursor is left
// without a run.
func (c *Cursor) Start(seq *steps.Sequence) error {
	if seq.Len() == 0 {
		c.Reset()
		return ErrEmptySequence
	}
	c.seq = seq
	c.index = 0

	return nil
}

// Advance moves one step forward unless already on the last step.
func (c *Cursor) Advance() {
	if c.Running() && c.index < c.seq.Len()-1 {
		c.index++
	}
}

// Retreat moves one step back unless already on the first step.
func (c *Cursor) Retreat() {
	if c.Running() && c.index > 0 {
		c.index--
	}
}

// Seek jumps to step i, clamped to the sequence bounds.
func (c *Cursor) Seek(i int) {
	if !c.Running() {
		return
	}
	c.index = max(0, min(i, c.seq.Len()-1))
}

// Reset drops the run.
func (c *Cursor) Reset() {
	c.seq = nil
	c.index = 0
}

// Running reports whether a run is loaded.
func (c *Cursor) Running() bool { return c.seq != nil }

// Index returns the current step index; 0 without a run.
func (c *Cursor) Index() int { return c.index }

// Len returns the number of steps of the loaded run.
func (c *Cursor) Len() int { return c.seq.Len() }

// Completed reports whether the cursor is on the last step.
func (c *Cursor) Completed() bool {
	return c.Running() && c.index == c.seq.Len()-1
}

// Sequence returns the loaded run, or nil.
func (c *Cursor) Sequence() *steps.Sequence { return c.seq }

// Step returns the step under the cursor.
func (c *Cursor) Step() (steps.Step, bool) {
	if !c.Running() {
		return steps.Step{}, false
	}

	return c.seq.At(c.index)
}

// NodeStatus derives the render status of vertex id at the current step.
// Processing wins over visited, and visited wins over frontier.
func (c *Cursor) NodeStatus(id string) core.NodeStatus {
	s, ok := c.Step()
	if !ok {
		return core.NodeDefault
	}

	return NodeStatusOf(s, id)
}

// NodeStatuses returns the status of every vertex the current step mentions.
// Vertices not in the map are core.NodeDefault.
func (c *Cursor) NodeStatuses() map[string]core.NodeStatus {
	out := make(map[string]core.NodeStatus)
	s, ok := c.Step()
	if !ok {
		return out
	}
	for _, id := range s.Frontier {
		out[id] = NodeStatusOf(s, id)
	}
	for _, id := range s.Visited {
		out[id] = NodeStatusOf(s, id)
	}
	if s.Processing != "" {
		out[s.Processing] = core.NodeProcessing
	}

	return out
}

// EdgeStatus returns the status of from→to at the current step.
func (c *Cursor) EdgeStatus(from, to string) core.EdgeStatus {
	s, ok := c.Step()
	if !ok {
		return core.EdgeDefault
	}

	return s.EdgeStatus(from, to)
}

// EdgeStatuses returns a copy of the current step's edge statuses.
func (c *Cursor) EdgeStatuses() map[string]core.EdgeStatus {
	s, ok := c.Step()
	if !ok {
		return map[string]core.EdgeStatus{}
	}
	out := maps.Clone(s.Edges)
	if out == nil {
		out = map[string]core.EdgeStatus{}
	}

	return out
}

// NodeStatusOf derives the render status of vertex id from step s alone.
func NodeStatusOf(s steps.Step, id string) core.NodeStatus {
	switch {
	case id != "" && id == s.Processing:
		return core.NodeProcessing
	case slices.Contains(s.Visited, id):
		return core.NodeVisited
	case slices.Contains(s.Frontier, id):
		return core.NodeFrontier
	default:
		return core.NodeDefault
	}
}
