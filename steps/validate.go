package steps

import (
	"fmt"

	"github.com/katalvlaran/stepwalk/core"
)

// Validate checks the replay invariants every Sequence must hold before a
// cursor may play it:
//
//   - the sequence is non-empty and names a known algorithm;
//   - Visited at step i is a prefix of Visited at step i+1;
//   - no edge status moves along a transition core.CanTransition forbids,
//     including falling back to default;
//   - on undirected sequences status(a,b) == status(b,a) at every step.
//
// It is meant for sequences that did not come from a local Recorder, such as
// remote payloads. Returns an error wrapping ErrInvalidSequence.
//
// Complexity: O(S·(V+E)) for S steps.
func Validate(q *Sequence) error {
	if q.Len() == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidSequence)
	}
	if _, err := ParseAlgorithm(string(q.Algorithm)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSequence, err)
	}

	var prev Step
	for i, s := range q.Steps {
		if i > 0 {
			if !isPrefix(prev.Visited, s.Visited) {
				return fmt.Errorf("%w: step %d: visited set %v does not extend %v", ErrInvalidSequence, i, s.Visited, prev.Visited)
			}
			if err := checkTransitions(prev.Edges, s.Edges); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidSequence, i, err)
			}
		}
		if !q.Directed {
			if err := checkMirrored(s.Edges); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidSequence, i, err)
			}
		}
		prev = s
	}

	return nil
}

func isPrefix(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func checkTransitions(before, after map[string]core.EdgeStatus) error {
	for k, from := range before {
		if to := after[k]; !core.CanTransition(from, to) {
			return fmt.Errorf("edge %s moved %s→%s", k, from, to)
		}
	}

	return nil
}

func checkMirrored(edges map[string]core.EdgeStatus) error {
	for k, s := range edges {
		from, to, ok := core.SplitEdgeKey(k)
		if !ok {
			return fmt.Errorf("malformed edge key %q", k)
		}
		if r := edges[core.EdgeKey(to, from)]; r != s {
			return fmt.Errorf("edge %s is %s but its mirror is %s", k, s, r)
		}
	}

	return nil
}
