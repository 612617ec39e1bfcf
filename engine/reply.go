package engine

import (
	"fmt"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/steps"
)

// stepsPerRound is the pop, stage, visit rhythm every recorder emits.
const stepsPerRound = 3

// CheckReply verifies that seq is a complete, well-formed answer to req.
//
// Beyond steps.Validate it checks the round structure: the length is a
// multiple of three and each round processes one vertex for two steps and
// then clears Processing. The last step has an empty frontier. Every vertex
// a step names belongs to req, and Dijkstra steps carry a distance for
// every vertex.
func CheckReply(req Request, seq *steps.Sequence) error {
	if seq.Len() == 0 {
		return fmt.Errorf("%w: empty sequence", ErrRemoteComputation)
	}
	if seq.Algorithm != req.Algorithm || seq.Source != req.Source || seq.Directed != req.Directed {
		return fmt.Errorf("%w: reply is for %s from %q", ErrRemoteComputation, seq.Algorithm, seq.Source)
	}
	if err := steps.Validate(seq); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteComputation, err)
	}
	if err := checkRounds(seq); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteComputation, err)
	}
	if err := checkVertices(req, seq); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteComputation, err)
	}

	return nil
}

func checkRounds(seq *steps.Sequence) error {
	n := seq.Len()
	if n%stepsPerRound != 0 {
		return fmt.Errorf("truncated: %d steps is not a whole number of rounds", n)
	}
	for i := 0; i < n; i += stepsPerRound {
		pop, stage, visit := seq.Steps[i], seq.Steps[i+1], seq.Steps[i+2]
		if pop.Processing == "" || stage.Processing != pop.Processing {
			return fmt.Errorf("round at step %d: processing %q then %q", i, pop.Processing, stage.Processing)
		}
		if visit.Processing != "" {
			return fmt.Errorf("round at step %d: step %d still processing %q", i, i+2, visit.Processing)
		}
		if n := len(visit.Visited); n == 0 || visit.Visited[n-1] != pop.Processing {
			return fmt.Errorf("round at step %d: %q did not turn visited", i, pop.Processing)
		}
	}
	if final := seq.Steps[n-1]; len(final.Frontier) != 0 {
		return fmt.Errorf("truncated: final frontier %v is not empty", final.Frontier)
	}

	return nil
}

func checkVertices(req Request, seq *steps.Sequence) error {
	known := make(map[string]struct{}, len(req.Vertices))
	for _, v := range req.Vertices {
		known[v.ID] = struct{}{}
	}
	has := func(id string) bool {
		_, ok := known[id]
		return ok
	}

	for i, s := range seq.Steps {
		if s.Processing != "" && !has(s.Processing) {
			return fmt.Errorf("step %d: %w: processing %q", i, core.ErrUnknownVertex, s.Processing)
		}
		for _, ids := range [2][]string{s.Visited, s.Frontier} {
			for _, id := range ids {
				if !has(id) {
					return fmt.Errorf("step %d: %w: %q", i, core.ErrUnknownVertex, id)
				}
			}
		}
		for k := range s.Edges {
			from, to, ok := core.SplitEdgeKey(k)
			if !ok || !has(from) || !has(to) {
				return fmt.Errorf("step %d: %w: edge %q", i, core.ErrUnknownVertex, k)
			}
		}
		if seq.Algorithm != steps.Dijkstra {
			continue
		}
		if s.Shortest == nil {
			return fmt.Errorf("step %d: no distances", i)
		}
		for id := range known {
			if _, ok := s.Shortest[id]; !ok {
				return fmt.Errorf("step %d: no distance for %q", i, id)
			}
		}
	}

	return nil
}
