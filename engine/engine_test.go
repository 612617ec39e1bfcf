package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/steps"
)

// computerFunc adapts a function to engine.Computer.
type computerFunc func(ctx context.Context, req engine.Request) (*steps.Sequence, error)

func (f computerFunc) Compute(ctx context.Context, req engine.Request) (*steps.Sequence, error) {
	return f(ctx, req)
}

func request(alg steps.Algorithm) engine.Request {
	return engine.Request{
		Algorithm: alg,
		Vertices:  []core.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 5},
			{From: "A", To: "C", Weight: 1},
			{From: "C", To: "B", Weight: 1},
		},
		Directed: true,
		Source:   "A",
	}
}

func TestEngine_RunLocal(t *testing.T) {
	e := engine.New()
	for _, alg := range []steps.Algorithm{steps.BFS, steps.DFS, steps.Dijkstra} {
		t.Run(string(alg), func(t *testing.T) {
			run, err := e.Run(context.Background(), request(alg))
			require.NoError(t, err)

			assert.NotEqual(t, [16]byte{}, [16]byte(run.ID))
			assert.Equal(t, alg, run.Sequence.Algorithm)
			assert.Equal(t, alg, run.Program.Algorithm)
			assert.Len(t, run.Highlights, run.Sequence.Len())
			assert.True(t, run.Cursor.Running())
			assert.Equal(t, 0, run.Cursor.Index())
			assert.Equal(t, run.Program.Lines.Pop, run.Lines())
		})
	}

	run, err := e.Run(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)
	final, _ := run.Sequence.Final()
	assert.Equal(t, map[string]int64{"A": 0, "C": 1, "B": 2}, final.Shortest)
}

func TestEngine_RunErrors(t *testing.T) {
	e := engine.New()
	ctx := context.Background()

	req := request(steps.BFS)
	req.Source = ""
	_, err := e.Run(ctx, req)
	assert.ErrorIs(t, err, engine.ErrEmptySource)

	req = request(steps.BFS)
	req.Source = "Z"
	_, err = e.Run(ctx, req)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	req = request(steps.BFS)
	req.Edges = append(req.Edges, core.Edge{From: "A", To: "Q"})
	_, err = e.Run(ctx, req)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = e.Run(ctx, request("astar"))
	assert.ErrorIs(t, err, steps.ErrBadAlgorithm)
}

func TestEngine_EmptySourceNeverReachesComputer(t *testing.T) {
	called := false
	e := engine.New(engine.WithDijkstraComputer(computerFunc(
		func(context.Context, engine.Request) (*steps.Sequence, error) {
			called = true
			return nil, nil
		})))

	req := request(steps.Dijkstra)
	req.Source = ""
	_, err := e.Run(context.Background(), req)
	assert.ErrorIs(t, err, engine.ErrEmptySource)
	assert.False(t, called)
}

func TestEngine_RemoteDijkstra(t *testing.T) {
	var got engine.Request
	e := engine.New(engine.WithDijkstraComputer(computerFunc(
		func(ctx context.Context, req engine.Request) (*steps.Sequence, error) {
			got = req
			return engine.Local{}.Compute(ctx, req)
		})))

	run, err := e.Run(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)
	assert.Equal(t, "A", got.Source)
	assert.Equal(t, 9, run.Sequence.Len())

	// BFS never goes remote.
	got = engine.Request{}
	_, err = e.Run(context.Background(), request(steps.BFS))
	require.NoError(t, err)
	assert.Empty(t, got.Source)
}

func TestEngine_RemoteFailures(t *testing.T) {
	valid, err := engine.Local{}.Compute(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)

	broken := &steps.Sequence{
		Algorithm: steps.Dijkstra,
		Directed:  true,
		Source:    "A",
		Steps: []steps.Step{
			{Visited: []string{"A"}, Edges: map[string]core.EdgeStatus{"A-B": core.EdgeVisited}},
			{Visited: []string{}, Edges: map[string]core.EdgeStatus{"A-B": core.EdgeQueued}},
		},
	}
	wrongAlg := *valid
	wrongAlg.Algorithm = steps.BFS

	tests := []struct {
		name  string
		reply *steps.Sequence
		err   error
	}{
		{"transport", nil, errors.New("connection refused")},
		{"already wrapped", nil, engine.ErrRemoteComputation},
		{"empty", &steps.Sequence{Algorithm: steps.Dijkstra, Directed: true, Source: "A"}, nil},
		{"nil", nil, nil},
		{"wrong algorithm", &wrongAlg, nil},
		{"invalid steps", broken, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := engine.New(engine.WithDijkstraComputer(computerFunc(
				func(context.Context, engine.Request) (*steps.Sequence, error) {
					return tc.reply, tc.err
				})))
			run, err := e.Run(context.Background(), request(steps.Dijkstra))
			assert.ErrorIs(t, err, engine.ErrRemoteComputation)
			assert.Nil(t, run)
		})
	}
}

func TestLocal_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Local{}.Compute(ctx, request(steps.BFS))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Restart(t *testing.T) {
	run, err := engine.New().Run(context.Background(), request(steps.BFS))
	require.NoError(t, err)

	run.Cursor.Advance()
	run.Cursor.Advance()
	run.Restart()
	assert.Equal(t, 0, run.Cursor.Index())
	assert.True(t, run.Cursor.Running())
}

// cloneSteps copies the step slice so a case can rewrite single steps.
func cloneSteps(q *steps.Sequence) *steps.Sequence {
	c := *q
	c.Steps = append([]steps.Step(nil), q.Steps...)

	return &c
}

func TestCheckReply_Malformed(t *testing.T) {
	req := request(steps.Dijkstra)
	valid, err := engine.Local{}.Compute(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, engine.CheckReply(req, valid))

	truncated := cloneSteps(valid)
	truncated.Steps = truncated.Steps[:2]
	for i := range truncated.Steps {
		truncated.Steps[i].Shortest = nil
	}

	cutAtRound := cloneSteps(valid)
	cutAtRound.Steps = cutAtRound.Steps[:3]

	noDistances := cloneSteps(valid)
	noDistances.Steps[4].Shortest = nil

	partialDistances := cloneSteps(valid)
	partialDistances.Steps[0].Shortest = map[string]int64{"A": 0}

	stillProcessing := cloneSteps(valid)
	stillProcessing.Steps[2].Processing = "A"

	switched := cloneSteps(valid)
	switched.Steps[1].Processing = "C"

	stranger := cloneSteps(valid)
	stranger.Steps[1].Frontier = append([]string{"Z"}, stranger.Steps[1].Frontier...)

	tests := map[string]*steps.Sequence{
		"truncated mid round":   truncated,
		"truncated after round": cutAtRound,
		"missing distances":     noDistances,
		"partial distances":     partialDistances,
		"visit step processing": stillProcessing,
		"round switches vertex": switched,
		"unknown vertex":        stranger,
	}
	for name, seq := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, engine.CheckReply(req, seq), engine.ErrRemoteComputation)

			e := engine.New(engine.WithDijkstraComputer(computerFunc(
				func(context.Context, engine.Request) (*steps.Sequence, error) {
					return seq, nil
				})))
			run, err := e.Run(context.Background(), req)
			assert.ErrorIs(t, err, engine.ErrRemoteComputation)
			assert.Nil(t, run, "no cursor on a malformed reply")
		})
	}
}

func TestEngine_HighlightsMemoizedBySequence(t *testing.T) {
	cached, err := engine.Local{}.Compute(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)
	e := engine.New(engine.WithDijkstraComputer(computerFunc(
		func(context.Context, engine.Request) (*steps.Sequence, error) {
			return cached, nil
		})))

	first, err := e.Run(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)
	second, err := e.Run(context.Background(), request(steps.Dijkstra))
	require.NoError(t, err)
	assert.Equal(t, 1, e.HighlightBuilds(), "same sequence, one mapping")
	assert.Equal(t, first.Highlights, second.Highlights)
	assert.NotSame(t, first.Cursor, second.Cursor)

	_, err = e.Run(context.Background(), request(steps.BFS))
	require.NoError(t, err)
	_, err = e.Run(context.Background(), request(steps.BFS))
	require.NoError(t, err)
	assert.Equal(t, 3, e.HighlightBuilds(), "fresh local sequences are mapped each time")
}
