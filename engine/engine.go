// Package engine turns a graph and a source vertex into a playable run: it
// builds the adjacency map, records the chosen traversal (locally or through
// a remote Computer), maps highlights and starts a playback cursor.
//
// A run is all or nothing. Any error leaves no cursor behind.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/highlight"
	"github.com/katalvlaran/stepwalk/playback"
	"github.com/katalvlaran/stepwalk/steps"
)

var (
	// ErrEmptySource is returned when a run is requested without a source.
	ErrEmptySource = errors.New("engine: no source vertex selected")

	// ErrRemoteComputation wraps every failure of a remote Computer,
	// including well-formed transport replies carrying an invalid sequence.
	ErrRemoteComputation = errors.New("engine: remote computation failed")
)

// Request describes one run.
type Request struct {
	Algorithm steps.Algorithm `json:"algorithm" validate:"required,oneof=bfs dfs dijkstra"`
	Vertices  []core.Vertex   `json:"vertices" validate:"required,min=1,dive"`
	Edges     []core.Edge     `json:"edges" validate:"dive"`
	Directed  bool            `json:"directed"`
	Source    string          `json:"source" validate:"required"`
}

// Adjacency builds the request's adjacency map and checks the source.
func (r Request) Adjacency() (core.AdjacencyMap, error) {
	if r.Source == "" {
		return core.AdjacencyMap{}, ErrEmptySource
	}
	adj, err := core.BuildAdjacency(r.Vertices, r.Edges, r.Directed)
	if err != nil {
		return core.AdjacencyMap{}, err
	}
	if !adj.Has(r.Source) {
		return core.AdjacencyMap{}, fmt.Errorf("%w: source %q", core.ErrUnknownVertex, r.Source)
	}

	return adj, nil
}

// Computer produces the complete step sequence for a request.
type Computer interface {
	Compute(ctx context.Context, req Request) (*steps.Sequence, error)
}

// Run is a started playback of one recorded sequence.
type Run struct {
	ID         uuid.UUID
	Request    Request
	Sequence   *steps.Sequence
	Program    highlight.Program
	Highlights highlight.Table
	Cursor     *playback.Cursor
}

// Lines returns the highlighted pseudocode lines at the cursor.
func (r *Run) Lines() []int {
	return r.Highlights.At(r.Cursor.Index())
}

// Restart moves the cursor back to the first step of the same sequence.
func (r *Run) Restart() {
	_ = r.Cursor.Start(r.Sequence)
}

// Option configures an Engine.
type Option func(*Engine)

// WithDijkstraComputer routes Dijkstra requests to c, typically a
// remote.Client. Its failures surface as ErrRemoteComputation.
func WithDijkstraComputer(c Computer) Option {
	return func(e *Engine) {
		if c != nil {
			e.dijkstra = c
		}
	}
}

// Engine dispatches requests to computers and keeps one highlight memo per
// algorithm, so a sequence handed back again (a cached remote reply, a
// reload that produced the same sequence) is not mapped twice.
type Engine struct {
	local    Local
	dijkstra Computer
	memos    map[steps.Algorithm]*highlight.Memo
}

// New returns an Engine computing everything locally unless configured
// otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{memos: make(map[steps.Algorithm]*highlight.Memo)}
	for _, opt := range opts {
		opt(e)
	}
	for _, alg := range []steps.Algorithm{steps.BFS, steps.DFS, steps.Dijkstra} {
		if prog, err := highlight.For(alg); err == nil {
			e.memos[alg] = highlight.NewMemo(prog.Lines)
		}
	}

	return e
}

// HighlightBuilds reports how many highlight tables the engine has mapped.
func (e *Engine) HighlightBuilds() int {
	n := 0
	for _, m := range e.memos {
		n += m.Builds()
	}

	return n
}

// Run validates req, computes its sequence and starts a cursor on it.
//
// Errors, all returned before any cursor exists:
//   - ErrEmptySource when req.Source is empty;
//   - steps.ErrBadAlgorithm for an unknown algorithm;
//   - core.ErrUnknownVertex (and the other core id errors) for a bad graph;
//   - ErrRemoteComputation when a remote computer fails or replies with a
//     sequence CheckReply rejects.
func (e *Engine) Run(ctx context.Context, req Request) (*Run, error) {
	if req.Source == "" {
		return nil, ErrEmptySource
	}
	if _, err := steps.ParseAlgorithm(string(req.Algorithm)); err != nil {
		return nil, err
	}
	if _, err := req.Adjacency(); err != nil {
		return nil, err
	}

	seq, err := e.compute(ctx, req)
	if err != nil {
		return nil, err
	}

	prog, err := highlight.For(seq.Algorithm)
	if err != nil {
		return nil, err
	}
	cur, err := playback.New(seq)
	if err != nil {
		return nil, err
	}

	return &Run{
		ID:         uuid.New(),
		Request:    req,
		Sequence:   seq,
		Program:    prog,
		Highlights: e.memos[seq.Algorithm].Get(seq),
		Cursor:     cur,
	}, nil
}

func (e *Engine) compute(ctx context.Context, req Request) (*steps.Sequence, error) {
	if req.Algorithm != steps.Dijkstra || e.dijkstra == nil {
		return e.local.Compute(ctx, req)
	}

	seq, err := e.dijkstra.Compute(ctx, req)
	if err != nil {
		if errors.Is(err, ErrRemoteComputation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrRemoteComputation, err)
	}
	if err := CheckReply(req, seq); err != nil {
		return nil, err
	}

	return seq, nil
}
