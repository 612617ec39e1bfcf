package builder

import "errors"

// Sentinel errors; constructors wrap them with the method name.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyVertices indicates a size parameter that would exceed MaxVertices.
	ErrTooManyVertices = errors.New("builder: graph too large")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a generated graph
	// that core.BuildAdjacency rejects.
	ErrConstructFailed = errors.New("builder: construction failed")
)
