package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is the weight of every generated edge unless WithWeightFn is set.
const DefaultEdgeWeight int64 = 1

// IDFn maps a zero-based index to a vertex ID. It must be pure.
type IDFn func(idx int) string

// WeightFn draws one edge weight. rng is nil for unseeded builds.
type WeightFn func(rng *rand.Rand) int64

// config is resolved once per Build and passed by value to constructors.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a Build.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// DefaultIDFn returns the decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(*rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [lo, hi]; without an RNG it yields lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
