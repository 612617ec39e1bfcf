package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi graph over n vertices: every ordered
// pair (directed) or unordered pair i<j (undirected) becomes an edge with
// probability p. Self-loops are never sampled.
//
// p of 0 or 1 needs no RNG; anything in between requires WithSeed or WithRand.
// Pairs are visited i ascending, then j ascending, so a fixed seed fixes the edges.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := range ids {
			j := i + 1
			if g.Directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
