package builder

import "fmt"

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodWheel      = "Wheel"
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	methodBinaryTree = "BinaryTree"

	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
	minCompleteVertices = 1
	minGridDim          = 1
	maxTreeDepth        = 15

	gridIDFmt = "%d,%d"
)

func checkSize(method string, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, lo, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// Path builds P_n: 0→1→…→n-1 (n ≥ 2).
func Path(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodPath, n, minPathVertices); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by n-1→0 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodCycle, n, minCycleVertices); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := range ids {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub (index 0) with spokes to n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodStar, n, minStarVertices); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(g, cfg, methodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds a rim cycle over indices 1..n-1 and spokes from hub 0 (n ≥ 4).
// Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodWheel, n, minWheelVertices); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		rim := ids[1:]
		for i := range rim {
			if err = addEdge(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = addEdge(g, cfg, methodWheel, ids[0], v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1). Directed graphs get both arcs of every pair.
func Complete(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if err := checkSize(methodComplete, n, minCompleteVertices); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := range ids {
			j := i + 1
			if g.Directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice with fixed IDs "r,c" in row-major order.
// Each cell links to its right, then its bottom neighbor.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows > MaxVertices/cols {
			return fmt.Errorf("%s: %d×%d cells: %w", methodGrid, rows, cols, ErrTooManyVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// BinaryTree builds a complete binary tree of the given depth in heap order:
// vertex i links to 2i+1 and 2i+2. Depth 0 is a single vertex.
func BinaryTree(depth int) Constructor {
	return func(g *Graph, cfg config) error {
		if depth < 0 {
			return fmt.Errorf("%s: depth=%d < 0: %w", methodBinaryTree, depth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > %d: %w", methodBinaryTree, depth, maxTreeDepth, ErrTooManyVertices)
		}
		n := 1<<(depth+1) - 1
		ids, err := addVertices(g, cfg, methodBinaryTree, n)
		if err != nil {
			return err
		}
		for i := range ids {
			for _, c := range [2]int{2*i + 1, 2*i + 2} {
				if c >= n {
					break
				}
				if err = addEdge(g, cfg, methodBinaryTree, ids[i], ids[c]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
