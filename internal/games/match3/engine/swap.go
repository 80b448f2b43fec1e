package engine

import "fmt"

// AreAdjacent reports whether a and b are orthogonal neighbours.
func AreAdjacent(a, b Coord) bool {
	return a.Manhattan(b) == 1
}

// Swap exchanges the items at a and b.
// Swapping the same pair again restores the previous board.
func Swap(g *Grid, a, b Coord) error {
	if !AreAdjacent(a, b) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	cellA, err := g.At(a)
	if err != nil {
		return err
	}
	cellB, err := g.At(b)
	if err != nil {
		return err
	}

	if !cellA.Filled {
		return fmt.Errorf("%w at %v", ErrEmptyCell, a)
	}
	if !cellB.Filled {
		return fmt.Errorf("%w at %v", ErrEmptyCell, b)
	}

	if err := g.Set(a, cellB); err != nil {
		return err
	}
	return g.Set(b, cellA)
}
