package engine

// Move is a pair of adjacent cells to swap.
type Move struct {
	A Coord
	B Coord
}

// FindMoves returns every swap that would create a run, scanning each cell's
// right and lower neighbour in row-major order. g is not modified.
func FindMoves(g *Grid) []Move {
	work := g.Clone()
	var moves []Move

	for _, a := range work.Coords() {
		for _, d := range axes {
			b := a.Add(d.X, d.Y)
			if !work.InBounds(b) {
				continue
			}
			if err := Swap(work, a, b); err != nil {
				continue // Empty cell
			}
			// WouldMatch never reads the cell itself, so this is exact on the swapped board.
			if WouldMatch(work, a, work.peek(a).Item.Kind) || WouldMatch(work, b, work.peek(b).Item.Kind) {
				moves = append(moves, Move{A: a, B: b})
			}
			//nolint:errcheck // Reverting a swap that just succeeded
			Swap(work, a, b)
		}
	}

	return moves
}

// HasMoves reports whether any swap would create a run.
func HasMoves(g *Grid) bool {
	return len(FindMoves(g)) > 0
}
