package engine

// Destroyed records an item removed by a match.
type Destroyed struct {
	At   Coord
	Item Item
}

// Fall records an item moved down by a collapse.
type Fall struct {
	From Coord
	To   Coord
}

// Round is one destroy, collapse and refill pass of a cascade.
type Round struct {
	Index     int         // 0 for the round triggered by the swap itself
	Matched   MatchSet    // Coordinates destroyed this round
	Destroyed []Destroyed // Items in row-major order of their coordinates
	Fallen    []Fall
	Spawned   []Coord
	Board     *Grid // Snapshot after the refill
}

// Score returns the total value of the items destroyed this round.
func (r Round) Score() int {
	total := 0
	for _, d := range r.Destroyed {
		total += d.Item.Value
	}
	return total
}

// Resolver runs a cascade one round at a time.
type Resolver struct {
	grid   *Grid
	gen    *Generator
	rounds int
}

// NewResolver creates a resolver that mutates g and refills it from gen.
func NewResolver(g *Grid, gen *Generator) *Resolver {
	return &Resolver{grid: g, gen: gen}
}

// Rounds returns how many rounds have been applied.
func (r *Resolver) Rounds() int {
	return r.rounds
}

// Step applies one round. It returns false, with the board untouched, once the
// board is stable. A round is fully applied before Step returns.
func (r *Resolver) Step() (Round, bool, error) {
	matched := FindAllMatches(r.grid)
	if matched.Empty() {
		return Round{}, false, nil
	}

	round := Round{Index: r.rounds, Matched: matched}

	for _, c := range matched.Coords() {
		cell, err := r.grid.At(c)
		if err != nil {
			return round, false, err
		}
		round.Destroyed = append(round.Destroyed, Destroyed{At: c, Item: cell.Item})
		if err := r.grid.Set(c, Empty()); err != nil {
			return round, false, err
		}
	}

	fallen, err := Collapse(r.grid)
	if err != nil {
		return round, false, err
	}
	round.Fallen = fallen

	spawned, err := r.gen.Fill(r.grid)
	if err != nil {
		return round, false, err
	}
	round.Spawned = spawned
	round.Board = r.grid.Clone()

	r.rounds++
	return round, true, nil
}

// Resolve runs rounds until the board is stable and returns them in order.
// A full board without runs yields no rounds. Holes left on a board without
// runs are settled and refilled, and any run the refill makes is resolved too,
// so the grid is always full when Resolve returns without error.
func Resolve(g *Grid, gen *Generator) ([]Round, error) {
	res := NewResolver(g, gen)
	var rounds []Round
	for {
		round, ok, err := res.Step()
		if err != nil {
			return rounds, err
		}
		if ok {
			rounds = append(rounds, round)
			continue
		}
		if g.Full() {
			return rounds, nil
		}
		if err := settle(g, gen); err != nil {
			return rounds, err
		}
	}
}

// settle drops items over the holes and refills the grid.
func settle(g *Grid, gen *Generator) error {
	if _, err := Collapse(g); err != nil {
		return err
	}
	_, err := gen.Fill(g)
	return err
}

// Collapse moves the items of every column down over empty cells, keeping their
// relative order, so all empty cells end up at the top of their column.
func Collapse(g *Grid) ([]Fall, error) {
	var falls []Fall

	for x := 0; x < g.Width(); x++ {
		write := g.Height() - 1 // Next slot to fill, from the bottom

		for y := g.Height() - 1; y >= 0; y-- {
			from := C(x, y)
			cell, err := g.At(from)
			if err != nil {
				return falls, err
			}
			if !cell.Filled {
				continue
			}
			if y != write {
				to := C(x, write)
				if err := g.Set(to, cell); err != nil {
					return falls, err
				}
				if err := g.Set(from, Empty()); err != nil {
					return falls, err
				}
				falls = append(falls, Fall{From: from, To: to})
			}
			write--
		}
	}

	return falls, nil
}
