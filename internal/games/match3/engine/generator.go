package engine

import "fmt"

// MaxPopulateAttempts bounds how many fresh boards Populate draws before giving up.
// Only two-kind boards ever need more than one.
const MaxPopulateAttempts = 1000

// Rand is the subset of *math/rand.Rand the generator needs.
type Rand interface {
	Intn(n int) int
}

// Generator fills empty cells with random items that do not complete a run.
type Generator struct {
	set ItemSet
	rng Rand
}

// NewGenerator creates a generator drawing from set with the given random source.
func NewGenerator(set ItemSet, rng Rand) (*Generator, error) {
	if len(set) < 2 {
		return nil, fmt.Errorf("%w: item set has %d kinds", ErrInsufficientItemTypes, len(set))
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &Generator{set: set, rng: rng}, nil
}

// palette returns the items available to g.
func (gen *Generator) palette(g *Grid) ([]Item, error) {
	n := g.KindCount()
	if n < 2 {
		return nil, fmt.Errorf("%w: grid uses %d kinds", ErrInsufficientItemTypes, n)
	}
	if n > len(gen.set) {
		return nil, fmt.Errorf("%w: grid uses %d kinds, item set has %d", ErrInsufficientItemTypes, n, len(gen.set))
	}
	return gen.set[:n], nil
}

// Fill places an item in every empty cell, row by row, and returns the filled
// coordinates in that order.
//
// Each item is drawn uniformly among the kinds for which WouldMatch is false against
// the cells committed so far, which is the distribution of redrawing until a kind is
// accepted. When every kind would match (both sides of a cell already hold pairs) the
// draw falls back to the whole palette and the resulting run is left for the cascade.
func (gen *Generator) Fill(g *Grid) ([]Coord, error) {
	palette, err := gen.palette(g)
	if err != nil {
		return nil, err
	}

	var filled []Coord
	allowed := make([]Item, 0, len(palette))

	for _, c := range g.Coords() {
		cell, err := g.At(c)
		if err != nil {
			return filled, err
		}
		if cell.Filled {
			continue
		}

		allowed = allowed[:0]
		for _, it := range palette {
			if !WouldMatch(g, c, it.Kind) {
				allowed = append(allowed, it)
			}
		}
		if len(allowed) == 0 {
			allowed = append(allowed, palette...)
		}

		item := allowed[gen.rng.Intn(len(allowed))]
		if err := g.Set(c, FilledCell(item)); err != nil {
			return filled, err
		}
		filled = append(filled, c)
	}

	return filled, nil
}

// Populate clears g and fills it with a board that has no runs.
func (gen *Generator) Populate(g *Grid) error {
	for attempt := 0; attempt < MaxPopulateAttempts; attempt++ {
		g.Clear()
		if _, err := gen.Fill(g); err != nil {
			return err
		}
		if FindAllMatches(g).Empty() {
			return nil
		}
	}
	return fmt.Errorf("%w: %dx%d grid with %d kinds after %d attempts",
		ErrGenerationExhausted, g.Width(), g.Height(), g.KindCount(), MaxPopulateAttempts)
}
