package engine

import "sort"

// MatchSet is the set of coordinates that belong to a run of three or more.
// It refers to cells of the grid it was computed from and is stale after the next mutation.
type MatchSet map[Coord]struct{}

// Add inserts coordinates; duplicates are absorbed.
func (s MatchSet) Add(cs ...Coord) {
	for _, c := range cs {
		s[c] = struct{}{}
	}
}

// Has reports whether c is in the set.
func (s MatchSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of distinct coordinates.
func (s MatchSet) Len() int {
	return len(s)
}

// Empty reports whether the set has no coordinates.
func (s MatchSet) Empty() bool {
	return len(s) == 0
}

// Coords returns the coordinates ordered by row then column.
func (s MatchSet) Coords() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].less(coords[j])
	})
	return coords
}

// axes are the horizontal and vertical unit steps. Diagonals never match.
var axes = [2]Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}

// sameKind reports whether every coordinate holds an item of the given kind.
// Out-of-range and empty cells never match.
func (g *Grid) sameKind(kind Kind, cs ...Coord) bool {
	for _, c := range cs {
		cell := g.peek(c)
		if !cell.Filled || cell.Item.Kind != kind {
			return false
		}
	}
	return true
}

// WouldMatch predicts whether placing kind at c would complete a run of three.
// Only the neighbours of c are inspected: the two cells before it, the two after it,
// and the pair around it, along each axis. Bounds come from the axis being scanned.
func WouldMatch(g *Grid, c Coord, kind Kind) bool {
	for _, d := range axes {
		before1, before2 := c.Add(-d.X, -d.Y), c.Add(-2*d.X, -2*d.Y)
		after1, after2 := c.Add(d.X, d.Y), c.Add(2*d.X, 2*d.Y)

		if g.sameKind(kind, before1, before2) ||
			g.sameKind(kind, after1, after2) ||
			g.sameKind(kind, before1, after1) {
			return true
		}
	}
	return false
}

// FindAllMatches returns every coordinate that takes part in a horizontal or
// vertical run of at least three items of the same kind.
//
// Each filled cell is tested against its two neighbours on each axis; a longer run
// is found because each of its interior cells passes the same test.
func FindAllMatches(g *Grid) MatchSet {
	set := make(MatchSet)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			cell := g.peek(c)
			if !cell.Filled {
				continue
			}
			for _, d := range axes {
				prev, next := c.Add(-d.X, -d.Y), c.Add(d.X, d.Y)
				if g.sameKind(cell.Item.Kind, prev, next) {
					set.Add(prev, c, next)
				}
			}
		}
	}
	return set
}
