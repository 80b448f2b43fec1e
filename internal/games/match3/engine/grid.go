package engine

import "fmt"

// Grid is the board: a fixed Width x Height array of cells stored row-major.
// All mutations go through Set so every path can be checked against the invariants.
type Grid struct {
	w     int
	h     int
	kinds int
	cells []Cell
}

// NewGrid creates an empty grid that will hold kindCount distinct item kinds.
func NewGrid(width, height, kindCount int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if kindCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientItemTypes, kindCount)
	}
	return &Grid{
		w:     width,
		h:     height,
		kinds: kindCount,
		cells: make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// KindCount returns how many item kinds the board draws from.
func (g *Grid) KindCount() int {
	return g.kinds
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) outOfBounds(c Coord) error {
	return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
}

// At returns the cell at c.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, g.outOfBounds(c)
	}
	return g.cells[g.index(c)], nil
}

// Set replaces the cell at c.
func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.cells[g.index(c)] = cell
	return nil
}

// peek is the read-only lookup used by detection; out-of-range reads as empty.
func (g *Grid) peek(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return g.cells[g.index(c)]
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for _, c := range g.Coords() {
		//nolint:errcheck // Coords are always in bounds
		g.Set(c, Empty())
	}
}

// Coords returns all coordinates ordered by row then column.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, cell := range g.cells {
		if !cell.Filled {
			n++
		}
	}
	return n
}

// Full returns true if every cell holds an item.
func (g *Grid) Full() bool {
	return g.EmptyCount() == 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		kinds: g.kinds,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
