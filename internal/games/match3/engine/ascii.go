package engine

import (
	"fmt"
	"strings"
)

// EmptySymbol marks an empty cell in the ASCII board format.
const EmptySymbol = '.'

// ParseGrid builds a grid from rows of kind letters ('A' is kind 0, '.' is empty).
// Item values come from set, and the grid's kind count is len(set).
func ParseGrid(set ItemSet, rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}

	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows), len(set))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(runes), width)
		}
		for x, r := range runes {
			if r == EmptySymbol {
				continue
			}
			idx := int(r - 'A')
			if idx < 0 || idx > 255 {
				return nil, fmt.Errorf("%w: symbol %q at %v", ErrInvalidItem, r, C(x, y))
			}
			item, ok := set.Lookup(Kind(idx))
			if !ok {
				return nil, fmt.Errorf("%w: symbol %q at %v", ErrInvalidItem, r, C(x, y))
			}
			if err := g.Set(C(x, y), FilledCell(item)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// MustParseGrid is ParseGrid for fixtures; it panics on error.
func MustParseGrid(set ItemSet, rows ...string) *Grid {
	g, err := ParseGrid(set, rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the board in the ASCII format accepted by ParseGrid.
func (g *Grid) Rows() []string {
	rows := make([]string, g.h)
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.Reset()
		for x := 0; x < g.w; x++ {
			cell := g.peek(C(x, y))
			if cell.Filled {
				sb.WriteRune(cell.Item.Kind.Rune())
			} else {
				sb.WriteRune(EmptySymbol)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
