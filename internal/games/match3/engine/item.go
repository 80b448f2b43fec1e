package engine

import "fmt"

// Kind identifies an item type. Kinds are compared for equality only.
type Kind uint8

// Rune returns the single-letter symbol used by the ASCII board format ('A' for kind 0).
func (k Kind) Rune() rune {
	return rune('A' + int(k))
}

// String returns the kind's letter.
func (k Kind) String() string {
	return string(k.Rune())
}

// Item is the content of a filled cell.
type Item struct {
	Kind  Kind
	Value int // Score yielded when the item is destroyed
}

// Cell is one grid position; Item is meaningful only when Filled is true.
type Cell struct {
	Item   Item
	Filled bool
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a cell holding the given item.
func FilledCell(item Item) Cell {
	return Cell{Item: item, Filled: true}
}

// ItemSet is the catalog of item kinds a board draws from.
// A grid with KindCount n uses the first n entries.
type ItemSet []Item

// DefaultItemSet returns n kinds (0..n-1) worth one point each.
func DefaultItemSet(n int) ItemSet {
	set := make(ItemSet, n)
	for i := range set {
		set[i] = Item{Kind: Kind(i), Value: 1}
	}
	return set
}

// Validate reports duplicate kinds or negative values.
func (s ItemSet) Validate() error {
	seen := make(map[Kind]bool, len(s))
	for i, it := range s {
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has negative value %d", ErrInvalidItem, i, it.Value)
		}
		if seen[it.Kind] {
			return fmt.Errorf("%w: duplicate kind %v", ErrInvalidItem, it.Kind)
		}
		seen[it.Kind] = true
	}
	return nil
}

// Lookup returns the catalog entry for a kind.
func (s ItemSet) Lookup(k Kind) (Item, bool) {
	for _, it := range s {
		if it.Kind == k {
			return it, true
		}
	}
	return Item{}, false
}
