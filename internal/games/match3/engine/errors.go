package engine

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("match3: coordinate out of bounds")
	// ErrNotAdjacent indicates a swap between cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("match3: cells are not adjacent")
	// ErrEmptyCell indicates a swap involving a cell with no item.
	ErrEmptyCell = errors.New("match3: cell is empty")
	// ErrInsufficientItemTypes indicates fewer than two item kinds to draw from.
	ErrInsufficientItemTypes = errors.New("match3: at least two item kinds are required")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("match3: grid width and height must be positive")
	// ErrInvalidItem indicates a malformed item set or an unknown kind symbol.
	ErrInvalidItem = errors.New("match3: invalid item")
	// ErrGenerationExhausted indicates Populate could not produce a board free of matches.
	ErrGenerationExhausted = errors.New("match3: could not generate a board without matches")
)
