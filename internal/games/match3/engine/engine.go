package engine

// TurnState is the phase of the current player turn.
type TurnState int

const (
	TurnIdle          TurnState = iota // Waiting for a swap
	TurnSwapRequested                  // Swap being validated and applied
	TurnReverted                       // Swap made no match and is being undone
	TurnCascading                      // Cascade rounds being resolved
)

// String returns the state name.
func (s TurnState) String() string {
	switch s {
	case TurnIdle:
		return "idle"
	case TurnSwapRequested:
		return "swap_requested"
	case TurnReverted:
		return "reverted"
	case TurnCascading:
		return "cascading"
	default:
		return "unknown"
	}
}

// Outcome is how a valid swap ended.
type Outcome int

const (
	OutcomeReverted Outcome = iota // No match; the swap was undone
	OutcomeCascaded                // At least one round was resolved
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeCascaded {
		return "cascaded"
	}
	return "reverted"
}

// TurnResult describes a completed player turn.
type TurnResult struct {
	From    Coord
	To      Coord
	Outcome Outcome
	Rounds  []Round
	Score   int // Sum of destroyed item values over all rounds
}

// Destroyed returns how many items the turn removed.
func (r TurnResult) Destroyed() int {
	n := 0
	for _, round := range r.Rounds {
		n += len(round.Destroyed)
	}
	return n
}

// MoveCounter is notified once per completed turn, matched or reverted.
type MoveCounter interface {
	TurnCompleted(result TurnResult)
}

// MoveCounterFunc adapts a function to MoveCounter.
type MoveCounterFunc func(result TurnResult)

// TurnCompleted calls f.
func (f MoveCounterFunc) TurnCompleted(result TurnResult) {
	f(result)
}

// Option configures an Engine.
type Option func(*Engine)

// WithMoveCounter registers the collaborator told about completed turns.
func WithMoveCounter(mc MoveCounter) Option {
	return func(e *Engine) {
		e.counter = mc
	}
}

// Engine owns a grid and runs player turns against it.
type Engine struct {
	grid    *Grid
	gen     *Generator
	counter MoveCounter
	state   TurnState
}

// NewEngine creates an engine over g. The engine becomes the grid's only writer.
func NewEngine(g *Grid, gen *Generator, opts ...Option) *Engine {
	e := &Engine{grid: g, gen: gen}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns a copy of the current grid.
func (e *Engine) Board() *Grid {
	return e.grid.Clone()
}

// State returns the current turn phase. Play runs a whole turn before it
// returns, so callers outside Play always see TurnIdle. The reverted and
// cascading phases are visible only from a MoveCounter, which runs before the
// engine goes back to idle.
func (e *Engine) State() TurnState {
	return e.state
}

// Populate fills the grid with a fresh board that has no runs.
func (e *Engine) Populate() error {
	return e.gen.Populate(e.grid)
}

// Moves returns the swaps that would produce a match on the current board.
func (e *Engine) Moves() []Move {
	return FindMoves(e.grid)
}

// Play runs one player turn: swap a and b, then either resolve the cascade or
// swap back when nothing matched. Rejected swaps return an error, leave the
// board unchanged and do not count as a turn.
func (e *Engine) Play(a, b Coord) (TurnResult, error) {
	e.state = TurnSwapRequested
	defer func() { e.state = TurnIdle }()

	if err := Swap(e.grid, a, b); err != nil {
		return TurnResult{}, err
	}

	result := TurnResult{From: a, To: b}

	if FindAllMatches(e.grid).Empty() {
		e.state = TurnReverted
		if err := Swap(e.grid, a, b); err != nil {
			return result, err
		}
		result.Outcome = OutcomeReverted
	} else {
		e.state = TurnCascading
		rounds, err := Resolve(e.grid, e.gen)
		if err != nil {
			return result, err
		}
		result.Outcome = OutcomeCascaded
		result.Rounds = rounds
		for _, r := range rounds {
			result.Score += r.Score()
		}
	}

	if e.counter != nil {
		e.counter.TurnCompleted(result)
	}
	return result, nil
}
