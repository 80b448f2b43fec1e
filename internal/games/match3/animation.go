package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// frameKind says how a frame highlights cells.
type frameKind int

const (
	frameSwap    frameKind = iota // Two items trading places
	frameMatched                  // Runs about to be destroyed
	frameSettled                  // Board after collapse and refill
)

// frame is one step of a turn's animation: a board picture held for some ticks.
type frame struct {
	kind      frameKind
	board     *engine.Grid
	highlight map[engine.Coord]bool
	gain      int // Score added when the frame starts
	round     int // Cascade round, 0-based
	ticks     int
	started   bool
}

// buildFrames turns a finished turn into the frames that replay it.
// before is the board as it was before the swap.
func (g *Game) buildFrames(before *engine.Grid, result engine.TurnResult) []frame {
	a := g.cfg.Animation

	swapped := before.Clone()
	//nolint:errcheck // The engine already accepted this swap
	engine.Swap(swapped, result.From, result.To)
	pair := map[engine.Coord]bool{result.From: true, result.To: true}

	frames := []frame{{kind: frameSwap, board: swapped, highlight: pair, ticks: a.SwapTicks}}

	if result.Outcome == engine.OutcomeReverted {
		return append(frames, frame{kind: frameSwap, board: before, highlight: pair, ticks: a.SwapTicks})
	}

	prev := swapped
	for _, r := range result.Rounds {
		matched := make(map[engine.Coord]bool, r.Matched.Len())
		for c := range r.Matched {
			matched[c] = true
		}
		spawned := make(map[engine.Coord]bool, len(r.Spawned))
		for _, c := range r.Spawned {
			spawned[c] = true
		}

		frames = append(frames,
			frame{kind: frameMatched, board: prev, highlight: matched, round: r.Index, ticks: a.MatchTicks},
			frame{kind: frameSettled, board: r.Board, highlight: spawned, round: r.Index, gain: r.Score(), ticks: a.SettleTicks},
		)
		prev = r.Board
	}
	return frames
}

// stepAnimation advances the current frame by one tick.
// It returns true while frames remain.
func (g *Game) stepAnimation() bool {
	if len(g.frames) == 0 {
		return false
	}

	f := &g.frames[0]
	if !f.started {
		f.started = true
		g.score += f.gain
		g.levelScore += f.gain
		if f.kind == frameSettled && f.round > 0 {
			g.setStatus(comboText(f.round+1), comboStatusTicks)
		}
	}

	f.ticks--
	if f.ticks <= 0 {
		g.frames = g.frames[1:]
	}
	return len(g.frames) > 0
}

// current returns the frame being shown, if any.
func (g *Game) current() (frame, bool) {
	if len(g.frames) == 0 {
		return frame{}, false
	}
	return g.frames[0], true
}
