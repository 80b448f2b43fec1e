package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string   // "campaign" or "endless"
	Level      int      // 1-indexed, 0 for endless
	Kinds      int      // Item kinds in play
	Target     int      // Level score target, 0 for endless
	LevelScore int      // Score made on the current level
	Score      int      // Total score
	MovesLeft  int      // -1 when unlimited
	Turns      int      // Turns played
	Reshuffles int      // Dead boards replaced
	Board      []string // Settled board in ASCII form
	Cursor     engine.Coord
	Selection  *engine.Coord
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	case len(g.frames) > 0:
		state = StateAnimating
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	var rows []string
	if g.board != nil {
		rows = g.board.Rows()
	}

	var sel *engine.Coord
	if g.selection != nil {
		c := *g.selection
		sel = &c
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Level:      level,
		Kinds:      g.kinds,
		Target:     g.target,
		LevelScore: g.levelScore,
		Score:      g.score,
		MovesLeft:  g.movesLeft,
		Turns:      g.turns,
		Reshuffles: g.reshuffles,
		Board:      rows,
		Cursor:     g.cursor,
		Selection:  sel,
		State:      state,
	}
}
