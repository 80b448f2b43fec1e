package match3

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs.
const (
	IDCampaign = "match3"
	IDEndless  = "match3_endless"
)

const (
	maxReshuffles    = 20 // Fresh boards tried before declaring the board dead
	statusTicks      = 60
	comboStatusTicks = 20
)

// Game implements the match-3 puzzle in campaign and endless modes.
type Game struct {
	mode       Mode
	cfg        config.Match3Config
	startLevel int // 0-based
	items      engine.ItemSet

	rng        *rand.Rand
	gen        *engine.Generator
	eng        *engine.Engine
	board      *engine.Grid // Settled board shown while idle
	difficulty *config.DifficultyManager
	tick       uint64

	levelIndex int
	kinds      int
	movesLeft  int // -1 means unlimited
	target     int
	levelScore int
	score      int
	turns      int
	reshuffles int

	cursor    engine.Coord
	selection *engine.Coord
	hint      *engine.Move
	idleTicks int
	frames    []frame

	status      string
	statusTicks int

	screenW, screenH int

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	err             error
}

// New creates a campaign game using the current package settings.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates an endless game using the current package settings.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

// NewAtLevel creates a campaign game starting on a 1-based level, ignoring the
// package-wide start level. Out-of-range levels start from the beginning.
func NewAtLevel(level int) *Game {
	g := newGame(ModeCampaign)
	g.setStart(level)
	return g
}

func newGame(mode Mode) *Game {
	cfg := Settings()
	g := &Game{mode: mode, cfg: cfg, items: ItemSet(cfg)}
	if mode == ModeCampaign {
		g.setStart(GetStartLevel())
	}
	return g
}

func (g *Game) setStart(level int) {
	g.startLevel = 0
	if level > 0 && level <= len(g.cfg.Levels) {
		g.startLevel = level - 1
	}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset starts a new game. The same seed always produces the same game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.turns = 0
	g.reshuffles = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.err = nil
	g.frames = nil
	g.status = ""
	g.statusTicks = 0
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	gen, err := engine.NewGenerator(g.items, g.rng)
	if err != nil {
		g.fail(err)
		return
	}
	g.gen = gen

	g.levelIndex = g.startLevel
	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel sets up the current level with a fresh board.
func (g *Game) loadLevel() {
	g.levelScore = 0
	g.resetInput()

	if g.mode == ModeEndless {
		g.target = 0
		g.movesLeft = -1
		if g.cfg.Gameplay.EndlessMoves > 0 {
			g.movesLeft = g.cfg.Gameplay.EndlessMoves
		}
		g.kinds = g.difficulty.KindCount(g.cfg.Gameplay.EndlessKinds, len(g.items), 0, 0)
	} else {
		level, ok := g.cfg.Level(g.levelIndex)
		if !ok {
			level = g.cfg.Levels[len(g.cfg.Levels)-1]
		}
		g.target = level.Target
		g.movesLeft = level.Moves
		g.kinds = level.Kinds
	}

	grid, err := engine.NewGrid(g.cfg.Board.Width, g.cfg.Board.Height, g.kinds)
	if err != nil {
		g.fail(err)
		return
	}
	g.attach(grid)
	if err := g.eng.Populate(); err != nil {
		g.fail(err)
		return
	}
	g.ensureMoves()
	g.board = g.eng.Board()
}

// attach puts a new engine in charge of grid.
func (g *Game) attach(grid *engine.Grid) {
	g.eng = engine.NewEngine(grid, g.gen, engine.WithMoveCounter(engine.MoveCounterFunc(g.turnCompleted)))
}

// turnCompleted is the engine's move counter: every played turn costs a move,
// whether the swap matched or was reverted.
func (g *Game) turnCompleted(engine.TurnResult) {
	g.turns++
	if g.movesLeft > 0 {
		g.movesLeft--
	}
}

// ensureMoves replaces a board on which no swap can match.
func (g *Game) ensureMoves() {
	if len(g.eng.Moves()) > 0 {
		return
	}
	if !g.cfg.Gameplay.Reshuffle {
		g.gameOver = true
		g.setStatus("No moves left", statusTicks)
		return
	}
	for i := 0; i < maxReshuffles; i++ {
		if err := g.eng.Populate(); err != nil {
			g.fail(err)
			return
		}
		g.reshuffles++
		if len(g.eng.Moves()) > 0 {
			g.setStatus("No moves left, reshuffled", statusTicks)
			return
		}
	}
	g.gameOver = true
	g.setStatus("No moves left", statusTicks)
}

// fail ends the game after an engine error.
func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
	g.frames = nil
	g.setStatus("Internal error: "+err.Error(), statusTicks)
}

// Err returns the engine error that ended the game, if any.
func (g *Game) Err() error {
	return g.err
}

func (g *Game) setStatus(msg string, ticks int) {
	g.status = msg
	g.statusTicks = ticks
}

func (g *Game) resetInput() {
	g.cursor = engine.C(g.cfg.Board.Width/2, g.cfg.Board.Height/2)
	g.selection = nil
	g.hint = nil
	g.idleTicks = 0
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	w, h := boardSize(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tooSmall = g.screenW < max(w, minHUDWidth) || g.screenH < h+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Animation.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if len(g.frames) > 0 {
		if !g.stepAnimation() {
			g.finishTurn()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor, manages the selection and starts turns.
func (g *Game) handleInput(in core.InputFrame) {
	acted := false

	if dir, ok := in.Direction(); ok {
		acted = true
		dx, dy := dir.Delta()
		next := g.cursor.Add(dx, dy)
		switch {
		case g.selection != nil && g.board.InBounds(g.selection.Add(dx, dy)):
			// An arrow with a selection swaps toward it
			from := *g.selection
			g.cursor = from.Add(dx, dy)
			g.play(from, g.cursor)
		case g.board.InBounds(next):
			g.cursor = next
		}
	}

	if in.Has(core.ActionCancel) && g.selection != nil {
		acted = true
		g.selection = nil
	}

	if in.Has(core.ActionSelect) && len(g.frames) == 0 {
		acted = true
		switch {
		case g.selection == nil:
			c := g.cursor
			g.selection = &c
		case *g.selection == g.cursor:
			g.selection = nil
		case engine.AreAdjacent(*g.selection, g.cursor):
			g.play(*g.selection, g.cursor)
		default:
			c := g.cursor
			g.selection = &c
		}
	}

	if acted {
		g.idleTicks = 0
		g.hint = nil
		return
	}

	g.idleTicks++
	if delay := g.cfg.Gameplay.HintDelayTicks; delay > 0 && g.idleTicks >= delay && g.hint == nil {
		if moves := g.eng.Moves(); len(moves) > 0 {
			m := moves[0]
			g.hint = &m
		}
	}
}

// play runs one turn and queues its animation.
func (g *Game) play(a, b engine.Coord) {
	g.selection = nil
	before := g.eng.Board()

	result, err := g.eng.Play(a, b)
	if err != nil {
		if errors.Is(err, engine.ErrNotAdjacent) || errors.Is(err, engine.ErrOutOfBounds) {
			g.setStatus("Pick a neighbouring cell", statusTicks)
			return
		}
		g.fail(err)
		return
	}

	g.frames = g.buildFrames(before, result)
	if result.Outcome == engine.OutcomeReverted {
		g.setStatus("No match", statusTicks/2)
	}
}

// finishTurn runs the end-of-turn rules once the animation is over.
func (g *Game) finishTurn() {
	g.board = g.eng.Board()

	if g.mode == ModeCampaign && g.levelScore >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		return
	}
	if g.movesLeft == 0 {
		g.gameOver = true
		g.setStatus("Out of moves", statusTicks)
		return
	}

	if g.mode == ModeEndless {
		g.raiseDifficulty()
	}

	g.ensureMoves()
	g.board = g.eng.Board()
}

// raiseDifficulty adds item kinds in endless mode as the score grows.
// New kinds only appear through refills.
func (g *Game) raiseDifficulty() {
	kinds := g.difficulty.KindCount(g.cfg.Gameplay.EndlessKinds, len(g.items), g.score, g.turns)
	if kinds <= g.kinds {
		return
	}

	old := g.eng.Board()
	grid, err := engine.NewGrid(old.Width(), old.Height(), kinds)
	if err != nil {
		g.fail(err)
		return
	}
	for _, c := range old.Coords() {
		cell, err := old.At(c)
		if err != nil {
			g.fail(err)
			return
		}
		if err := grid.Set(c, cell); err != nil {
			g.fail(err)
			return
		}
	}

	g.kinds = kinds
	g.attach(grid)
	g.setStatus(fmt.Sprintf("New gem unlocked: %s", g.cfg.Items[kinds-1].Name), statusTicks)
}

// advanceLevel moves to the next campaign level, or wins after the last one.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.cfg.Levels)-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return core.GameState{
		Score:    g.score,
		Level:    level,
		Turns:    g.turns,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
		Busy:     len(g.frames) > 0,
	}
}

func comboText(n int) string {
	return fmt.Sprintf("Combo x%d!", n)
}
