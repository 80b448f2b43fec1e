package match3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

// instantConfig is the default config with one-tick animations and no hints.
func instantConfig() config.Match3Config {
	cfg := config.DefaultMatch3Config()
	cfg.Animation = config.AnimationConfig{}
	cfg.Gameplay.HintDelayTicks = 0
	return cfg
}

// withSettings installs cfg for the duration of the test.
func withSettings(t *testing.T, cfg config.Match3Config) {
	t.Helper()
	prev, prevLevel := Settings(), GetStartLevel()
	Configure(cfg)
	SetStartLevel(0)
	t.Cleanup(func() {
		Configure(prev)
		SetStartLevel(prevLevel)
	})
}

func newTestGame(t *testing.T, cfg config.Match3Config, seed int64) *Game {
	t.Helper()
	withSettings(t, cfg)
	g := New()
	g.Reset(testRuntime(seed))
	require.NoError(t, g.Err())
	return g
}

// stepUntilIdle runs empty ticks until the turn animation is over.
func stepUntilIdle(t *testing.T, g *Game) {
	t.Helper()
	empty := core.NewInputFrame()
	for i := 0; i < 10000; i++ {
		if !g.State().Busy {
			return
		}
		g.Step(empty)
	}
	t.Fatal("animation did not finish")
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// revertingPair returns two neighbours whose swap makes no run.
func revertingPair(t *testing.T, g *Game) (engine.Coord, engine.Coord) {
	t.Helper()
	moves := make(map[engine.Move]bool)
	for _, m := range g.eng.Moves() {
		moves[m] = true
	}
	for _, c := range g.board.Coords() {
		right := c.Add(1, 0)
		if g.board.InBounds(right) && !moves[engine.Move{A: c, B: right}] {
			return c, right
		}
	}
	t.Fatal("every horizontal swap matches")
	return engine.Coord{}, engine.Coord{}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDEndless} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestResetIsDeterministic(t *testing.T) {
	withSettings(t, instantConfig())

	a, b := New(), New()
	a.Reset(testRuntime(42))
	b.Reset(testRuntime(42))
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	m := a.eng.Moves()[0]
	a.play(m.A, m.B)
	b.play(m.A, m.B)
	stepUntilIdle(t, a)
	stepUntilIdle(t, b)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestNewBoardIsStableAndPlayable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, instantConfig(), seed)
		assert.Empty(t, engine.FindAllMatches(g.board).Coords(), "seed %d", seed)
		assert.True(t, g.board.Full(), "seed %d", seed)
		assert.NotEmpty(t, g.eng.Moves(), "seed %d", seed)
	}
}

func TestStartLevel(t *testing.T) {
	withSettings(t, instantConfig())
	SetStartLevel(3)

	g := New()
	g.Reset(testRuntime(1))
	level, _ := g.cfg.Level(2)
	snap := g.Snapshot()
	assert.Equal(t, 3, snap.Level)
	assert.Equal(t, level.Kinds, snap.Kinds)
	assert.Equal(t, level.Moves, snap.MovesLeft)
	assert.Equal(t, level.Target, snap.Target)
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)

	for i := 0; i < 20; i++ {
		press(g, core.ActionLeft)
	}
	assert.Equal(t, 0, g.cursor.X)

	for i := 0; i < 20; i++ {
		press(g, core.ActionDown)
	}
	assert.Equal(t, g.cfg.Board.Height-1, g.cursor.Y)
	assert.Zero(t, g.turns)
}

func TestSelection(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	start := g.cursor

	press(g, core.ActionSelect)
	require.NotNil(t, g.selection)
	assert.Equal(t, start, *g.selection)

	press(g, core.ActionSelect)
	assert.Nil(t, g.selection, "selecting the same cell again deselects it")

	press(g, core.ActionSelect)
	press(g, core.ActionCancel)
	assert.Nil(t, g.selection)

	// A distant cell replaces the selection instead of swapping
	press(g, core.ActionSelect)
	g.cursor = start.Add(2, 0)
	press(g, core.ActionSelect)
	require.NotNil(t, g.selection)
	assert.Equal(t, start.Add(2, 0), *g.selection)
	assert.Zero(t, g.turns)
}

func TestArrowWithSelectionSwaps(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	start := g.cursor

	press(g, core.ActionSelect)
	press(g, core.ActionRight)
	stepUntilIdle(t, g)

	assert.Equal(t, 1, g.turns)
	assert.Nil(t, g.selection)
	assert.Equal(t, start.Add(1, 0), g.cursor)
}

func TestMatchingTurnCostsOneMove(t *testing.T) {
	g := newTestGame(t, instantConfig(), 7)
	level, _ := g.cfg.Level(0)

	m := g.eng.Moves()[0]
	g.play(m.A, m.B)
	assert.True(t, g.State().Busy)
	assert.Equal(t, StateAnimating, g.Snapshot().State)
	stepUntilIdle(t, g)

	assert.Equal(t, 1, g.turns)
	assert.Equal(t, level.Moves-1, g.movesLeft)
	assert.Positive(t, g.score)
	assert.Equal(t, g.score, g.levelScore)
	assert.Empty(t, engine.FindAllMatches(g.board).Coords())
	assert.True(t, g.board.Full())
}

func TestRevertedTurnCostsOneMove(t *testing.T) {
	g := newTestGame(t, instantConfig(), 7)
	level, _ := g.cfg.Level(0)
	before := g.board.Clone()

	a, b := revertingPair(t, g)
	g.play(a, b)
	stepUntilIdle(t, g)

	assert.Equal(t, 1, g.turns)
	assert.Equal(t, level.Moves-1, g.movesLeft)
	assert.Zero(t, g.score)
	assert.True(t, before.Equal(g.board), "reverted swap leaves the board as it was")
	assert.Equal(t, "No match", g.status)
}

func TestNonAdjacentSwapIsNotATurn(t *testing.T) {
	g := newTestGame(t, instantConfig(), 7)

	g.play(engine.C(0, 0), engine.C(2, 0))

	assert.False(t, g.State().Busy)
	assert.Zero(t, g.turns)
	assert.Equal(t, "Pick a neighbouring cell", g.status)
}

func TestGameOverWhenOutOfMoves(t *testing.T) {
	cfg := instantConfig()
	cfg.Levels = []config.LevelConfig{{Name: "Short", Kinds: 4, Moves: 1, Target: 1_000_000}}
	g := newTestGame(t, cfg, 3)

	a, b := revertingPair(t, g)
	g.play(a, b)
	stepUntilIdle(t, g)

	state := g.State()
	assert.True(t, state.GameOver)
	assert.False(t, state.Won)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Input is ignored after the game ends
	press(g, core.ActionSelect)
	assert.Nil(t, g.selection)
}

func TestLevelClearAdvancesAndWins(t *testing.T) {
	cfg := instantConfig()
	cfg.Levels = []config.LevelConfig{
		{Name: "One", Kinds: 4, Moves: 5, Target: 1},
		{Name: "Two", Kinds: 5, Moves: 5, Target: 1},
	}
	g := newTestGame(t, cfg, 11)

	m := g.eng.Moves()[0]
	g.play(m.A, m.B)
	stepUntilIdle(t, g)
	require.Equal(t, StateLevelCleared, g.Snapshot().State)
	assert.True(t, g.State().Paused)

	press(g)
	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, 5, snap.Kinds)
	assert.Equal(t, 5, snap.MovesLeft)
	assert.Zero(t, snap.LevelScore)
	assert.Positive(t, snap.Score, "total score carries over")

	m = g.eng.Moves()[0]
	g.play(m.A, m.B)
	stepUntilIdle(t, g)
	press(g)

	state := g.State()
	assert.True(t, state.Won)
	assert.True(t, state.GameOver)
	assert.Equal(t, StateWin, g.Snapshot().State)
}

func TestAnimationCreditsScoreGradually(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Gameplay.HintDelayTicks = 0
	g := newTestGame(t, cfg, 5)

	m := g.eng.Moves()[0]
	g.play(m.A, m.B)
	total := 0
	for _, f := range g.frames {
		total += f.gain
	}
	require.Positive(t, total)

	ticks := 0
	for g.State().Busy {
		press(g)
		ticks++
		require.Less(t, ticks, 10000)
	}

	assert.Equal(t, total, g.score)
	assert.GreaterOrEqual(t, ticks, cfg.Animation.SwapTicks+cfg.Animation.MatchTicks+cfg.Animation.SettleTicks)
}

func TestInputIgnoredWhileAnimating(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Gameplay.HintDelayTicks = 0
	g := newTestGame(t, cfg, 5)

	m := g.eng.Moves()[0]
	g.play(m.A, m.B)
	cursor := g.cursor
	press(g, core.ActionLeft)
	press(g, core.ActionSelect)

	assert.Equal(t, cursor, g.cursor)
	assert.Nil(t, g.selection)
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	cursor := g.cursor

	press(g, core.ActionPause)
	assert.True(t, g.State().Paused)
	press(g, core.ActionLeft)
	assert.Equal(t, cursor, g.cursor)

	press(g, core.ActionPause)
	assert.False(t, g.State().Paused)
	press(g, core.ActionLeft)
	assert.Equal(t, cursor.Add(-1, 0), g.cursor)
}

func TestHintAfterIdle(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.HintDelayTicks = 3
	g := newTestGame(t, cfg, 1)

	press(g)
	press(g)
	assert.Nil(t, g.hint)
	press(g)
	require.NotNil(t, g.hint)
	assert.Equal(t, g.eng.Moves()[0], *g.hint)

	press(g, core.ActionUp)
	assert.Nil(t, g.hint)
}

func TestEndlessUnlocksKinds(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.EndlessKinds = 3
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "turns", MaxAt: 1},
		Scaling:     config.ScalingConfig{ExtraKinds: 2},
	}
	withSettings(t, cfg)

	g := NewEndless()
	g.Reset(testRuntime(9))
	require.NoError(t, g.Err())
	assert.Equal(t, 3, g.kinds)
	assert.Equal(t, -1, g.movesLeft)
	assert.Equal(t, "endless", g.Snapshot().Mode)
	assert.Zero(t, g.Snapshot().Level)

	rows := g.eng.Board().Rows()
	a, b := revertingPair(t, g)
	g.play(a, b)
	stepUntilIdle(t, g)

	require.NoError(t, g.Err())
	assert.Equal(t, rows, g.eng.Board().Rows(), "unlocking keeps the board")
	assert.Equal(t, 5, g.kinds)
	assert.Equal(t, 5, g.eng.Board().KindCount())
	assert.Equal(t, "New gem unlocked: "+cfg.Items[4].Name, g.status)
	assert.Equal(t, -1, g.movesLeft, "endless moves stay unlimited")
	assert.False(t, g.State().GameOver)
}

func TestEndlessMoveLimit(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.EndlessMoves = 1
	withSettings(t, cfg)

	g := NewEndless()
	g.Reset(testRuntime(9))
	a, b := revertingPair(t, g)
	g.play(a, b)
	stepUntilIdle(t, g)

	assert.True(t, g.State().GameOver)
}

// deadRows has no swap that makes a run.
var deadRows = []string{"ABCA", "CABC", "BCAB"}

func TestDeadBoardWithoutReshuffleEndsGame(t *testing.T) {
	cfg := instantConfig()
	cfg.Gameplay.Reshuffle = false
	g := newTestGame(t, cfg, 1)

	g.attach(engine.MustParseGrid(g.items[:3], deadRows...))
	g.ensureMoves()

	assert.True(t, g.gameOver)
	assert.Equal(t, "No moves left", g.status)
	assert.Zero(t, g.reshuffles)
}

func TestDeadBoardIsReshuffled(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)

	g.attach(engine.MustParseGrid(g.items[:3], deadRows...))
	g.ensureMoves()

	assert.GreaterOrEqual(t, g.reshuffles, 1)
	if !g.gameOver {
		assert.NotEmpty(t, g.eng.Moves())
		assert.Empty(t, engine.FindAllMatches(g.eng.Board()).Coords())
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	m := g.eng.Moves()[0]
	g.play(m.A, m.B)
	stepUntilIdle(t, g)
	score := g.score

	g.Resize(20, 8)
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, score, g.score)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Match-3")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Level 1/10")
	assert.Contains(t, out, "[")

	g.gameOver = true
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	g.Resize(20, 8)
	small := core.NewScreen(20, 8)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "Window too small"))
}

func TestRenderBoardGlyphs(t *testing.T) {
	g := newTestGame(t, instantConfig(), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	want := make(map[rune]bool)
	for _, c := range g.board.Coords() {
		cell, err := g.board.At(c)
		require.NoError(t, err)
		want[Glyph(cell.Item.Kind)] = true
	}
	for r := range want {
		assert.Contains(t, screen.String(), string(r))
	}
}

func TestNewAtLevelIgnoresGlobalStart(t *testing.T) {
	withSettings(t, instantConfig())
	SetStartLevel(5)

	g := NewAtLevel(2)
	g.Reset(testRuntime(1))
	assert.Equal(t, 2, g.Snapshot().Level)

	g = NewAtLevel(99)
	g.Reset(testRuntime(1))
	assert.Equal(t, 1, g.Snapshot().Level)
}
