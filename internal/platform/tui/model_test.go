package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// scriptedGame ends after a fixed number of steps with a fixed score.
type scriptedGame struct {
	steps    int
	endAfter int
	resets   int
	resized  [2]int
	last     core.InputFrame
}

func (g *scriptedGame) ID() string    { return "match3" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The platform clears its frame after the step, so keep a copy
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    100 * g.steps,
		Level:    2,
		Turns:    g.steps,
		GameOver: g.steps >= g.endAfter,
	}
}

func (g *scriptedGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{endAfter: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	m.Init()

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].Score != 300 || scores[0].Level != 2 || scores[0].Turns != 3 {
		t.Errorf("saved %+v", scores[0])
	}
	if scores[0].SessionID != m.sessionID {
		t.Errorf("session id = %q, want %q", scores[0].SessionID, m.sessionID)
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr = %v", m.SaveErr())
	}
}

func TestModelRestartStartsNewSession(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{endAfter: 1}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	m.Init()

	m = update(t, m, TickMsg{})
	first := m.sessionID

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.sessionID == first {
		t.Error("restart kept the session id")
	}

	m = update(t, m, TickMsg{})
	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d scores, want 2", len(scores))
	}
}

func TestModelQuitSavesUnfinishedGame(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q did not quit")
	}

	best, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 100 {
		t.Errorf("HighScore = %d, want 100", best)
	}
}

func TestModelPassesInputAndResize(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	if !game.last.Has(core.ActionLeft) {
		t.Error("left arrow not passed to the game")
	}

	m = update(t, m, TickMsg{})
	if game.last.Has(core.ActionLeft) {
		t.Error("input not cleared after a tick")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} || game.resets != 1 {
		t.Errorf("resize: resized=%v resets=%d", game.resized, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &scriptedGame{endAfter: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	m.Init()
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("b returned to the menu outside an SSH session")
	}

	m.allowBack = true
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b did not return to the menu")
	}
}
