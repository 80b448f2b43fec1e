// Package registry maps mode IDs to game factories.
//
// The match3 package registers two modes from its init():
//
//	match3          campaign: fixed levels with a move limit and a score target
//	match3_endless  endless: no target, item kinds unlock as the score grows
//
// The CLI, the menu and the SSH server start games only through Create, and
// the score table is keyed by the same IDs.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is one mode the platform can run. The platform calls Step once per
// tick and Render once per frame; the game never sees Bubble Tea.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform clears first.
	Render(dst *core.Screen)

	// State reports score and status without advancing the game.
	State() core.GameState
}

// Resizer is implemented by games that follow a terminal resize in place.
// The platform Resets games without it, which loses the board.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. The title is read once from a throwaway instance.
// Registering the same ID twice is a programming error and panics.
func Register(id string, f Factory) {
	info := GameInfo{ID: id, Title: f().Title()}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, new: f}
}

// List returns the registered modes ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
