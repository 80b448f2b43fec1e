// Package match3 implements the playable match-3 game on top of the board engine:
// cursor and selection input, campaign levels with move limits and score targets,
// endless mode, and round-by-round cascade animation.
package match3

import (
	"sync"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Package-level settings shared by every new game, set once by the CLI.
var (
	settingsMu         sync.RWMutex
	settings           = config.DefaultMatch3Config()
	selectedStartLevel int
)

// Configure replaces the configuration used by games created afterwards.
// The config should already be validated.
func Configure(cfg config.Match3Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Settings returns the configuration new games will use.
func Settings() config.Match3Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetStartLevel sets the campaign level (1-based) new games start on.
// 0 or an out-of-range level starts from the beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return selectedStartLevel
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Settings().Levels)
}

// Levels returns the campaign levels in order.
func Levels() []config.LevelConfig {
	return append([]config.LevelConfig(nil), Settings().Levels...)
}

// ItemSet converts configured items into the engine's item set.
func ItemSet(cfg config.Match3Config) engine.ItemSet {
	set := make(engine.ItemSet, len(cfg.Items))
	for i, it := range cfg.Items {
		set[i] = engine.Item{Kind: engine.Kind(i), Value: it.Value}
	}
	return set
}
