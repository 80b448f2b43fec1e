// Package config loads the match-3 game configuration from YAML and manages the
// score-driven difficulty of endless mode.
package config

import (
	"errors"
	"fmt"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Items      []ItemConfig     `yaml:"items"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelConfig    `yaml:"levels"`
}

// BoardConfig sets the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ItemConfig describes one item kind. Kinds are numbered by list position.
type ItemConfig struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"` // Score per destroyed item
}

// GameplayConfig holds rules that are not tied to a campaign level.
type GameplayConfig struct {
	EndlessKinds   int  `yaml:"endless_kinds"`    // Kinds in play when endless mode starts
	EndlessMoves   int  `yaml:"endless_moves"`    // 0 means unlimited
	Reshuffle      bool `yaml:"reshuffle"`        // Regenerate the board when no swap can match
	HintDelayTicks int  `yaml:"hint_delay_ticks"` // Idle ticks before a move is highlighted; 0 disables
}

// AnimationConfig sets how many ticks each cascade phase is shown.
type AnimationConfig struct {
	SwapTicks       int `yaml:"swap_ticks"`
	MatchTicks      int `yaml:"match_ticks"`
	SettleTicks     int `yaml:"settle_ticks"`
	LevelClearTicks int `yaml:"level_clear_ticks"`
}

// LevelConfig defines a campaign level.
type LevelConfig struct {
	Name   string `yaml:"name"`
	Kinds  int    `yaml:"kinds"`  // Item kinds in play, taken from the front of Items
	Moves  int    `yaml:"moves"`  // Turns available
	Target int    `yaml:"target"` // Score needed to clear the level
}

// DifficultyConfig defines the endless-mode progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "turns" or "none"
	MaxAt int    `yaml:"max_at"` // Score or turn count at which difficulty peaks
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraKinds int `yaml:"extra_kinds"` // Kinds added on top of EndlessKinds at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// movesFactorForPreset scales campaign move limits.
func movesFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// Level returns the campaign level at index (0-based), or false when out of range.
func (c Match3Config) Level(index int) (LevelConfig, bool) {
	if index < 0 || index >= len(c.Levels) {
		return LevelConfig{}, false
	}
	return c.Levels[index], true
}

// Validate reports every setting the game or the board engine would refuse.
func (c Match3Config) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.width %d out of range [%d, %d]", c.Board.Width, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.height %d out of range [%d, %d]", c.Board.Height, MinBoardSize, MaxBoardSize))
	}

	if len(c.Items) < 2 {
		errs = append(errs, fmt.Errorf("items: need at least 2 kinds, have %d", len(c.Items)))
	}
	for i, it := range c.Items {
		if it.Value < 0 {
			errs = append(errs, fmt.Errorf("items[%d] (%s): negative value %d", i, it.Name, it.Value))
		}
	}

	kindsOK := func(n int) bool { return n >= 2 && n <= len(c.Items) }

	if !kindsOK(c.Gameplay.EndlessKinds) {
		errs = append(errs, fmt.Errorf("gameplay.endless_kinds %d out of range [2, %d]", c.Gameplay.EndlessKinds, len(c.Items)))
	}
	if c.Gameplay.EndlessMoves < 0 {
		errs = append(errs, fmt.Errorf("gameplay.endless_moves is negative"))
	}

	a := c.Animation
	if a.SwapTicks < 0 || a.MatchTicks < 0 || a.SettleTicks < 0 || a.LevelClearTicks < 0 {
		errs = append(errs, errors.New("animation: tick counts must not be negative"))
	}

	switch c.Difficulty.Progression.Type {
	case "score", "turns", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q (want score, turns or none)", c.Difficulty.Progression.Type))
	}

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("levels: at least one campaign level is required"))
	}
	for i, lvl := range c.Levels {
		if !kindsOK(lvl.Kinds) {
			errs = append(errs, fmt.Errorf("levels[%d] (%s): kinds %d out of range [2, %d]", i, lvl.Name, lvl.Kinds, len(c.Items)))
		}
		if lvl.Moves <= 0 {
			errs = append(errs, fmt.Errorf("levels[%d] (%s): moves must be positive", i, lvl.Name))
		}
		if lvl.Target <= 0 {
			errs = append(errs, fmt.Errorf("levels[%d] (%s): target must be positive", i, lvl.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid match3 config: %w", errors.Join(errs...))
	}
	return nil
}
