package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It matches
// defaults/match3.yaml and is used if the embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{Width: 8, Height: 8},
		Items: []ItemConfig{
			{Name: "ruby", Value: 10},
			{Name: "emerald", Value: 10},
			{Name: "sapphire", Value: 10},
			{Name: "topaz", Value: 10},
			{Name: "amethyst", Value: 15},
			{Name: "pearl", Value: 20},
		},
		Gameplay: GameplayConfig{
			EndlessKinds:   4,
			EndlessMoves:   0,
			Reshuffle:      true,
			HintDelayTicks: 300,
		},
		Animation: AnimationConfig{
			SwapTicks:       5,
			MatchTicks:      8,
			SettleTicks:     6,
			LevelClearTicks: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraKinds: 2,
			},
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Kinds: 3, Moves: 15, Target: 400},
			{Name: "Four Colors", Kinds: 4, Moves: 18, Target: 600},
			{Name: "Steady Hands", Kinds: 4, Moves: 16, Target: 700},
			{Name: "Five Alive", Kinds: 5, Moves: 20, Target: 800},
			{Name: "Thin Margins", Kinds: 5, Moves: 16, Target: 750},
			{Name: "Full Palette", Kinds: 6, Moves: 22, Target: 1000},
			{Name: "Deep Cascade", Kinds: 6, Moves: 18, Target: 900},
			{Name: "Tight Budget", Kinds: 6, Moves: 14, Target: 800},
			{Name: "Marathon", Kinds: 6, Moves: 30, Target: 1600},
			{Name: "Grandmaster", Kinds: 6, Moves: 20, Target: 1300},
		},
	}
}
