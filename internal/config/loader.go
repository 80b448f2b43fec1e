package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const match3File = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
//
// A custom path must exist and parse. Files found by the search are skipped when
// unreadable or malformed. The result is not validated; callers run Validate.
func LoadMatch3(customPath string) (Match3Config, error) {
	var cfg Match3Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(match3File), filepath.Join("configs", match3File)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg Match3Config
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Move limits scale with the preset; fixed disables endless progression.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	factor := movesFactorForPreset(preset)
	for i := range cfg.Levels {
		cfg.Levels[i].Moves = max(1, int(math.Round(float64(cfg.Levels[i].Moves)*factor)))
	}
	if cfg.Gameplay.EndlessMoves > 0 {
		cfg.Gameplay.EndlessMoves = max(1, int(math.Round(float64(cfg.Gameplay.EndlessMoves)*factor)))
	}
}
