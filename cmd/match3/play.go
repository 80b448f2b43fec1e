package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign or endless mode",
	Long: `Start playing match-3 directly.

Controls:
  Arrows/WASD/hjkl  - Move the cursor (swap when a gem is selected)
  Space/Enter       - Select a gem, or swap with the selected neighbour
  Esc               - Drop the selection
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot to ~/.match3/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 25% more moves per level; endless starts easiest
  normal - Standard moves; endless starts at 30% difficulty
  hard   - 20% fewer moves; endless starts at 70% difficulty
  fixed  - Standard moves; endless difficulty never changes

Examples:
  match3 play
  match3 play --level 5
  match3 play --endless --difficulty hard
  match3 play --config ./my-match3.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, levelsCmd, serveCmd, simCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start on (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
}

// loadGameConfig loads, adjusts and validates the game config, then installs it
// for every game created afterwards.
func loadGameConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyMatch3Preset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	match3.Configure(cfg)
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"items", len(cfg.Items), "levels", len(cfg.Levels), "difficulty", flagDifficulty)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	gameID := match3.IDCampaign
	if flagEndless {
		gameID = match3.IDEndless
	} else if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > len(cfg.Levels) {
			return fmt.Errorf("level %d out of range (1-%d)", flagLevel, len(cfg.Levels))
		}
		match3.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if m, ok := game.(interface{ Err() error }); ok && m.Err() != nil {
		logger.Error("game ended with an internal error", "err", m.Err())
	}
	return nil
}
