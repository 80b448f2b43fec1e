// match3 is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	match3 play              - Play the campaign (or --endless)
//	match3 menu              - Start menu to pick a mode interactively
//	match3 levels            - List campaign levels
//	match3 scores [mode]     - Show high scores for campaign or endless
//	match3 serve             - Start SSH server for remote play
//	match3 sim               - Autoplay a level without a terminal
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.match3/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap gems in your terminal",
	Long: `Match-3 is a terminal puzzle game: swap neighbouring gems to line up
three or more of a kind, clear them, and chain cascades for bonus points.

Available commands:
  play     - Play the campaign or endless mode directly
  menu     - Interactive mode and level picker
  levels   - List campaign levels
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Autoplay a level and log every cascade

Examples:
  match3 play
  match3 play --level 4 --difficulty hard
  match3 play --endless
  match3 serve --ssh :2222
  match3 sim --level 3 --log-level debug`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
