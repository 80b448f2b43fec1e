package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	flagSimTurns int
	flagSimLevel int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Autoplay a campaign level without a terminal",
	Long: `Play a campaign level headlessly, always taking the first legal move.
Every turn is logged at info level and every cascade round at debug level.
The final score and board are printed at the end.

Examples:
  match3 sim
  match3 sim --level 4 --seed 7
  match3 sim --turns 3 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTurns, "turns", 0, "Stop after this many turns (0 = play until the level ends)")
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Campaign level to play (1-based)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := match3.Autoplay(cfg, match3.AutoplayOptions{
		Level:  flagSimLevel,
		Turns:  flagSimTurns,
		Seed:   seed,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	outcome := "stopped"
	switch {
	case res.Cleared:
		outcome = "cleared"
	case res.OutOfMoves:
		outcome = "out of moves"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level:   %s (seed %d)\n", res.Level.Name, seed)
	fmt.Fprintf(out, "Result:  %s\n", outcome)
	fmt.Fprintf(out, "Score:   %d / %d\n", res.Score, res.Level.Target)
	fmt.Fprintf(out, "Turns:   %d, %d cascade rounds, %d reshuffles\n", res.Turns, res.Rounds, res.Reshuffles)
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Join(res.Board, "\n"))
	return nil
}
