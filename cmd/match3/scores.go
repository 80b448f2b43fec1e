package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for campaign (default) or endless mode.

Examples:
  match3 scores
  match3 scores endless`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"campaign", "endless"},
	RunE:      runScores,
}

// scoreGameID maps a mode name or game ID to a registered game ID.
func scoreGameID(arg string) (string, error) {
	switch arg {
	case "", "campaign":
		return match3.IDCampaign, nil
	case "endless":
		return match3.IDEndless, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("unknown mode %q (want campaign or endless)", arg)
}

func runScores(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := scoreGameID(arg)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'match3 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Turns", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		level := "-"
		if e.Level > 0 {
			level = fmt.Sprintf("%d", e.Level)
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-5s  %-5d  %s\n", i+1, e.Score, level, e.Turns, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	if stats.BestLevel > 0 {
		fmt.Fprintf(out, "Furthest level: %d\n", stats.BestLevel)
	}
	return nil
}
