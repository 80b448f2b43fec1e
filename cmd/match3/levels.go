package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels from the active config, after any
--difficulty preset is applied.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Board: %dx%d\n\n", cfg.Board.Width, cfg.Board.Height)

	nameLen := len("Name")
	for _, l := range cfg.Levels {
		nameLen = max(nameLen, len(l.Name))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %5s  %5s  %6s\n", "#", nameLen, "Name", "Gems", "Moves", "Target")
	fmt.Fprintf(out, "  %-3s  %-*s  %5s  %5s  %6s\n", "--", nameLen, "----", "----", "-----", "------")
	for i, l := range cfg.Levels {
		fmt.Fprintf(out, "  %-3d  %-*s  %5d  %5d  %6d\n", i+1, nameLen, l.Name, l.Kinds, l.Moves, l.Target)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'match3 play --level <n>' to start on a level.")
	return nil
}
