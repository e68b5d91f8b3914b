package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-drill/internal/registry"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the best session scores for the specified mode.

Examples:
  jungle scores addition
  jungle scores square-root --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return unknownModeError(mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening boards database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(mode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jungle play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		player := entry.UserID
		if len(player) > 10 {
			player = player[:8] + "…"
		}
		elapsed := fmt.Sprintf("%d:%02d", entry.Elapsed/60, entry.Elapsed%60)
		fmt.Printf("  %-4d  %-8d  %-10s  %-8s  %s\n",
			i+1, entry.Score, player, elapsed, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetModeStats(mode); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Sessions: %d  Average: %.1f\n", stats.HighScore, stats.Sessions, stats.AvgScore)
	}
	return nil
}
