package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List drill modes and saved progress",
	Long:  `Shows every drill mode with the progress of your saved board.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return nil
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}

	progress := make(map[string]jungle.Summary)
	if userID, err := resolveUser(); err == nil {
		if store := openStore(log.New(io.Discard)); store != nil {
			defer store.Close()
			if boards, err := store.ListBoards(userID); err == nil {
				for _, b := range boards {
					if sum, err := jungle.Summarize(b.Data, b.Mode, rules); err == nil {
						progress[b.Mode] = sum
					}
				}
			}
		}
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Progress")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "--------")

	for _, m := range modes {
		status := "-"
		if sum, ok := progress[m.ID]; ok {
			status = fmt.Sprintf("%d×%d area, %d points, last played %s",
				sum.ViewSize, sum.ViewSize, sum.Score, sum.LastPlayed.Local().Format("2006-01-02"))
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, m.ID, m.Title, status)
	}

	fmt.Println()
	fmt.Println("Run 'jungle play <id>' to play a mode.")
	return nil
}
