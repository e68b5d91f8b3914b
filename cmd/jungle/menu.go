package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

The menu lists every drill mode with your saved progress and the best
score. Leaving a board returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open board
  X, then Y    - Reset the highlighted board
  Tab          - Leaderboard
  Q            - Quit

Examples:
  jungle menu
  jungle menu --user alice
  jungle menu --db ./jungle.db`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTUI("")
	},
}
