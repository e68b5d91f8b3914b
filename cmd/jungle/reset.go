package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

var flagResetScores bool

var resetCmd = &cobra.Command{
	Use:   "reset <mode>",
	Short: "Start a mode's board over",
	Long: `Delete your saved board for a mode. The next time you play it you get
a fresh, fully overgrown board.

With --scores the mode's leaderboard is cleared as well.

Examples:
  jungle reset addition
  jungle reset division --user alice
  jungle reset addition --scores`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear the mode's leaderboard")
}

func runReset(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return unknownModeError(mode)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	userID, err := resolveUser()
	if err != nil {
		return err
	}
	store := openStore(log.New(io.Discard))
	if store == nil {
		return errors.New("nothing to reset without a database")
	}
	defer store.Close()

	engine := jungle.NewEngine(jungle.Options{
		UserID: userID,
		Store:  store,
		Rules:  rules,
		Seed:   flagSeed,
	})
	if _, err := engine.ResetBoard(mode); err != nil {
		return err
	}
	if !engine.StorageAvailable() {
		return fmt.Errorf("could not delete the %s board", mode)
	}
	fmt.Printf("Reset the %s board.\n", registry.Title(mode))

	if flagResetScores {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared the %s leaderboard.\n", registry.Title(mode))
	}
	return nil
}
