package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-drill/internal/platform/tui"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode's board",
	Long: `Open the saved board for a drill mode, or a fresh one.

Controls:
  Left/A, Right/D  - Turn
  Up/W             - Step forward (opens a question in grass)
  0-9, Enter       - Type and submit an answer
  ?                - Help (pauses the clock)
  Esc              - Leave the board
  Q/Ctrl+C         - Quit

Examples:
  jungle play addition
  jungle play square-root --seed 7
  jungle play division --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return unknownModeError(mode)
	}
	return runTUI(mode)
}

// runTUI starts the terminal game, on mode's board or on the menu when mode
// is empty.
func runTUI(mode string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	userID, err := resolveUser()
	if err != nil {
		return err
	}
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	deps := tui.Deps{
		Store:  store,
		UserID: userID,
		Rules:  rules,
		Seed:   flagSeed,
		Logger: logger,
	}
	return tui.Run(deps, runtimeConfig(), mode)
}

func unknownModeError(mode string) error {
	if s, ok := registry.Suggest(mode); ok {
		return fmt.Errorf("unknown mode %q (did you mean %q?)\nRun 'jungle list' to see available modes", mode, s)
	}
	return fmt.Errorf("unknown mode %q\nRun 'jungle list' to see available modes", mode)
}
