// jungle is a math-drill game: clear an overgrown board by answering the
// questions hidden under the grass.
//
// Usage:
//
//	jungle list              - List drill modes and your saved boards
//	jungle play <mode>       - Play a mode's board
//	jungle menu              - Pick a mode interactively
//	jungle reset <mode>      - Start a mode's board over
//	jungle scores <mode>     - Show the leaderboard for a mode
//	jungle serve             - Start SSH server for remote play
//	jungle api               - Start the HTTP/WebSocket API
//
// Global flags:
//
//	--seed <value>     - Board seed (0 = new board layout each time)
//	--db <path>        - Database path (default: ~/.jungle/jungle.db)
//	--user <id>        - Player id (default: stored local id)
//	--config <path>    - Rules YAML
//	--log-file <path>  - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jungle-drill/internal/config"
	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/identity"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/storage"

	// Import modes to register them
	_ "github.com/vovakirdan/jungle-drill/internal/modes"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagUser    string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jungle",
	Short: "Jungle - clear the grass by solving math drills",
	Long: `Jungle is a terminal math-drill game. Every mode has its own board of
grass-covered cells; walk into a cell and answer its question to cut the
grass. Boards are saved, and the grass grows back while you are away.

Available commands:
  list     - Show drill modes and saved progress
  play     - Play a mode's board directly
  menu     - Interactive mode picker
  reset    - Start a board over
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  api      - Start the HTTP/WebSocket API

Examples:
  jungle list
  jungle play multiplication
  jungle menu
  jungle serve --ssh :2222
  jungle api --http :8080
  jungle scores addition`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jungle/jungle.db", "Path to boards database")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Player id (default: local id in ~/.jungle/user_id)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// loadRules reads the rules from --config or the default search path.
func loadRules() (jungle.Rules, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return jungle.Rules{}, err
	}
	return jungle.RulesFromConfig(cfg), nil
}

// openStore opens the database, or returns nil when it cannot be opened so
// play can continue without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open boards database: %v\n", err)
		logger.Warn("playing without saving", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveUser returns --user or the stored local id.
func resolveUser() (string, error) {
	return identity.Resolve(flagUser, identity.DefaultPath)
}

// newLogger returns a logger for server commands, writing to stderr unless
// --log-file is set.
func newLogger(prefix string) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// tuiLogger is like newLogger but discards output without --log-file, since
// the terminal belongs to the game.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	return newLogger("jungle")
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
