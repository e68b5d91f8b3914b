package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-drill/internal/platform/httpapi"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP/WebSocket API",
	Long: `Serve the game to web front ends.

Routes:
  GET  /api/modes                       - Drill modes
  GET  /api/scores/{mode}?limit=10      - Leaderboard
  POST /api/{user}/modes/{mode}/select  - Open a board
  POST /api/{user}/modes/{mode}/reset   - Start a board over
  POST /api/{user}/commands             - {"command": "forward"} etc.
  GET  /api/{user}/snapshot             - Current board
  POST /api/{user}/exit                 - Save and record the score
  GET  /api/{user}/ws                   - Event stream and commands

Examples:
  jungle api
  jungle api --http 127.0.0.1:9000 --db ./jungle.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("jungle-api")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server := httpapi.NewServer(httpapi.Config{
		Address: flagHTTPAddr,
		Store:   store,
		Rules:   rules,
		Seed:    flagSeed,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting jungle API on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe(ctx)
}
