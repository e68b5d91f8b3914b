package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

// withFlags points the global flags at a temp dir for one test.
func withFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldDB, oldUser, oldConfig := flagDBPath, flagUser, flagConfig
	flagDBPath = filepath.Join(dir, "jungle.db")
	flagUser = "dana"
	flagConfig = ""
	t.Cleanup(func() {
		flagDBPath, flagUser, flagConfig = oldDB, oldUser, oldConfig
	})
	return dir
}

func TestResetDeletesBoard(t *testing.T) {
	withFlags(t)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	engine := jungle.NewEngine(jungle.Options{UserID: "dana", Store: store})
	if _, err := engine.SelectMode("addition"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	if err := runReset(nil, []string{"addition"}); err != nil {
		t.Fatalf("runReset: %v", err)
	}

	store, err = storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if data, _ := store.LoadBoard("dana", "addition"); data != nil {
		t.Error("board still saved after reset")
	}
}

func TestResetUsesConfigFlag(t *testing.T) {
	dir := withFlags(t)
	bad := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = bad

	if err := runReset(nil, []string{"addition"}); err == nil {
		t.Error("runReset accepted an invalid --config")
	}
}

func TestResetUnknownMode(t *testing.T) {
	withFlags(t)
	if err := runReset(nil, []string{"adition"}); err == nil {
		t.Error("runReset accepted an unknown mode")
	}
}
