package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/jungle-drill/internal/jungle"
	_ "github.com/vovakirdan/jungle-drill/internal/modes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestBoardMissing(t *testing.T) {
	store := openTestStore(t)

	data, err := store.LoadBoard("ada", "addition")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if data != nil {
		t.Errorf("Expected nil data for a missing board, got %q", data)
	}
}

func TestBoardUpsert(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBoard("ada", "addition", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if err := store.SaveBoard("ada", "addition", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("SaveBoard() second write failed: %v", err)
	}
	if err := store.SaveBoard("bob", "addition", []byte(`{"v":3}`)); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	data, err := store.LoadBoard("ada", "addition")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("Expected the latest write, got %q", data)
	}

	entries, err := store.ListBoards("ada")
	if err != nil {
		t.Fatalf("ListBoards() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 board for ada, got %d", len(entries))
	}
}

func TestBoardDelete(t *testing.T) {
	store := openTestStore(t)

	store.SaveBoard("ada", "addition", []byte("a"))
	store.SaveBoard("ada", "division", []byte("d"))

	if err := store.DeleteBoard("ada", "addition"); err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if err := store.DeleteBoard("ada", "addition"); err != nil {
		t.Fatalf("DeleteBoard() of a missing board failed: %v", err)
	}

	if data, _ := store.LoadBoard("ada", "addition"); data != nil {
		t.Error("Board still present after delete")
	}
	if data, _ := store.LoadBoard("ada", "division"); string(data) != "d" {
		t.Error("Deleting one mode affected another")
	}
}

func TestListBoardsOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, mode := range []string{"subtraction", "addition", "division"} {
		store.SaveBoard("ada", mode, []byte(mode))
	}

	entries, err := store.ListBoards("ada")
	if err != nil {
		t.Fatalf("ListBoards() failed: %v", err)
	}
	want := []string{"addition", "division", "subtraction"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d boards, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Mode != want[i] || string(e.Data) != want[i] {
			t.Errorf("entries[%d] = %s/%q, want %s", i, e.Mode, e.Data, want[i])
		}
		if e.UpdatedAt.IsZero() {
			t.Errorf("entries[%d] has no update time", i)
		}
	}
}

// The engine should resume a board saved through SQLite.
func TestEngineWithSQLite(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	newEngine := func() *jungle.Engine {
		return jungle.NewEngine(jungle.Options{
			UserID: "ada",
			Store:  store,
			Seed:   99,
			Now:    func() time.Time { return now },
		})
	}

	e := newEngine()
	if _, err := e.SelectMode("addition"); err != nil {
		t.Fatalf("SelectMode() failed: %v", err)
	}
	e.Execute(jungle.Command{Kind: jungle.CmdForward})
	res, err := e.Submit("3")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if res.Outcome != jungle.OutcomeCorrect {
		t.Fatalf("Expected a correct answer, got %s", res.Outcome)
	}
	score := e.Session().Score()
	if err := e.Exit(); err != nil {
		t.Fatalf("Exit() failed: %v", err)
	}

	e = newEngine()
	res, err = e.SelectMode("addition")
	if err != nil {
		t.Fatalf("SelectMode() failed: %v", err)
	}
	snap, _ := e.Snapshot()
	if snap.Score != score {
		t.Errorf("Expected resumed score %d, got %d", score, snap.Score)
	}
	if c, _ := snap.CellAt(1, 0); c.Grass != 50 {
		t.Errorf("Expected grass 50 at (1,0), got %v", c.Grass)
	}

	top, err := store.TopScores("addition", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != score || top[0].UserID != "ada" {
		t.Errorf("Expected one leaderboard entry of %d for ada, got %+v", score, top)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("addition", "ada", s, 60); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("division", "ada", 500, 60); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("addition", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	divScores, err := store.TopScores("division", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(divScores) != 1 {
		t.Errorf("Expected 1 division score, got %d", len(divScores))
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("addition", "ada", (i+1)*100, 0)
	}
	store.SaveScore("addition", "slow", 500, 900)
	store.SaveScore("addition", "fast", 500, 30)

	scores, err := store.TopScores("addition", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].UserID != "ada" || scores[1].UserID != "fast" || scores[2].UserID != "slow" {
		t.Errorf("Ties should be broken by elapsed time: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("addition")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("addition", "ada", 100, 0)
	store.SaveScore("addition", "ada", 300, 0)
	store.SaveScore("addition", "ada", 200, 0)

	high, err = store.HighScore("addition")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("addition", "ada", 100, 0)
	store.SaveScore("addition", "ada", 200, 0)
	store.SaveScore("division", "ada", 300, 0)

	if err := store.ClearScores("addition"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("addition", 10); len(scores) != 0 {
		t.Errorf("Expected 0 addition scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("division", 10); len(scores) != 1 {
		t.Errorf("Division scores should not be affected by clearing addition")
	}
}

func TestModeStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats("addition")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Sessions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("addition", "ada", 10, 60)
	store.SaveScore("addition", "bob", 30, 120)

	stats, err = store.GetModeStats("addition")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalSeconds != 180 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected a last played time")
	}
}
