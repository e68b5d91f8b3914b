package jungle

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/jungle-drill/internal/core"
)

var epoch = time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC)

func encode(t *testing.T, s *Session, at time.Time) []byte {
	t.Helper()
	data, err := s.Encode(at)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return data
}

func TestRecordRoundTrip(t *testing.T) {
	s := NewSession(newBoard(t, "division"), 4, DefaultRules())
	s.Board().At(core.P(1, 1)).Grass = 25
	for i := range s.board.cells {
		if s.board.cells[i].IsBonus {
			s.board.cells[i].BonusCollected = true
			break
		}
	}
	s.viewSize = 6
	s.score = 42
	s.elapsed = 300

	restored, err := Restore(encode(t, s, epoch), "division", epoch, DefaultRules())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.ViewSize != 6 || restored.Score != 42 || restored.Elapsed != 300 || restored.DaysAway != 0 {
		t.Errorf("restored = %+v", restored)
	}
	if !restored.LastPlayed.Equal(epoch) {
		t.Errorf("LastPlayed = %v, want %v", restored.LastPlayed, epoch)
	}

	want, got := s.Board().Cells(), restored.Board.Cells()
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("cell %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	resumed := restored.Session(DefaultRules())
	if resumed.Score() != 42 || resumed.Player().Pos != core.P(0, 0) || resumed.Player().Dir != core.South {
		t.Errorf("resumed session score=%d player=%+v", resumed.Score(), resumed.Player())
	}
}

func TestRecordFieldNames(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())

	var raw map[string]any
	if err := json.Unmarshal(encode(t, s, epoch), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"version", "mode", "cells", "viewSize", "lastPlayedTimestamp"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("record lacks %q", key)
		}
	}
	if raw["lastPlayedTimestamp"] != "2026-05-10T18:30:00Z" {
		t.Errorf("lastPlayedTimestamp = %v", raw["lastPlayedTimestamp"])
	}

	cell := raw["cells"].([]any)[0].(map[string]any)
	for _, key := range []string{"row", "col", "grassHeight", "question", "isBonus", "bonusCollected", "everFullyCleared", "revealed"} {
		if _, ok := cell[key]; !ok {
			t.Errorf("cell record lacks %q", key)
		}
	}
	if q := cell["question"].(map[string]any); q["correctAnswer"] != float64(2) {
		t.Errorf("question = %v, want correctAnswer 2", q)
	}
}

// Scenario C: three days away regrows grass by 1.05^3.
func TestRestoreOfflineRegrowth(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	s.Board().At(core.P(1, 1)).Grass = 50
	s.Board().At(core.P(2, 2)).Grass = 144
	data := encode(t, s, epoch)

	restored, err := Restore(data, "addition", epoch.Add(3*24*time.Hour+time.Hour), DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if restored.DaysAway != 3 {
		t.Errorf("DaysAway = %d, want 3", restored.DaysAway)
	}
	if got := restored.Board.At(core.P(1, 1)).Grass; math.Abs(got-57.88125) > 1e-9 {
		t.Errorf("grass = %v, want 57.88125", got)
	}
	if got := restored.Board.At(core.P(2, 2)).Grass; got != 100 {
		t.Errorf("overgrown grass = %v, want capped at 100", got)
	}
	if got := restored.Board.At(core.P(0, 0)).Grass; got != 0 {
		t.Errorf("start cell grass = %v, want 0", got)
	}
}

func TestRestoreCapsOnSameDay(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	s.Board().At(core.P(1, 1)).Grass = 173

	restored, err := Restore(encode(t, s, epoch), "addition", epoch.Add(time.Hour), DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if got := restored.Board.At(core.P(1, 1)).Grass; got != 100 {
		t.Errorf("grass = %v, want 100", got)
	}
}

func TestEncodeWithOpenQuestionSavesCheckpoint(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	for i := range s.board.cells {
		s.board.cells[i].IsBonus = false
	}
	s.score = 5
	openAt(t, s, core.P(1, 0))
	s.SubmitAnswer(0)

	restored, err := Restore(encode(t, s, epoch), "addition", epoch, DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if got := restored.Board.At(core.P(1, 0)).Grass; got != 100 {
		t.Errorf("saved grass = %v, want pre-question 100", got)
	}
	if restored.Score != 5 {
		t.Errorf("saved score = %d, want 5", restored.Score)
	}
	if got := s.Board().At(core.P(1, 0)).Grass; got != 120 {
		t.Errorf("live grass = %v, Encode must not touch the session", got)
	}
}

func TestRestoreCorrupt(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	valid := encode(t, s, epoch)

	mutate := func(fn func(*Record)) []byte {
		var rec Record
		if err := json.Unmarshal(valid, &rec); err != nil {
			t.Fatal(err)
		}
		fn(&rec)
		data, err := json.Marshal(rec)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	tests := []struct {
		name string
		data []byte
		mode string
	}{
		{"not json", []byte("{grass"), "addition"},
		{"empty object", []byte("{}"), "addition"},
		{"missing cells", mutate(func(r *Record) { r.Cells = r.Cells[:99] }), "addition"},
		{"duplicate cell", mutate(func(r *Record) { r.Cells[1] = r.Cells[0] }), "addition"},
		{"out of range", mutate(func(r *Record) { r.Cells[5].Col = 10 }), "addition"},
		{"negative grass", mutate(func(r *Record) { r.Cells[5].GrassHeight = -1 }), "addition"},
		{"grass above max", mutate(func(r *Record) { r.Cells[5].GrassHeight = 201 }), "addition"},
		{"bonus on start", mutate(func(r *Record) { r.Cells[0].IsBonus = true }), "addition"},
		{"too many bonuses", mutate(func(r *Record) {
			for i := 1; i < 20; i++ {
				r.Cells[i].IsBonus = true
			}
		}), "addition"},
		{"collected without bonus", mutate(func(r *Record) {
			r.Cells[7].IsBonus = false
			r.Cells[7].BonusCollected = true
		}), "addition"},
		{"view too small", mutate(func(r *Record) { r.ViewSize = 3 }), "addition"},
		{"view too large", mutate(func(r *Record) { r.ViewSize = 11 }), "addition"},
		{"bad timestamp", mutate(func(r *Record) { r.LastPlayed = "yesterday" }), "addition"},
		{"future version", mutate(func(r *Record) { r.Version = RecordVersion + 1 }), "addition"},
		{"wrong mode", valid, "division"},
		{"missing question", mutate(func(r *Record) { r.Cells[3].Question = core.Question{} }), "addition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.data, tt.mode, epoch, DefaultRules())
			if !errors.Is(err, ErrCorruptRecord) {
				t.Errorf("err = %v, want ErrCorruptRecord", err)
			}
		})
	}
}

func TestRestoreAcceptsFractionalTimestamp(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	data := strings.Replace(string(encode(t, s, epoch)), "2026-05-10T18:30:00Z", "2026-05-10T18:30:00.123+02:00", 1)

	if _, err := Restore([]byte(data), "addition", epoch, DefaultRules()); err != nil {
		t.Errorf("Restore: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := NewSession(newBoard(t, "addition"), 4, DefaultRules())
	s.Board().At(core.P(1, 1)).Grass = 50
	s.Board().At(core.P(5, 5)).Grass = 0
	s.score = 9

	sum, err := Summarize(encode(t, s, epoch), "addition", DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Mode != "addition" || sum.ViewSize != 4 || sum.Score != 9 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.ClearedFraction != 2.0/16 {
		t.Errorf("ClearedFraction = %v, want 2/16", sum.ClearedFraction)
	}
}
