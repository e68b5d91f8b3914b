package jungle

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/jungle-drill/internal/core"
)

// RecordVersion is written into every saved board.
const RecordVersion = 1

// ErrCorruptRecord is returned when a saved board fails to decode or validate.
var ErrCorruptRecord = errors.New("jungle: corrupt board record")

// Record is the persisted form of one (user, mode) board.
type Record struct {
	Version        int          `json:"version"`
	Mode           string       `json:"mode"`
	Cells          []CellRecord `json:"cells"`
	ViewSize       int          `json:"viewSize"`
	LastPlayed     string       `json:"lastPlayedTimestamp"`
	Score          int          `json:"score"`
	ElapsedSeconds int          `json:"elapsedSeconds"`
}

// CellRecord is the persisted form of a cell.
type CellRecord struct {
	Row            int           `json:"row"`
	Col            int           `json:"col"`
	GrassHeight    float64       `json:"grassHeight"`
	Question       core.Question `json:"question"`
	IsBonus        bool          `json:"isBonus"`
	BonusCollected bool          `json:"bonusCollected"`
	EverCleared    bool          `json:"everFullyCleared"`
	Revealed       bool          `json:"revealed"`
}

// Encode serializes the session with lastPlayed set to now. An open
// question is saved as if it had never been opened.
func (s *Session) Encode(now time.Time) ([]byte, error) {
	board := s.board
	score := s.score
	if s.open != nil {
		board = board.Clone()
		board.At(s.open.target).Grass = s.open.grassBefore
		score = s.open.scoreBefore
	}

	rec := Record{
		Version:        RecordVersion,
		Mode:           board.Mode,
		Cells:          make([]CellRecord, 0, len(board.cells)),
		ViewSize:       s.viewSize,
		LastPlayed:     now.UTC().Format(time.RFC3339),
		Score:          score,
		ElapsedSeconds: s.elapsed,
	}
	for _, c := range board.cells {
		rec.Cells = append(rec.Cells, CellRecord{
			Row:            c.Row,
			Col:            c.Col,
			GrassHeight:    c.Grass,
			Question:       c.Question,
			IsBonus:        c.IsBonus,
			BonusCollected: c.BonusCollected,
			EverCleared:    c.EverCleared,
			Revealed:       c.Revealed,
		})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("jungle: cannot encode board: %w", err)
	}
	return data, nil
}

// Restored is a decoded and regrown board ready for a new session.
type Restored struct {
	Board      *Board
	ViewSize   int
	Score      int
	Elapsed    int
	LastPlayed time.Time
	DaysAway   int
}

// Session starts a session on the restored board.
func (r *Restored) Session(rules Rules) *Session {
	s := NewSession(r.Board, r.ViewSize, rules)
	s.resume(r.Score, r.Elapsed)
	return s
}

// DecodeRecord parses and validates a saved board without applying
// regrowth. Every failure wraps ErrCorruptRecord.
func DecodeRecord(data []byte, mode string, rules Rules) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if err := rec.validate(mode, rules); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return rec, nil
}

func (rec Record) validate(mode string, rules Rules) error {
	if rec.Version > RecordVersion {
		return fmt.Errorf("unsupported version %d", rec.Version)
	}
	if rec.Mode != "" && mode != "" && rec.Mode != mode {
		return fmt.Errorf("record is for mode %q, not %q", rec.Mode, mode)
	}

	size := rules.BoardSize
	if len(rec.Cells) != size*size {
		return fmt.Errorf("expected %d cells, got %d", size*size, len(rec.Cells))
	}
	if rec.ViewSize < rules.StartViewSize || rec.ViewSize > size {
		return fmt.Errorf("view size %d outside [%d, %d]", rec.ViewSize, rules.StartViewSize, size)
	}
	if _, err := time.Parse(time.RFC3339, rec.LastPlayed); err != nil {
		return fmt.Errorf("bad lastPlayedTimestamp: %w", err)
	}
	if rec.Score < 0 || rec.ElapsedSeconds < 0 {
		return errors.New("negative score or elapsed time")
	}

	seen := make(map[core.Point]bool, len(rec.Cells))
	bonuses := 0
	for _, c := range rec.Cells {
		p := core.P(c.Row, c.Col)
		if !p.Within(size) {
			return fmt.Errorf("cell (%d,%d) out of range", c.Row, c.Col)
		}
		if seen[p] {
			return fmt.Errorf("duplicate cell (%d,%d)", c.Row, c.Col)
		}
		seen[p] = true

		if math.IsNaN(c.GrassHeight) || c.GrassHeight < 0 || c.GrassHeight > rules.MaxGrass {
			return fmt.Errorf("cell (%d,%d) grass %v out of range", c.Row, c.Col, c.GrassHeight)
		}
		if c.Question.Operation == "" {
			return fmt.Errorf("cell (%d,%d) has no question", c.Row, c.Col)
		}
		if c.BonusCollected && !c.IsBonus {
			return fmt.Errorf("cell (%d,%d) collected a bonus it does not have", c.Row, c.Col)
		}
		if c.IsBonus {
			if c.Row == 0 && c.Col == 0 {
				return errors.New("start cell cannot be a bonus")
			}
			bonuses++
		}
	}
	if bonuses > rules.MaxBonusCells {
		return fmt.Errorf("%d bonus cells, at most %d allowed", bonuses, rules.MaxBonusCells)
	}
	return nil
}

// Restore decodes a saved board and applies offline regrowth for the whole
// days between its lastPlayed timestamp and now. Regrowth runs even for
// zero days so the offline cap always holds after a load.
func Restore(data []byte, mode string, now time.Time, rules Rules) (*Restored, error) {
	rec, err := DecodeRecord(data, mode, rules)
	if err != nil {
		return nil, err
	}
	last, _ := time.Parse(time.RFC3339, rec.LastPlayed)

	if mode == "" {
		mode = rec.Mode
	}
	board := &Board{Mode: mode, Size: rules.BoardSize, cells: make([]Cell, len(rec.Cells))}
	for _, c := range rec.Cells {
		board.cells[c.Row*board.Size+c.Col] = Cell{
			Row:            c.Row,
			Col:            c.Col,
			Grass:          c.GrassHeight,
			Question:       c.Question,
			IsBonus:        c.IsBonus,
			BonusCollected: c.BonusCollected,
			EverCleared:    c.EverCleared,
			Revealed:       c.Revealed,
		}
	}

	days := DaysBetween(last, now)
	rules.regrow(board, days)

	return &Restored{
		Board:      board,
		ViewSize:   rec.ViewSize,
		Score:      rec.Score,
		Elapsed:    rec.ElapsedSeconds,
		LastPlayed: last,
		DaysAway:   days,
	}, nil
}

// Summary is a short description of a saved board for menus.
type Summary struct {
	Mode            string
	ViewSize        int
	Score           int
	ElapsedSeconds  int
	ClearedFraction float64
	BonusesFound    int
	LastPlayed      time.Time
}

// Summarize decodes a saved board for display. No regrowth is applied.
func Summarize(data []byte, mode string, rules Rules) (Summary, error) {
	rec, err := DecodeRecord(data, mode, rules)
	if err != nil {
		return Summary{}, err
	}
	last, _ := time.Parse(time.RFC3339, rec.LastPlayed)

	sum := Summary{
		Mode:           rec.Mode,
		ViewSize:       rec.ViewSize,
		Score:          rec.Score,
		ElapsedSeconds: rec.ElapsedSeconds,
		LastPlayed:     last,
	}
	if sum.Mode == "" {
		sum.Mode = mode
	}

	inView, cleared := 0, 0
	for _, c := range rec.Cells {
		if c.BonusCollected {
			sum.BonusesFound++
		}
		if c.Row < rec.ViewSize && c.Col < rec.ViewSize {
			inView++
			if c.GrassHeight < rules.InitialGrass {
				cleared++
			}
		}
	}
	if inView > 0 {
		sum.ClearedFraction = float64(cleared) / float64(inView)
	}
	return sum, nil
}
