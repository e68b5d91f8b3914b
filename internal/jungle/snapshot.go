package jungle

import "github.com/vovakirdan/jungle-drill/internal/core"

// CellView is the read-only display form of a viewport cell.
// Answers are never exposed.
type CellView struct {
	Row            int        `json:"row"`
	Col            int        `json:"col"`
	Grass          float64    `json:"grassHeight"`
	Shade          core.Shade `json:"shade"`
	Prompt         string     `json:"prompt,omitempty"`
	IsBonus        bool       `json:"isBonus"`
	BonusCollected bool       `json:"bonusCollected"`
	EverCleared    bool       `json:"everFullyCleared"`
	Revealed       bool       `json:"revealed"`
}

// QuestionView describes the open question.
type QuestionView struct {
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	Prompt       string `json:"prompt"`
	WrongAnswers int    `json:"wrongAnswers"`
}

// Snapshot captures the visible session state for front ends and
// determinism tests.
type Snapshot struct {
	Mode            string        `json:"mode"`
	BoardSize       int           `json:"boardSize"`
	ViewSize        int           `json:"viewSize"`
	Cells           []CellView    `json:"cells"`
	Row             int           `json:"row"`
	Col             int           `json:"col"`
	Facing          string        `json:"facing"`
	Score           int           `json:"score"`
	ElapsedSeconds  int           `json:"elapsedSeconds"`
	ClearedFraction float64       `json:"clearedFraction"`
	Question        *QuestionView `json:"question,omitempty"`
}

// Snapshot returns a copy of the visible state. It shares nothing with the
// session.
func (s *Session) Snapshot() Snapshot {
	cells := s.board.Viewport(s.viewSize)
	views := make([]CellView, len(cells))
	for i, c := range cells {
		views[i] = CellView{
			Row:            c.Row,
			Col:            c.Col,
			Grass:          c.Grass,
			Shade:          core.ShadeForGrass(c.Grass),
			IsBonus:        c.IsBonus,
			BonusCollected: c.BonusCollected,
			EverCleared:    c.EverCleared,
			Revealed:       c.Revealed,
		}
		if c.Revealed {
			views[i].Prompt = c.Question.Prompt()
		}
	}

	snap := Snapshot{
		Mode:            s.board.Mode,
		BoardSize:       s.board.Size,
		ViewSize:        s.viewSize,
		Cells:           views,
		Row:             s.player.Pos.Row,
		Col:             s.player.Pos.Col,
		Facing:          s.player.Dir.String(),
		Score:           s.score,
		ElapsedSeconds:  s.elapsed,
		ClearedFraction: s.Cleared(),
	}
	if cell, ok := s.OpenCell(); ok {
		snap.Question = &QuestionView{
			Row:          cell.Row,
			Col:          cell.Col,
			Prompt:       cell.Question.Prompt(),
			WrongAnswers: s.wrongAnswers,
		}
	}
	return snap
}

// CellAt returns the viewport cell at (row, col) from the snapshot.
func (s Snapshot) CellAt(row, col int) (CellView, bool) {
	if row < 0 || col < 0 || row >= s.ViewSize || col >= s.ViewSize {
		return CellView{}, false
	}
	return s.Cells[row*s.ViewSize+col], true
}
