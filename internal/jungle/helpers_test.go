package jungle

import (
	"testing"

	"github.com/vovakirdan/jungle-drill/internal/core"
	_ "github.com/vovakirdan/jungle-drill/internal/modes"
)

const testSeed = 12345

func newBoard(t *testing.T, mode string) *Board {
	t.Helper()
	b, err := BuildBoard(mode, testSeed, DefaultRules())
	if err != nil {
		t.Fatalf("BuildBoard(%q): %v", mode, err)
	}
	return b
}

// plainSession returns a session on a board without bonuses.
func plainSession(t *testing.T, mode string) *Session {
	t.Helper()
	b := newBoard(t, mode)
	for i := range b.cells {
		b.cells[i].IsBonus = false
	}
	return NewSession(b, DefaultRules().StartViewSize, DefaultRules())
}

// openAt places the player next to target facing it and opens its question.
func openAt(t *testing.T, s *Session, target core.Point) {
	t.Helper()
	s.player = Player{Pos: target.Add(core.P(-1, 0)), Dir: core.South}
	if target.Row == 0 {
		s.player = Player{Pos: target.Add(core.P(0, -1)), Dir: core.East}
	}
	res := s.Forward()
	if res.Outcome != OutcomeQuestionOpened {
		t.Fatalf("Forward to %v: outcome %s, want %s", target, res.Outcome, OutcomeQuestionOpened)
	}
}
