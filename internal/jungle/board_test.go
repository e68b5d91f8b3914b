package jungle

import (
	"errors"
	"testing"

	"github.com/vovakirdan/jungle-drill/internal/core"
)

func TestBuildBoard(t *testing.T) {
	b := newBoard(t, "multiplication")
	rules := DefaultRules()

	if b.Size != 10 || len(b.Cells()) != 100 {
		t.Fatalf("board size = %d with %d cells, want 10 with 100", b.Size, len(b.Cells()))
	}

	start := b.At(core.P(0, 0))
	if start.Grass != 0 || !start.Revealed || !start.EverCleared || start.IsBonus {
		t.Errorf("start cell = %+v, want cleared, revealed, no bonus", *start)
	}

	for _, c := range b.Cells() {
		if c.Row == 0 && c.Col == 0 {
			continue
		}
		if c.Grass != rules.InitialGrass {
			t.Errorf("cell (%d,%d) grass = %v, want %v", c.Row, c.Col, c.Grass, rules.InitialGrass)
		}
		if c.BonusCollected || c.Revealed || c.EverCleared {
			t.Errorf("cell (%d,%d) has flags set on a fresh board: %+v", c.Row, c.Col, c)
		}
		want := (c.Row + 1) * (c.Col + 1)
		if c.Question.Answer != want {
			t.Errorf("cell (%d,%d) answer = %d, want %d", c.Row, c.Col, c.Question.Answer, want)
		}
	}

	if got := b.BonusCount(); got != rules.MaxBonusCells {
		t.Errorf("BonusCount() = %d, want %d", got, rules.MaxBonusCells)
	}
}

func TestBuildBoardDeterministic(t *testing.T) {
	b1 := newBoard(t, "subtraction")
	b2 := newBoard(t, "subtraction")

	c1, c2 := b1.Cells(), b2.Cells()
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("cell %d differs between boards with the same seed: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestBuildBoardSeedsChangeBonuses(t *testing.T) {
	rules := DefaultRules()
	layouts := make(map[string]bool)
	for seed := int64(1); seed <= 5; seed++ {
		b, err := BuildBoard("addition", seed, rules)
		if err != nil {
			t.Fatal(err)
		}
		key := ""
		for _, c := range b.Cells() {
			if c.IsBonus {
				key += string(rune('a'+c.Row)) + string(rune('a'+c.Col))
			}
		}
		layouts[key] = true
	}
	if len(layouts) < 2 {
		t.Error("five seeds produced a single bonus layout")
	}
}

func TestBuildBoardFewerCellsThanBonuses(t *testing.T) {
	rules := DefaultRules()
	rules.BoardSize = 3
	rules.StartViewSize = 2

	b, err := BuildBoard("addition", 7, rules)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.BonusCount(); got != 8 {
		t.Errorf("BonusCount() = %d, want every non-start cell (8)", got)
	}
	if b.At(core.P(0, 0)).IsBonus {
		t.Error("start cell became a bonus")
	}
}

func TestBuildBoardUnknownMode(t *testing.T) {
	_, err := BuildBoard("modulo", 1, DefaultRules())
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestViewport(t *testing.T) {
	b := newBoard(t, "addition")

	view := b.Viewport(4)
	if len(view) != 16 {
		t.Fatalf("len(Viewport(4)) = %d, want 16", len(view))
	}
	for i, c := range view {
		if c.Row != i/4 || c.Col != i%4 {
			t.Errorf("view[%d] = (%d,%d), want (%d,%d)", i, c.Row, c.Col, i/4, i%4)
		}
	}

	view[5].Grass = 3
	if b.At(core.P(1, 1)).Grass == 3 {
		t.Error("Viewport returned cells sharing memory with the board")
	}

	if got := len(b.Viewport(20)); got != 100 {
		t.Errorf("len(Viewport(20)) = %d, want 100", got)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	b := newBoard(t, "addition")
	for _, p := range []core.Point{core.P(-1, 0), core.P(0, 10), core.P(10, 10)} {
		if b.At(p) != nil {
			t.Errorf("At(%v) != nil", p)
		}
	}
}
