package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	_ "github.com/vovakirdan/jungle-drill/internal/modes"
)

func TestRenderBoardDimensions(t *testing.T) {
	rules := jungle.DefaultRules()
	board, err := jungle.BuildBoard("addition", 1, rules)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	snap := jungle.NewSession(board, rules.StartViewSize, rules).Snapshot()

	lines := strings.Split(RenderBoard(snap), "\n")
	if len(lines) != rules.BoardSize {
		t.Fatalf("rendered %d rows, want %d", len(lines), rules.BoardSize)
	}
	if !strings.Contains(lines[0], facingGlyphs["S"]) {
		t.Error("first row does not show the player facing south")
	}
	if !strings.Contains(lines[rules.BoardSize-1], shadeGlyphs[core.ShadeHidden]) {
		t.Error("last row should be hidden outside the viewport")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 3600: "60:00"}
	for secs, want := range tests {
		if got := formatElapsed(secs); got != want {
			t.Errorf("formatElapsed(%d) = %q, want %q", secs, got, want)
		}
	}
}
