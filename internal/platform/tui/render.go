package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
)

// shadeStyles maps core.Shade to lipgloss styles.
var shadeStyles = map[core.Shade]lipgloss.Style{
	core.ShadeCleared:   lipgloss.NewStyle().Foreground(lipgloss.Color("137")).Background(lipgloss.Color("58")),
	core.ShadeSparse:    lipgloss.NewStyle().Foreground(lipgloss.Color("107")).Background(lipgloss.Color("58")),
	core.ShadeGrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Background(lipgloss.Color("22")),
	core.ShadeDense:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Background(lipgloss.Color("22")),
	core.ShadeOvergrown: lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("234")),
	core.ShadeHidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("233")),
}

// shadeGlyphs are the three-column fills for each shade.
var shadeGlyphs = map[core.Shade]string{
	core.ShadeCleared:   " · ",
	core.ShadeSparse:    "░░░",
	core.ShadeGrown:     "▒▒▒",
	core.ShadeDense:     "▓▓▓",
	core.ShadeOvergrown: "███",
	core.ShadeHidden:    " ▪ ",
}

var facingGlyphs = map[string]string{
	"N": " ▲ ",
	"E": " ▶ ",
	"S": " ▼ ",
	"W": " ◀ ",
}

var (
	playerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("58"))
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220"))
	bonusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)
)

// RenderBoard draws the whole board: the unlocked viewport in full and the
// locked remainder as hidden cells.
func RenderBoard(snap jungle.Snapshot) string {
	var sb strings.Builder
	for row := range snap.BoardSize {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range snap.BoardSize {
			sb.WriteString(renderCell(snap, row, col))
		}
	}
	return sb.String()
}

func renderCell(snap jungle.Snapshot, row, col int) string {
	cell, ok := snap.CellAt(row, col)
	if !ok {
		return shadeStyles[core.ShadeHidden].Render(shadeGlyphs[core.ShadeHidden])
	}

	base := shadeStyles[cell.Shade]
	switch {
	case row == snap.Row && col == snap.Col:
		return playerStyle.Render(facingGlyphs[snap.Facing])
	case snap.Question != nil && row == snap.Question.Row && col == snap.Question.Col:
		return questionStyle.Render(" ? ")
	case cell.IsBonus && cell.Revealed && !cell.BonusCollected:
		return bonusStyle.Inherit(base).Render(" $ ")
	}
	return base.Render(shadeGlyphs[cell.Shade])
}

// formatElapsed renders seconds as m:ss.
func formatElapsed(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderStats draws the side panel with the running totals.
func renderStats(snap jungle.Snapshot, title string) string {
	lines := []string{
		titleStyle.Render(title),
		"",
		fmt.Sprintf("Score    %d", snap.Score),
		fmt.Sprintf("Time     %s", formatElapsed(snap.ElapsedSeconds)),
		fmt.Sprintf("Area     %d×%d", snap.ViewSize, snap.ViewSize),
		fmt.Sprintf("Cleared  %.0f%%", snap.ClearedFraction*100),
		fmt.Sprintf("Facing   %s", snap.Facing),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
