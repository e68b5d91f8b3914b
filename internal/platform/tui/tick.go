// Package tui provides the Bubble Tea front end for the jungle drill.
// It maps keys to engine commands and draws engine snapshots; all game state
// lives in the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per elapsed-time tick. Gen identifies the board
// visit that scheduled it, so ticks left over from an earlier visit are
// dropped instead of doubling the clock.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
