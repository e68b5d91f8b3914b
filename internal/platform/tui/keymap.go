package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-drill/internal/core"
)

// GameKeyMap defines the key bindings on the board.
type GameKeyMap struct {
	TurnLeft  key.Binding
	TurnRight key.Binding
	Forward   key.Binding
	Submit    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.Forward, k.TurnRight, k.Submit, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight, k.Forward},
		{k.Submit, k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default board bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Forward: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "forward"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings in the mode menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Reset      key.Binding
	Confirm    key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Reset, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset board"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Game: DefaultGameKeyMap(), Menu: DefaultMenuKeyMap()}
}

// MapKey translates a key on the board. While answering, only submit, back
// and ctrl+c are actions; everything else belongs to the answer field.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, answering bool) core.Action {
	if msg.String() == "ctrl+c" {
		return core.ActionQuit
	}

	switch {
	case key.Matches(msg, km.Game.Submit):
		return core.ActionSubmit
	case key.Matches(msg, km.Game.Back):
		return core.ActionBack
	}
	if answering {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, km.Game.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, km.Game.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, km.Game.Forward):
		return core.ActionForward
	case key.Matches(msg, km.Game.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionReset
	MenuActionConfirm
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Reset):
		return MenuActionReset
	case key.Matches(msg, km.Menu.Confirm):
		return MenuActionConfirm
	case key.Matches(msg, km.Menu.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
