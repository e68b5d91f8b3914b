package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/registry"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	Mode     string
	Title    string
	Progress *jungle.Summary // nil when the board was never played
	Best     int
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	notice         string
	confirmReset   bool
	quitting       bool
	selected       *MenuItem
	resetMode      string
	openScoreboard bool
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, userID string, rules jungle.Rules, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     loadMenuItems(store, userID, rules),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// loadMenuItems lists every mode with the user's saved progress.
func loadMenuItems(store *storage.Store, userID string, rules jungle.Rules) []MenuItem {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, m := range modes {
		items[i] = MenuItem{Mode: m.ID, Title: m.Title}
	}
	if store == nil {
		return items
	}

	saved := make(map[string]jungle.Summary)
	if boards, err := store.ListBoards(userID); err == nil {
		for _, b := range boards {
			if sum, err := jungle.Summarize(b.Data, b.Mode, rules); err == nil {
				saved[b.Mode] = sum
			}
		}
	}
	for i := range items {
		if sum, ok := saved[items[i].Mode]; ok {
			items[i].Progress = &sum
		}
		if best, err := store.HighScore(items[i].Mode); err == nil {
			items[i].Best = best
		}
	}
	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.confirmReset {
		m.confirmReset = false
		m.notice = ""
		if action == MenuActionConfirm && len(m.items) > 0 {
			m.resetMode = m.items[m.cursor].Mode
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionReset:
		if len(m.items) > 0 {
			m.confirmReset = true
			m.notice = fmt.Sprintf("Reset the %s board? Press y to confirm.", m.items[m.cursor].Title)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  J U N G L E   D R I L L  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Cut your way through the jungle, one answer at a time", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		progress := dimStyle.Render("new board")
		if p := item.Progress; p != nil {
			progress = fmt.Sprintf("%d×%d  %3.0f%%  score %d", p.ViewSize, p.ViewSize, p.ClearedFraction*100, p.Score)
		}
		best := ""
		if item.Best > 0 {
			best = dimStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}

		line := fmt.Sprintf("%s%-16s %s%s", cursor, item.Title, progress, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(errorStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.help.View(m.keyMapper.Menu), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// ResetRequested returns the mode whose board should be reset, if any.
func (m MenuModel) ResetRequested() string {
	return m.resetMode
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// WithCursor returns the menu with the given mode highlighted.
func (m MenuModel) WithCursor(mode string) MenuModel {
	for i, item := range m.items {
		if item.Mode == mode {
			m.cursor = i
		}
	}
	return m
}
