package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/events"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// GameModel plays the engine's active board.
type GameModel struct {
	engine     *jungle.Engine
	sink       *events.ChannelSink
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	answer     textinput.Model
	help       help.Model
	status     string
	statusErr  bool
	showHelp   bool
	gen        int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the engine's active session. sink is the
// publisher the engine was built with; its events feed the status line.
func NewGameModel(engine *jungle.Engine, sink *events.ChannelSink, cfg core.RuntimeConfig, gen int) GameModel {
	ti := textinput.New()
	ti.Prompt = "= "
	ti.Placeholder = "?"
	ti.CharLimit = 6
	ti.Width = 8

	m := GameModel{
		engine:    engine,
		sink:      sink,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		answer:    ti,
		help:      help.New(),
		gen:       gen,
	}
	m.drainEvents()
	return m
}

// Init starts the elapsed-time clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		m.engine.Tick()
		m.drainEvents()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	return m, nil
}

func (m GameModel) answering() bool {
	s := m.engine.Session()
	return s != nil && s.QuestionOpen()
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" && !m.answering() {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		if s := m.engine.Session(); s != nil {
			s.SetModal(m.showHelp)
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(msg, m.answering())
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionTurnLeft:
		m.run(jungle.Command{Kind: jungle.CmdTurnLeft})
	case core.ActionTurnRight:
		m.run(jungle.Command{Kind: jungle.CmdTurnRight})
	case core.ActionForward:
		return m.forward()

	case core.ActionSubmit:
		return m.submit()

	case core.ActionNone:
		if m.answering() {
			if msg.Type == tea.KeyRunes && strings.Trim(string(msg.Runes), "0123456789") != "" {
				return m, nil
			}
			var cmd tea.Cmd
			m.answer, cmd = m.answer.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m GameModel) forward() (tea.Model, tea.Cmd) {
	res := m.run(jungle.Command{Kind: jungle.CmdForward})
	if res.Outcome == jungle.OutcomeQuestionOpened {
		m.answer.SetValue("")
		return m, m.answer.Focus()
	}
	return m, nil
}

func (m GameModel) submit() (tea.Model, tea.Cmd) {
	if !m.answering() {
		return m, nil
	}

	res, err := m.engine.Submit(m.answer.Value())
	m.answer.SetValue("")
	if err != nil {
		m.status = err.Error()
		if errors.Is(err, jungle.ErrInvalidAnswer) {
			m.status = "Type a whole number, then press enter."
		}
		m.statusErr = true
		return m, nil
	}
	m.drainEvents()

	if res.Outcome != jungle.OutcomeIncorrect {
		m.answer.Blur()
	}
	return m, nil
}

func (m *GameModel) run(cmd jungle.Command) jungle.Result {
	res, err := m.engine.Execute(cmd)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return res
	}
	m.drainEvents()
	return res
}

// drainEvents shows the newest pending event on the status line.
func (m *GameModel) drainEvents() {
	if m.sink == nil {
		return
	}
	for {
		select {
		case evt := <-m.sink.Events():
			m.status = evt.Message()
			_, m.statusErr = evt.(events.IllegalMoveEvent)
			if _, lost := evt.(events.StorageUnavailableEvent); lost {
				m.statusErr = true
			}
		default:
			return
		}
	}
}

// View renders the board with its side panel.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	snap, err := m.engine.Snapshot()
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	right := []string{renderStats(snap, registry.Title(snap.Mode))}
	if snap.Question != nil {
		box := []string{
			titleStyle.Render(snap.Question.Prompt + " = ?"),
			m.answer.View(),
		}
		if snap.Question.WrongAnswers > 0 {
			box = append(box, dimStyle.Render("tries: ")+errorStyle.Render(strings.Repeat("✗", snap.Question.WrongAnswers)))
		}
		right = append(right, panelStyle.Render(strings.Join(box, "\n")))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderBoard(snap),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)

	status := dimStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Game))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
