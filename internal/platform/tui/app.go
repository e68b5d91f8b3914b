package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/events"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

// Deps are the collaborators shared by every screen.
type Deps struct {
	Store  *storage.Store // nil = play without saving
	UserID string
	Rules  jungle.Rules
	Seed   int64
	Logger *log.Logger
}

// NewEngine builds the engine for one player along with the sink its events
// are published to.
func NewEngine(d Deps) (*jungle.Engine, *events.ChannelSink) {
	sink := events.NewChannelSink(events.SubscriberID(d.UserID), 16)
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := jungle.Options{
		UserID:    d.UserID,
		Rules:     d.Rules,
		Seed:      d.Seed,
		Logger:    logger,
		Publisher: sink,
	}
	if d.Store != nil {
		opts.Store = d.Store
	}
	return jungle.NewEngine(opts), sink
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScoreboard
)

// App manages the full flow: menu -> board -> menu, plus the scoreboard.
// It is the top-level model for local play and for SSH sessions.
type App struct {
	deps     Deps
	config   core.RuntimeConfig
	engine   *jungle.Engine
	sink     *events.ChannelSink
	screen   screen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	gen      int
	direct   bool // started straight on a board; leaving it quits
	quitting bool
	err      error
}

// NewApp creates the app on the mode menu.
func NewApp(d Deps, engine *jungle.Engine, sink *events.ChannelSink, cfg core.RuntimeConfig) App {
	return App{
		deps:   d,
		config: cfg,
		engine: engine,
		sink:   sink,
		menu:   NewMenuModel(d.Store, d.UserID, engine.Rules(), cfg),
	}
}

// NewBoardApp creates the app directly on mode's board.
func NewBoardApp(d Deps, engine *jungle.Engine, sink *events.ChannelSink, cfg core.RuntimeConfig, mode string) (App, error) {
	a := NewApp(d, engine, sink, cfg)
	if _, err := engine.SelectMode(mode); err != nil {
		return a, err
	}
	a.direct = true
	a.enterGame()
	return a, nil
}

// Init initializes the current screen.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame {
		return a.game.Init()
	}
	return a.menu.Init()
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenScoreboard:
		return a.updateScoreboard(msg)
	default:
		return a.updateMenu(msg)
	}
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		a.menu = mm
	}

	switch {
	case a.menu.IsQuitting():
		return a.quit()

	case a.menu.ResetRequested() != "":
		mode := a.menu.ResetRequested()
		if _, err := a.engine.ResetBoard(mode); err != nil {
			a.logger().Error("cannot reset board", "mode", mode, "err", err)
		}
		a.menu = NewMenuModel(a.deps.Store, a.deps.UserID, a.engine.Rules(), a.config).WithCursor(mode)
		return a, nil

	case a.menu.WantsScoreboard():
		a.scores = NewScoreboardModel(a.deps.Store, a.config.ScreenW, a.config.ScreenH)
		a.screen = screenScoreboard
		return a, a.scores.Init()

	case a.menu.Selected() != nil:
		mode := a.menu.Selected().Mode
		if _, err := a.engine.SelectMode(mode); err != nil {
			a.logger().Error("cannot open board", "mode", mode, "err", err)
			a.menu = NewMenuModel(a.deps.Store, a.deps.UserID, a.engine.Rules(), a.config)
			return a, nil
		}
		a.enterGame()
		return a, a.game.Init()
	}

	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		a.game = gm
	}

	switch {
	case a.game.IsQuitting():
		return a.quit()

	case a.game.BackToMenu():
		mode := ""
		if s := a.engine.Session(); s != nil {
			mode = s.Mode()
		}
		a.exitBoard()
		if a.direct {
			return a.quit()
		}
		a.menu = NewMenuModel(a.deps.Store, a.deps.UserID, a.engine.Rules(), a.config).WithCursor(mode)
		a.screen = screenMenu
		return a, a.menu.Init()
	}

	return a, cmd
}

func (a App) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		a.scores = sm
	}

	switch {
	case a.scores.IsQuitting():
		return a.quit()
	case a.scores.IsGoingBack():
		a.menu = NewMenuModel(a.deps.Store, a.deps.UserID, a.engine.Rules(), a.config)
		a.screen = screenMenu
		return a, nil
	}
	return a, cmd
}

func (a *App) enterGame() {
	a.gen++
	a.game = NewGameModel(a.engine, a.sink, a.config, a.gen)
	a.screen = screenGame
}

// exitBoard saves the board and records the session score.
func (a *App) exitBoard() {
	if err := a.engine.Exit(); err != nil {
		a.logger().Error("cannot record score", "err", err)
		a.err = err
	}
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.exitBoard()
	a.quitting = true
	return a, tea.Quit
}

func (a App) logger() *log.Logger {
	if a.deps.Logger != nil {
		return a.deps.Logger
	}
	return log.New(io.Discard)
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScoreboard:
		return a.scores.View()
	default:
		return a.menu.View()
	}
}

// Run starts the app in the terminal. An empty mode opens the menu.
func Run(d Deps, cfg core.RuntimeConfig, mode string) error {
	engine, sink := NewEngine(d)
	defer sink.Close()

	app := NewApp(d, engine, sink, cfg)
	if mode != "" {
		var err error
		if app, err = NewBoardApp(d, engine, sink, cfg, mode); err != nil {
			return err
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()

	// A killed program never reached quit(); save what is left.
	if exitErr := engine.Exit(); err == nil {
		err = exitErr
	}
	return err
}
