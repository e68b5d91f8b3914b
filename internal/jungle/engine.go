package jungle

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-drill/internal/events"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// Options configures an Engine. Zero values pick sensible defaults.
type Options struct {
	UserID    string
	Store     RecordStore
	Rules     Rules
	Seed      int64 // 0 = time-based board seeds
	Now       func() time.Time
	Logger    *log.Logger
	Publisher events.Publisher
}

// Engine is the per-user command surface. It owns the active session and
// saves boards through its store. Callers serialize access.
type Engine struct {
	userID    string
	store     RecordStore
	rules     Rules
	seed      int64
	now       func() time.Time
	logger    *log.Logger
	publisher events.Publisher

	session     *Session
	storageLost bool
}

// NewEngine builds an engine. A nil store means memory-only play.
// The store is used until its first failure.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		userID:    opts.UserID,
		store:     opts.Store,
		rules:     opts.Rules,
		seed:      opts.Seed,
		now:       opts.Now,
		logger:    opts.Logger,
		publisher: opts.Publisher,
	}
	if e.store == nil {
		e.store = NewMemoryStore()
	}
	if e.rules.BoardSize == 0 {
		e.rules = DefaultRules()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.publisher == nil {
		e.publisher = events.Discard
	}
	return e
}

// UserID returns the user this engine plays for.
func (e *Engine) UserID() string { return e.userID }

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules { return e.rules }

// Session returns the active session, or nil before a mode is selected.
func (e *Engine) Session() *Session { return e.session }

// StorageAvailable reports whether boards are still being saved.
func (e *Engine) StorageAvailable() bool { return !e.storageLost }

// Snapshot returns the active session's snapshot.
func (e *Engine) Snapshot() (Snapshot, error) {
	if e.session == nil {
		return Snapshot{}, ErrNoSession
	}
	return e.session.Snapshot(), nil
}

// SelectMode closes the current session and opens the board for mode,
// restoring the saved one when it exists and is valid.
func (e *Engine) SelectMode(mode string) (Result, error) {
	if !registry.Exists(mode) {
		return Result{}, unknownMode(mode)
	}
	e.closeSession()

	session, evt, err := e.openBoard(mode)
	if err != nil {
		return Result{}, err
	}
	e.session = session
	e.persist()

	res := result(OutcomeStateUpdated, evt)
	e.publish(res)
	return res, nil
}

// ResetBoard discards the saved board for mode and builds a fresh one. When
// mode is being played, the active session switches to the fresh board.
func (e *Engine) ResetBoard(mode string) (Result, error) {
	if !registry.Exists(mode) {
		return Result{}, unknownMode(mode)
	}

	if err := e.store.DeleteBoard(e.userID, mode); err != nil {
		e.loseStorage(err)
	}
	e.logger.Info("board reset", "user", e.userID, "mode", mode)

	if e.session == nil || e.session.Mode() != mode {
		return result(OutcomeStateUpdated), nil
	}

	board, err := BuildBoard(mode, e.boardSeed(), e.rules)
	if err != nil {
		return Result{}, err
	}
	e.session = NewSession(board, e.rules.StartViewSize, e.rules)
	e.persist()

	res := result(OutcomeStateUpdated, events.BoardRestoredEvent{
		Mode:       mode,
		ViewSize:   e.rules.StartViewSize,
		FreshBoard: true,
	})
	e.publish(res)
	return res, nil
}

// Execute dispatches a command. Board commands need an active session.
func (e *Engine) Execute(cmd Command) (Result, error) {
	switch cmd.Kind {
	case CmdSelectMode:
		return e.SelectMode(cmd.Mode)
	case CmdResetBoard:
		return e.ResetBoard(cmd.Mode)
	}

	if e.session == nil {
		return Result{}, ErrNoSession
	}

	var res Result
	switch cmd.Kind {
	case CmdTurnLeft:
		res = e.session.TurnLeft()
	case CmdTurnRight:
		res = e.session.TurnRight()
	case CmdForward:
		res = e.session.Forward()
	case CmdSubmitAnswer:
		if cmd.Answer < 0 {
			return Result{}, fmt.Errorf("%w: %d is negative", ErrInvalidAnswer, cmd.Answer)
		}
		res = e.session.SubmitAnswer(cmd.Answer)
	case CmdTick:
		if e.session.Tick() {
			return result(OutcomeStateUpdated), nil
		}
		return result(OutcomeNoOp), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownCommand, cmd.Kind)
	}

	// Turning only moves the player, which is not part of the saved board.
	if res.Outcome.Mutated() && cmd.Kind != CmdTurnLeft && cmd.Kind != CmdTurnRight {
		e.persist()
	}
	e.publish(res)
	return res, nil
}

// Submit parses typed answer text and submits it.
func (e *Engine) Submit(text string) (Result, error) {
	v, err := ParseAnswer(text)
	if err != nil {
		return Result{}, err
	}
	return e.Execute(Command{Kind: CmdSubmitAnswer, Answer: v})
}

// Tick advances the session clock when a session is active.
func (e *Engine) Tick() {
	if e.session != nil {
		e.session.Tick()
	}
}

// Exit closes the active session: an open question is abandoned, the board
// is saved and the final score goes to the leaderboard.
func (e *Engine) Exit() error {
	if e.session == nil {
		return nil
	}
	err := e.recordScore()
	e.closeSession()
	return err
}

func (e *Engine) closeSession() {
	if e.session == nil {
		return
	}
	e.session.Abandon()
	e.persist()
	e.session = nil
}

// openBoard restores the saved board for mode or builds a fresh one. A
// corrupt record is replaced, never fatal.
func (e *Engine) openBoard(mode string) (*Session, events.Event, error) {
	data, err := e.load(mode)
	if err == nil && data != nil {
		restored, rerr := Restore(data, mode, e.now(), e.rules)
		if rerr == nil {
			e.logger.Info("board restored", "user", e.userID, "mode", mode,
				"days_away", restored.DaysAway, "view", restored.ViewSize)
			return restored.Session(e.rules), events.BoardRestoredEvent{
				Mode:     mode,
				DaysAway: restored.DaysAway,
				ViewSize: restored.ViewSize,
			}, nil
		}
		e.logger.Warn("discarding corrupt board", "user", e.userID, "mode", mode, "err", rerr)
	}

	board, err := BuildBoard(mode, e.boardSeed(), e.rules)
	if err != nil {
		return nil, nil, err
	}
	return NewSession(board, e.rules.StartViewSize, e.rules), events.BoardRestoredEvent{
		Mode:       mode,
		ViewSize:   e.rules.StartViewSize,
		FreshBoard: true,
	}, nil
}

func (e *Engine) load(mode string) ([]byte, error) {
	data, err := e.store.LoadBoard(e.userID, mode)
	if err != nil {
		e.loseStorage(err)
		return nil, err
	}
	return data, nil
}

func (e *Engine) persist() {
	if e.session == nil {
		return
	}
	data, err := e.session.Encode(e.now())
	if err != nil {
		e.logger.Error("cannot encode board", "err", err)
		return
	}
	if err := e.store.SaveBoard(e.userID, e.session.Mode(), data); err != nil {
		e.loseStorage(err)
		//nolint:errcheck // MemoryStore never fails
		e.store.SaveBoard(e.userID, e.session.Mode(), data)
	}
}

func (e *Engine) recordScore() error {
	rec, ok := e.store.(ScoreRecorder)
	if !ok || e.storageLost {
		return nil
	}
	// An open question is abandoned on exit, so its penalties do not count.
	score := e.session.Score()
	if e.session.QuestionOpen() {
		score = e.session.open.scoreBefore
	}
	if score == 0 {
		return nil
	}
	if err := rec.RecordScore(e.userID, e.session.Mode(), score, e.session.Elapsed()); err != nil {
		return fmt.Errorf("jungle: cannot record score: %w", err)
	}
	return nil
}

// loseStorage switches to memory-only play: the failing store is never
// touched again and the loss is reported once.
func (e *Engine) loseStorage(err error) {
	if e.storageLost {
		return
	}
	e.storageLost = true
	e.store = NewMemoryStore()
	e.logger.Error("storage unavailable, continuing without saving", "user", e.userID, "err", err)
	e.publisher.Publish(events.StorageUnavailableEvent{Reason: err.Error()})
}

func (e *Engine) publish(res Result) {
	for _, evt := range res.Events {
		e.publisher.Publish(evt)
	}
}

func (e *Engine) boardSeed() int64 {
	if e.seed != 0 {
		return e.seed
	}
	return e.now().UnixNano()
}

// UnknownModeError carries the closest registered id, if any.
type UnknownModeError struct {
	Mode       string
	Suggestion string
}

func (e *UnknownModeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("jungle: unknown mode %q (did you mean %q?)", e.Mode, e.Suggestion)
	}
	return fmt.Sprintf("jungle: unknown mode %q", e.Mode)
}

func (e *UnknownModeError) Unwrap() error { return ErrUnknownMode }

func unknownMode(mode string) error {
	err := &UnknownModeError{Mode: mode}
	if s, ok := registry.Suggest(mode); ok {
		err.Suggestion = s
	}
	return err
}

// IsUnknownMode reports whether err is an unknown mode error.
func IsUnknownMode(err error) bool {
	return errors.Is(err, ErrUnknownMode)
}
