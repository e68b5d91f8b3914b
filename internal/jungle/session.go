package jungle

import (
	"github.com/vovakirdan/jungle-drill/internal/core"
)

// Player is the explorer's position and facing.
type Player struct {
	Pos core.Point
	Dir core.Direction
}

// openQuestion is the question currently bound to a target cell, plus the
// checkpoint taken when it opened.
type openQuestion struct {
	target      core.Point
	grassBefore float64
	scoreBefore int
}

// Session is one play-through of a board: the aggregate that owns the
// board, player, score and timers. Only its command methods mutate it.
type Session struct {
	rules        Rules
	board        *Board
	viewSize     int
	player       Player
	score        int
	elapsed      int
	open         *openQuestion
	wrongAnswers int
	modal        bool
}

// NewSession starts a session on board with the player at the start cell
// facing south.
func NewSession(board *Board, viewSize int, rules Rules) *Session {
	return &Session{
		rules:    rules,
		board:    board,
		viewSize: core.Clamp(viewSize, rules.StartViewSize, board.Size),
		player:   Player{Pos: core.P(0, 0), Dir: core.South},
	}
}

// resume carries the running totals of a restored board.
func (s *Session) resume(score, elapsed int) {
	s.score = max(0, score)
	s.elapsed = max(0, elapsed)
}

func (s *Session) Mode() string      { return s.board.Mode }
func (s *Session) Board() *Board     { return s.board }
func (s *Session) ViewSize() int     { return s.viewSize }
func (s *Session) Player() Player    { return s.player }
func (s *Session) Score() int        { return s.score }
func (s *Session) Elapsed() int      { return s.elapsed }
func (s *Session) WrongAnswers() int { return s.wrongAnswers }
func (s *Session) Rules() Rules      { return s.rules }

// QuestionOpen reports whether the player is currently answering.
func (s *Session) QuestionOpen() bool {
	return s.open != nil
}

// OpenCell returns the cell the open question belongs to.
func (s *Session) OpenCell() (Cell, bool) {
	if s.open == nil {
		return Cell{}, false
	}
	return *s.board.At(s.open.target), true
}

// SetModal pauses the elapsed clock while an external dialog is shown.
func (s *Session) SetModal(open bool) {
	s.modal = open
}

// Tick advances the elapsed clock by one second. Time spent answering or
// inside a modal does not count. It reports whether the clock moved.
func (s *Session) Tick() bool {
	if s.open != nil || s.modal {
		return false
	}
	s.elapsed++
	return true
}

// Abandon closes an open question as if it had never been opened: the
// cell's grass and the score return to their values at open time. Wrong
// answers given in between are discarded.
func (s *Session) Abandon() bool {
	if s.open == nil {
		return false
	}
	cell := s.board.At(s.open.target)
	cell.Grass = s.open.grassBefore
	s.score = s.open.scoreBefore
	s.open = nil
	s.wrongAnswers = 0
	return true
}

// Cleared returns how many viewport cells are below initial height.
func (s *Session) Cleared() float64 {
	return s.rules.ClearedFraction(s.board, s.viewSize)
}
