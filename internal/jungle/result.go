package jungle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/jungle-drill/internal/events"
)

var (
	// ErrInvalidAnswer is returned for answers that are not non-negative integers.
	ErrInvalidAnswer = errors.New("jungle: invalid answer")
	// ErrUnknownCommand is returned by ParseCommand for unrecognized names.
	ErrUnknownCommand = errors.New("jungle: unknown command")
	// ErrNoSession is returned when a board command arrives before a mode is selected.
	ErrNoSession = errors.New("jungle: no active session")
)

// Outcome classifies the effect of a command.
type Outcome string

const (
	OutcomeStateUpdated   Outcome = "state-updated"
	OutcomeIllegalMove    Outcome = "illegal-move"
	OutcomeQuestionOpened Outcome = "question-opened"
	OutcomeCorrect        Outcome = "question-closed-correct"
	OutcomeIncorrect      Outcome = "question-closed-incorrect"
	OutcomeLevelUnlocked  Outcome = "level-unlocked"
	OutcomeNoOp           Outcome = "no-op"
)

// Mutated reports whether the outcome changed persisted board state.
// Incorrect answers are excluded: they stay pending until the question
// closes or the session is abandoned.
func (o Outcome) Mutated() bool {
	switch o {
	case OutcomeStateUpdated, OutcomeCorrect, OutcomeLevelUnlocked:
		return true
	default:
		return false
	}
}

// Result is what every command returns.
type Result struct {
	Outcome Outcome
	Events  []events.Event
}

func result(o Outcome, evts ...events.Event) Result {
	return Result{Outcome: o, Events: evts}
}

// CommandKind names a command on the engine surface.
type CommandKind int

const (
	CmdTurnLeft CommandKind = iota
	CmdTurnRight
	CmdForward
	CmdSubmitAnswer
	CmdSelectMode
	CmdResetBoard
	CmdTick
)

var commandNames = [...]string{
	CmdTurnLeft:     "turn-left",
	CmdTurnRight:    "turn-right",
	CmdForward:      "forward",
	CmdSubmitAnswer: "submit-answer",
	CmdSelectMode:   "select-mode",
	CmdResetBoard:   "reset-board",
	CmdTick:         "tick",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return fmt.Sprintf("command(%d)", int(k))
	}
	return commandNames[k]
}

// ParseCommand maps a wire name such as "turn-left" to its kind.
func ParseCommand(name string) (CommandKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range commandNames {
		if n == name {
			return CommandKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Command is one request to the engine. Answer is used by submit-answer,
// Mode by select-mode and reset-board.
type Command struct {
	Kind   CommandKind
	Answer int
	Mode   string
}

// ParseAnswer validates typed answer text. Only non-negative integers are
// accepted; everything else is rejected before it reaches the board.
func ParseAnswer(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAnswer)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAnswer, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidAnswer, v)
	}
	return v, nil
}
