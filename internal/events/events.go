// Package events defines the transient notifications the drill engine emits
// for front ends (illegal move, bonus collected, level unlocked, answer
// feedback). They are display concerns only and carry no game state.
package events

import "fmt"

// Event is a transient notification from the engine.
type Event interface {
	// Name is the stable wire identifier of the event type.
	Name() string
	// Message is a short human-readable text for status lines.
	Message() string
}

// IllegalMoveEvent is sent when forward would leave the viewport.
type IllegalMoveEvent struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (IllegalMoveEvent) Name() string { return "illegal-move" }

func (e IllegalMoveEvent) Message() string {
	return "You can't go that way!"
}

// QuestionOpenedEvent is sent when the player bumps into grass.
type QuestionOpenedEvent struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Prompt string `json:"prompt"`
}

func (QuestionOpenedEvent) Name() string { return "question-opened" }

func (e QuestionOpenedEvent) Message() string {
	return fmt.Sprintf("Solve %s = ?", e.Prompt)
}

// AnswerCorrectEvent is sent when an open question is answered correctly.
type AnswerCorrectEvent struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Points int `json:"points"`
}

func (AnswerCorrectEvent) Name() string { return "answer-correct" }

func (e AnswerCorrectEvent) Message() string {
	return fmt.Sprintf("Correct! +%d", e.Points)
}

// AnswerIncorrectEvent is sent when an answer is wrong; the question stays open.
type AnswerIncorrectEvent struct {
	Row          int `json:"row"`
	Col          int `json:"col"`
	WrongAnswers int `json:"wrongAnswers"`
}

func (AnswerIncorrectEvent) Name() string { return "answer-incorrect" }

func (e AnswerIncorrectEvent) Message() string {
	if e.WrongAnswers > 1 {
		return fmt.Sprintf("Not quite (%d tries). The grass grows back...", e.WrongAnswers)
	}
	return "Not quite. The grass grows back..."
}

// BonusCollectedEvent is sent when a bonus cell pays out.
type BonusCollectedEvent struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Points int `json:"points"`
}

func (BonusCollectedEvent) Name() string { return "bonus-collected" }

func (e BonusCollectedEvent) Message() string {
	return fmt.Sprintf("Bonus found! +%d", e.Points)
}

// LevelUnlockedEvent is sent when the viewport grows.
type LevelUnlockedEvent struct {
	ViewSize int `json:"viewSize"`
}

func (LevelUnlockedEvent) Name() string { return "level-unlocked" }

func (e LevelUnlockedEvent) Message() string {
	return fmt.Sprintf("New area unlocked: %dx%d", e.ViewSize, e.ViewSize)
}

// BoardRestoredEvent is sent when a saved board was resumed.
type BoardRestoredEvent struct {
	Mode       string `json:"mode"`
	DaysAway   int    `json:"daysAway"`
	ViewSize   int    `json:"viewSize"`
	FreshBoard bool   `json:"freshBoard"`
}

func (BoardRestoredEvent) Name() string { return "board-restored" }

func (e BoardRestoredEvent) Message() string {
	switch {
	case e.FreshBoard:
		return "A fresh jungle awaits."
	case e.DaysAway == 1:
		return "Welcome back! The grass grew a little overnight."
	case e.DaysAway > 1:
		return fmt.Sprintf("Welcome back! %d days of regrowth.", e.DaysAway)
	default:
		return "Welcome back!"
	}
}

// StorageUnavailableEvent is sent once when persistence is lost.
type StorageUnavailableEvent struct {
	Reason string `json:"reason"`
}

func (StorageUnavailableEvent) Name() string { return "storage-unavailable" }

func (e StorageUnavailableEvent) Message() string {
	return "Progress can't be saved right now; playing without saving."
}

// Envelope is the wire form of an event.
type Envelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// Wrap builds the wire envelope for an event.
func Wrap(evt Event) Envelope {
	return Envelope{Type: evt.Name(), Message: evt.Message(), Payload: evt}
}
