package events

import "testing"

func TestChannelSinkDropsOldest(t *testing.T) {
	sink := NewChannelSink("a", 2)

	sink.Publish(LevelUnlockedEvent{ViewSize: 5})
	sink.Publish(LevelUnlockedEvent{ViewSize: 6})
	sink.Publish(LevelUnlockedEvent{ViewSize: 7})

	first := (<-sink.Events()).(LevelUnlockedEvent)
	second := (<-sink.Events()).(LevelUnlockedEvent)

	if first.ViewSize != 6 || second.ViewSize != 7 {
		t.Errorf("expected oldest event dropped, got %d then %d", first.ViewSize, second.ViewSize)
	}
}

func TestChannelSinkClosed(t *testing.T) {
	sink := NewChannelSink("a", 4)
	sink.Close()
	sink.Close() // idempotent

	sink.Publish(IllegalMoveEvent{})
	if len(sink.Events()) != 0 {
		t.Error("closed sink should not accept events")
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	a := NewChannelSink("a", 4)
	b := NewChannelSink("b", 4)
	hub.Subscribe(a)
	hub.Subscribe(b)

	if hub.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", hub.Count())
	}

	hub.Publish(BonusCollectedEvent{Row: 1, Col: 2, Points: 5})
	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Error("every subscriber should receive the event")
	}

	hub.Unsubscribe("a")
	select {
	case <-a.Done():
	default:
		t.Error("unsubscribed sink should be closed")
	}

	hub.Publish(IllegalMoveEvent{})
	if len(b.Events()) != 2 {
		t.Errorf("remaining subscriber should have 2 events, got %d", len(b.Events()))
	}
}

func TestWrap(t *testing.T) {
	env := Wrap(AnswerCorrectEvent{Row: 2, Col: 3, Points: 7})
	if env.Type != "answer-correct" {
		t.Errorf("Type = %q", env.Type)
	}
	if env.Message != "Correct! +7" {
		t.Errorf("Message = %q", env.Message)
	}
}
