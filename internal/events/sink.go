package events

import "sync"

// Publisher receives events from the engine.
type Publisher interface {
	Publish(evt Event)
}

// Discard is a Publisher that drops everything.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}

// SubscriberID identifies a subscriber on a Hub.
type SubscriberID string

// ChannelSink is a Publisher backed by a buffered channel.
// Used by transports to bridge engine events to their connections.
type ChannelSink struct {
	id       SubscriberID
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSink creates a new channel-based sink.
// bufferSize controls how many events can be buffered before dropping.
func NewChannelSink(id SubscriberID, bufferSize int) *ChannelSink {
	if bufferSize < 1 {
		bufferSize = 64 // Default buffer size
	}
	return &ChannelSink{
		id:     id,
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// ID returns the subscriber identifier.
func (s *ChannelSink) ID() SubscriberID {
	return s.id
}

// Publish queues an event without blocking.
// If the buffer is full, the oldest event is dropped.
func (s *ChannelSink) Publish(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// Done returns a channel that closes when the sink is closed.
func (s *ChannelSink) Done() <-chan struct{} {
	return s.done
}

// Close marks the sink as done.
// Safe to call multiple times.
func (s *ChannelSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Hub fans events out to every subscribed sink.
// Thread-safe for concurrent access.
type Hub struct {
	mu   sync.RWMutex
	subs map[SubscriberID]*ChannelSink
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[SubscriberID]*ChannelSink),
	}
}

// Subscribe adds a sink to the hub.
func (h *Hub) Subscribe(sink *ChannelSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[sink.ID()] = sink
}

// Unsubscribe removes and closes a sink.
func (h *Hub) Unsubscribe(id SubscriberID) {
	h.mu.Lock()
	sink, ok := h.subs[id]
	delete(h.subs, id)
	h.mu.Unlock()

	if ok {
		sink.Close()
	}
}

// Count returns the number of subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish delivers the event to all subscribers.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sink := range h.subs {
		sink.Publish(evt)
	}
}

var (
	_ Publisher = (*ChannelSink)(nil)
	_ Publisher = (*Hub)(nil)
)
