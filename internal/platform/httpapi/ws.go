package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/jungle-drill/internal/events"
)

// Envelope types sent besides engine events.
const (
	typeSnapshot = "snapshot"
	typeResult   = "result"
	typeError    = "error"
)

const writeWait = 10 * time.Second

// handleWebSocket streams the user's events and accepts command bodies.
// Every open connection for a user sees every event for that user.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user"]
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "user", userID, "error", err)
		return
	}
	defer conn.Close()

	p := s.player(userID)
	sink := events.NewChannelSink(events.SubscriberID(uuid.NewString()), 64)
	p.hub.Subscribe(sink)
	defer p.hub.Unsubscribe(sink.ID())

	s.logger.Info("websocket connected", "user", userID, "remote", r.RemoteAddr)
	defer s.logger.Info("websocket closed", "user", userID)

	p.mu.Lock()
	snap, snapErr := p.engine.Snapshot()
	p.mu.Unlock()
	if snapErr == nil {
		if err := write(conn, events.Envelope{Type: typeSnapshot, Payload: snap}); err != nil {
			return
		}
	}

	replies := make(chan events.Envelope, 16)
	done := make(chan struct{})
	defer close(done)
	go s.readCommands(conn, p, replies, done)

	for {
		select {
		case evt := <-sink.Events():
			if err := write(conn, events.Wrap(evt)); err != nil {
				return
			}
		case env, ok := <-replies:
			if !ok {
				return
			}
			if err := write(conn, env); err != nil {
				return
			}
		case <-sink.Done():
			return
		}
	}
}

// readCommands executes incoming commands until the connection fails, then
// closes replies. done is closed when the writer has stopped.
func (s *Server) readCommands(conn *websocket.Conn, p *player, replies chan<- events.Envelope, done <-chan struct{}) {
	defer close(replies)
	for {
		var req CommandRequest
		if err := conn.ReadJSON(&req); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				s.logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		select {
		case replies <- s.execute(p, req):
		case <-done:
			return
		}
	}
}

// execute runs one command body and wraps its reply.
func (s *Server) execute(p *player, req CommandRequest) events.Envelope {
	cmd, err := toCommand(req)
	if err != nil {
		return errorEnvelope(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	res, err := p.engine.Execute(cmd)
	if err != nil {
		return errorEnvelope(err)
	}
	resp := respond(p.engine, res)
	return events.Envelope{Type: typeResult, Message: string(resp.Outcome), Payload: resp}
}

func errorEnvelope(err error) events.Envelope {
	return events.Envelope{Type: typeError, Message: err.Error(), Payload: ErrorResponse{Error: err.Error()}}
}

func write(conn *websocket.Conn, env events.Envelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
