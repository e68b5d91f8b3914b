package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// ModeInfo describes one registered mode.
type ModeInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CommandRequest is the body of a command. Answer is the typed text for
// submit-answer; Mode is used by select-mode and reset-board.
type CommandRequest struct {
	Command string     `json:"command"`
	Answer  AnswerText `json:"answer,omitempty"`
	Mode    string     `json:"mode,omitempty"`
}

// AnswerText is an answer as typed. The body may carry it as a JSON string
// ("12") or a JSON number (12); either way it is parsed by jungle.ParseAnswer.
type AnswerText string

// UnmarshalJSON accepts a string or a number.
func (a *AnswerText) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = AnswerText(text)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a string or a number: %w", err)
	}
	*a = AnswerText(n.String())
	return nil
}

// CommandResponse reports a command's outcome with the resulting board.
type CommandResponse struct {
	Outcome  jungle.Outcome   `json:"outcome"`
	Events   []string         `json:"events,omitempty"`
	Snapshot *jungle.Snapshot `json:"snapshot,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ScoreResponse is one leaderboard row.
type ScoreResponse struct {
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Elapsed   int    `json:"elapsedSeconds"`
	CreatedAt string `json:"createdAt"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	var unknown *jungle.UnknownModeError
	switch {
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Suggestion: unknown.Suggestion})
	case errors.Is(err, jungle.ErrInvalidAnswer), errors.Is(err, jungle.ErrUnknownCommand):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, jungle.ErrNoSession):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// respond builds the response for a command result.
func respond(engine *jungle.Engine, res jungle.Result) CommandResponse {
	resp := CommandResponse{Outcome: res.Outcome}
	for _, evt := range res.Events {
		resp.Events = append(resp.Events, evt.Name())
	}
	if snap, err := engine.Snapshot(); err == nil {
		resp.Snapshot = &snap
	}
	return resp
}

// toCommand parses a request body into an engine command.
func toCommand(req CommandRequest) (jungle.Command, error) {
	kind, err := jungle.ParseCommand(req.Command)
	if err != nil {
		return jungle.Command{}, err
	}
	cmd := jungle.Command{Kind: kind, Mode: req.Mode}
	if kind == jungle.CmdSubmitAnswer {
		if cmd.Answer, err = jungle.ParseAnswer(string(req.Answer)); err != nil {
			return jungle.Command{}, err
		}
	}
	return cmd, nil
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	modes := registry.List()
	out := make([]ModeInfo, len(modes))
	for i, m := range modes {
		out[i] = ModeInfo{ID: m.ID, Title: m.Title}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	mode := mux.Vars(r)["mode"]
	if !registry.Exists(mode) {
		suggestion, _ := registry.Suggest(mode)
		writeError(w, &jungle.UnknownModeError{Mode: mode, Suggestion: suggestion})
		return
	}
	if s.config.Store == nil {
		writeJSON(w, http.StatusOK, []ScoreResponse{})
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := s.config.Store.TopScores(mode, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]ScoreResponse, len(entries))
	for i, e := range entries {
		out[i] = ScoreResponse{
			UserID:    e.UserID,
			Score:     e.Score,
			Elapsed:   e.Elapsed,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.run(w, vars["user"], jungle.Command{Kind: jungle.CmdSelectMode, Mode: vars["mode"]})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.run(w, vars["user"], jungle.Command{Kind: jungle.CmdResetBoard, Mode: vars["mode"]})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	cmd, err := toCommand(req)
	if err != nil {
		writeError(w, err)
		return
	}
	s.run(w, mux.Vars(r)["user"], cmd)
}

func (s *Server) run(w http.ResponseWriter, userID string, cmd jungle.Command) {
	p := s.player(userID)
	p.mu.Lock()
	defer p.mu.Unlock()

	res, err := p.engine.Execute(cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, respond(p.engine, res))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	p := s.player(mux.Vars(r)["user"])
	p.mu.Lock()
	defer p.mu.Unlock()

	snap, err := p.engine.Snapshot()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	p := s.player(mux.Vars(r)["user"])
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.engine.Exit(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
