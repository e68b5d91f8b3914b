// Package httpapi exposes the jungle engine over HTTP and WebSocket so a web
// front end can play the same boards as the terminal.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/jungle-drill/internal/events"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

// Config configures the API server.
type Config struct {
	Address string
	Store   *storage.Store // nil = boards live only as long as the server
	Rules   jungle.Rules
	Seed    int64
	Now     func() time.Time
	Logger  *log.Logger
}

// player is one user's engine plus the hub its events fan out through.
// mu serializes commands; the engine itself is not safe for concurrent use.
type player struct {
	mu     sync.Mutex
	engine *jungle.Engine
	hub    *events.Hub
}

// Server routes API requests to per-user engines.
type Server struct {
	config   Config
	logger   *log.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	http     *http.Server

	mu      sync.Mutex
	players map[string]*player
}

// NewServer builds the server and its routes.
func NewServer(cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.Rules.BoardSize == 0 {
		cfg.Rules = jungle.DefaultRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		config:  cfg,
		logger:  logger,
		players: make(map[string]*player),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/modes", s.handleModes).Methods(http.MethodGet)
	api.HandleFunc("/scores/{mode}", s.handleScores).Methods(http.MethodGet)
	api.HandleFunc("/{user}/modes/{mode}/select", s.handleSelect).Methods(http.MethodPost)
	api.HandleFunc("/{user}/modes/{mode}/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/{user}/commands", s.handleCommand).Methods(http.MethodPost)
	api.HandleFunc("/{user}/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/{user}/exit", s.handleExit).Methods(http.MethodPost)
	api.HandleFunc("/{user}/ws", s.handleWebSocket)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// player returns the engine for userID, creating it on first use.
func (s *Server) player(userID string) *player {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[userID]; ok {
		return p
	}

	hub := events.NewHub()
	opts := jungle.Options{
		UserID:    userID,
		Rules:     s.config.Rules,
		Seed:      s.config.Seed,
		Now:       s.config.Now,
		Logger:    s.logger.With("user", userID),
		Publisher: hub,
	}
	if s.config.Store != nil {
		opts.Store = s.config.Store
	}
	p := &player{engine: jungle.NewEngine(opts), hub: hub}
	s.players[userID] = p
	return p
}

// ListenAndServe serves until ctx is cancelled, then saves every open board.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", "address", s.config.Address)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.http.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close ends every open session, saving boards and recording scores.
func (s *Server) Close() {
	s.mu.Lock()
	players := make(map[string]*player, len(s.players))
	for id, p := range s.players {
		players[id] = p
	}
	s.mu.Unlock()

	for id, p := range players {
		p.mu.Lock()
		if err := p.engine.Exit(); err != nil {
			s.logger.Error("cannot close board", "user", id, "error", err)
		}
		p.mu.Unlock()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}
