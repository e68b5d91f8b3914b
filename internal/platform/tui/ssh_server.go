package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/jungle"
	"github.com/vovakirdan/jungle-drill/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.jungle/host_key.
	HostKeyPath string

	// DBPath is the path to the boards database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Rules jungle.Rules
	Seed  int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.jungle/jungle.db",
		IdleTimeout: 30 * time.Minute,
		Rules:       jungle.DefaultRules(),
	}
}

// SSHServer serves the jungle to remote terminals. Every SSH user gets their
// own boards, keyed by the SSH user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu      sync.Mutex
	playing map[string]*jungle.Engine // SSH user -> engine; nil until the app starts
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "jungle-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open boards database, boards will not be saved", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		logger:  logger,
		playing: make(map[string]*jungle.Engine),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".jungle", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates the app for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	deps := Deps{
		Store:  s.store,
		UserID: sshSession.User(),
		Rules:  s.config.Rules,
		Seed:   s.config.Seed,
		Logger: s.logger.With("user", sshSession.User()),
	}
	engine, sink := NewEngine(deps)
	s.attach(sshSession.User(), engine)

	return NewApp(deps, engine, sink, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware logs SSH session events and saves the board of a
// connection that dropped mid-game. A user plays from one connection at a
// time; a second one is turned away so two engines never write the same
// boards.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		user := sshSession.User()
		if !s.claim(user) {
			s.logger.Warn("session refused, user already playing",
				"user", user,
				"remote", sshSession.RemoteAddr().String(),
			)
			wish.Fatalf(sshSession, "%s is already playing from another connection.\n", user)
			return
		}

		s.logger.Info("session started",
			"user", user,
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		if engine := s.release(user); engine != nil {
			if err := engine.Exit(); err != nil {
				s.logger.Error("cannot close board", "user", user, "error", err)
			}
		}
		s.logger.Info("session ended",
			"user", user,
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// claim marks user as playing. It reports false when user already is.
func (s *SSHServer) claim(user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.playing[user]; busy {
		return false
	}
	s.playing[user] = nil
	return true
}

// attach records the engine serving user's claimed connection.
func (s *SSHServer) attach(user string, engine *jungle.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing[user] = engine
}

// release frees user and returns the engine that served them, if any.
func (s *SSHServer) release(user string) *jungle.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	engine := s.playing[user]
	delete(s.playing, user)
	return engine
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
