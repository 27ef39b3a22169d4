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
	"github.com/google/uuid"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/feedback"
	"github.com/vovakirdan/color-quest/internal/history"
	"github.com/vovakirdan/color-quest/internal/navigator"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.colorquest/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// HistoryKey is the prefix of every player's history key.
	HistoryKey string

	// HistoryLimit is how many records each history keeps.
	HistoryLimit int

	// Bell rings the remote terminal bell on answers.
	Bell bool

	// Navigator holds the gameplay options shared by every session.
	Navigator navigator.Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23235",
		IdleTimeout:  30 * time.Minute,
		HistoryKey:   history.DefaultKey,
		HistoryLimit: history.MaxRecords,
		Bell:         true,
	}
}

// SSHServer wraps a Wish SSH server serving one game per session.
// Every SSH user gets a separate history in the shared backend.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	backend history.Backend
	logger  *log.Logger

	mu     sync.Mutex
	stores map[string]*history.Store
}

// NewSSHServer creates a new SSH server storing histories in backend.
func NewSSHServer(cfg SSHServerConfig, backend history.Backend, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "colorquest-ssh",
		})
	}
	if cfg.HistoryKey == "" {
		cfg.HistoryKey = history.DefaultKey
	}

	srv := &SSHServer{
		config:  cfg,
		backend: backend,
		logger:  logger,
		stores:  make(map[string]*history.Store),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".colorquest", "host_key")
	}

	// Ensure host key directory exists
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
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// HistoryKey returns the storage key of user's history.
func HistoryKey(prefix, user string) string {
	if user == "" {
		return prefix
	}
	return prefix + ":" + user
}

// storeFor returns the shared history store of user, creating it once.
// Sessions of the same user share one store so their saves are serialized.
func (s *SSHServer) storeFor(user string) *history.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := HistoryKey(s.config.HistoryKey, user)
	if store, ok := s.stores[key]; ok {
		return store
	}
	store := history.New(s.backend,
		history.WithKey(key),
		history.WithLimit(s.config.HistoryLimit),
		history.WithLogger(s.logger),
	)
	s.stores[key] = store
	return store
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}

	opts := s.config.Navigator
	opts.Logger = s.logger.With("user", sshSession.User())
	opts.Announcer = feedback.Nop{}
	if s.config.Bell {
		opts.Announcer = feedback.NewBell(sshSession, opts.Logger)
	}

	model := NewModel(s.storeFor(sshSession.User()), cfg, opts)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		s.logger.Info("session started",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("cannot serve SSH: %w", err)
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
