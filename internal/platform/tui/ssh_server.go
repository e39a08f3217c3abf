package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// SSHServerConfig configures the arcade SSH server.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath is generated on first start when missing. Empty means
	// ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is where every session's games are recorded. When the
	// database cannot be opened the server still runs, without recording.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int

	Logger *log.Logger
}

// DefaultSSHServerConfig returns the settings `arcade serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/replays.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the arcade over SSH: each connection with a PTY gets its
// own SessionModel.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the host key directory, opens the replay store and
// builds the Wish server. Nothing listens until ListenAndServe.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "arcade-ssh"})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: cfg.Logger}
	if store, err := storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("replay database unavailable, games will not be recorded", "path", cfg.DBPath, "error", err)
	} else {
		s.store = store
	}

	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Last listed runs first.
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without a PTY", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
	}
	model := NewSessionModel(s.store, cfg, s.logger.With("user", sess.User()))
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		remote := sess.RemoteAddr().String()
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe accepts connections until ctx is cancelled, then shuts
// down, giving open sessions up to ten seconds to finish.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "recording", s.store != nil)

	errc := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		s.closeStore()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting connections and closes the replay store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.srv.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing replay database", "error", err)
	}
	s.store = nil
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string { return s.cfg.Address }
