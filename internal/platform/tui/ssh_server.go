package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/highscore"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bounce/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// HighScorePath is the high score file shared by all sessions.
	HighScorePath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Game carries the config path and difficulty preset for every game.
	// Its keeper and logger are replaced by the server's own.
	Game registry.Env
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:       ":23234",
		DBPath:        storage.DefaultPath,
		HighScorePath: highscore.DefaultPath,
		IdleTimeout:   30 * time.Minute,
		TickRate:      60,
	}
}

// SSHServer wraps a Wish SSH server for bounce.
// All sessions share one high score keeper and one run history.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	keeper *highscore.Keeper
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		keeper: highscore.Open(cfg.HighScorePath),
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".bounce", "host_key")
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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	logger := s.logger.With("user", sshSession.User())
	env := s.config.Game
	env.HighScores = s.keeper
	env.Logger = logger

	model := NewSessionModel(env, Options{Store: s.store, Logger: logger}, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "high_score", s.keeper.Best())

	// Setup signal handling for graceful shutdown
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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu -> game -> menu,
// with the run history reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	env       registry.Env
	opts      Options
	config    core.RuntimeConfig
	current   sessionScreen
	menu      MenuModel
	gameModel *GameModel
	history   *HistoryModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env registry.Env, opts Options, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
// The menu's own tea.Quit is swallowed; the session decides when to quit.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		hm := NewHistoryModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.history = &hm
		m.current = screenHistory
		return m, hm.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID, m.env)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.menu = NewMenuModel(m.opts.Store, m.config)
			return m, nil
		}

		m.config.Seed = time.Now().UnixNano()
		gm := NewGameModel(game, m.opts, m.config)
		gm.inSession = true
		m.gameModel = &gm
		m.current = screenGame

		return m, m.gameModel.Init()
	}

	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateHistory handles updates when showing the run history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if hm, ok := newModel.(HistoryModel); ok {
		m.history = &hm
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.history = nil
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu shows a fresh menu, so per-variant bests are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
