package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-arcade/internal/audio"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

// Options carries the services shared by every game a process runs.
type Options struct {
	Store     *storage.Store // Nil disables run history
	Logger    *log.Logger    // Nil discards
	Bell      io.Writer      // Nil disables the terminal bell
	FixedSeed bool           // Restart with the configured seed instead of a fresh one
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Optional game capabilities the platform uses when present.
type (
	resizer interface {
		Resize(width, height int)
	}
	runReporter interface {
		Ticks() int
		NewHighScore() bool
	}
	cooldowner interface {
		BounceCooldown() time.Duration
	}
)

// GameModel is the Bubble Tea model running one game.
// Standalone it quits when the game ends; inside a session it hands
// control back to the menu instead.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	trigger   *audio.Trigger
	clock     func() time.Time

	held      heldKeys
	pending   core.InputFrame // Edge-triggered actions for the next tick
	gameState core.GameState

	inSession  bool
	runSaved   bool // Whether the current game over was stored
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. The game is reset in Init.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.logger()

	var cooldown time.Duration
	if c, ok := game.(cooldowner); ok {
		cooldown = c.BounceCooldown()
	}
	sinks := []audio.Sink{audio.NewLogSink(logger)}
	if opts.Bell != nil {
		sinks = append(sinks, audio.NewBellSink(opts.Bell))
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		trigger:   audio.NewTrigger(cooldown, sinks...),
		clock:     time.Now,
		pending:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inSession && m.gameState.GameOver && m.keyMapper.IsBack(msg) {
		m.backToMenu = true
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionClose:
		frame := core.NewInputFrame()
		frame.Set(core.ActionClose)
		m.gameState = m.game.Step(frame).State
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.held.press(action, m.clock())

	case core.ActionRestart, core.ActionQuit:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is in world units, so a resize only changes the scaling.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	now := m.clock()
	frame := m.pending
	m.pending = core.NewInputFrame()
	m.held.apply(&frame, now)

	// Restart with a fresh seed, unless runs should repeat
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.opts.FixedSeed {
			m.config.Seed = now.UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.held.release()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.trigger.FireAll(result.Events, now)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	if m.gameState.Terminated {
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished game. Failures are logged; play goes on.
func (m *GameModel) saveRun() {
	if m.opts.Store == nil {
		return
	}

	run := storage.Run{GameID: m.game.ID(), Score: m.gameState.Score}
	if r, ok := m.game.(runReporter); ok {
		run.Ticks = r.Ticks()
		run.NewHigh = r.NewHighScore()
	}

	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "game", run.GameID, "score", run.Score, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
