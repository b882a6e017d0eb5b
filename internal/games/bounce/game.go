// Package bounce implements the paddle-and-ball game: one or more balls
// fall through a walled field, the player keeps them in play with a paddle,
// and every paddle hit scores a point and makes the game a little harder.
package bounce

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

// Phase is the game loop state.
type Phase int

const (
	StatePlaying    Phase = iota // Simulation running
	StateGameOver                // No lives left, waiting for restart or quit
	StateTerminated              // Player left; the platform should stop
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Minimum terminal size the field can be drawn in.
const (
	minScreenW = 30
	minScreenH = 12
)

// Game implements the bounce game logic.
type Game struct {
	variant config.Variant
	env     registry.Env
	cfg     config.BounceConfig

	// Game objects
	paddle     *Paddle
	balls      []*Ball
	difficulty *Difficulty
	bounds     Bounds

	// Game state
	phase     Phase
	score     int
	lives     int
	highScore int
	newHigh   bool // Last game over set a new best
	tickCount int

	runtime        core.RuntimeConfig
	rng            *rand.Rand
	screenTooSmall bool
}

// New creates a game of the given variant. The config is resolved once
// here; a broken config file is logged and replaced by the built-in one.
func New(variant config.Variant, env registry.Env) *Game {
	env = env.WithDefaults()

	cfg, err := config.Load(variant, env.ConfigPath)
	if err != nil {
		env.Logger.Warn("using default config", "variant", variant, "error", err)
		cfg = config.DefaultBounceConfig(variant)
	}
	if env.Preset != "" {
		config.ApplyPreset(&cfg, env.Preset)
	}

	return &Game{
		variant:    variant,
		env:        env,
		cfg:        cfg,
		difficulty: NewDifficulty(cfg),
		bounds:     Bounds{Width: cfg.Field.Width, Height: cfg.Field.Height},
		runtime:    core.DefaultConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantClassic {
		return "bounce_classic"
	}
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Bounce (Classic)"
	}
	return "Bounce"
}

// Config returns the resolved game config.
func (g *Game) Config() config.BounceConfig {
	return g.cfg
}

// BounceCooldown returns the minimum time between two bounce sounds.
func (g *Game) BounceCooldown() time.Duration {
	return time.Duration(g.cfg.Audio.BounceCooldownMs) * time.Millisecond
}

// Reset initializes or restarts the game.
// The high score is re-read from the keeper and is never reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, not security
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.phase = StatePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.highScore = g.env.HighScores.Best()
	g.newHigh = false
	g.tickCount = 0

	pc := g.cfg.Paddle
	g.paddle = &Paddle{
		X:           pc.X,
		Y:           pc.Y,
		Width:       pc.Width,
		Height:      pc.Height,
		Speed:       pc.Speed,
		MinWidth:    pc.MinWidth,
		FieldWidth:  g.bounds.Width,
		FieldHeight: g.bounds.Height,
		Color:       core.ParseColor(pc.Color),
	}

	g.spawnBalls()
	g.difficulty.Reset(0)
}

// spawnBalls creates the starting balls. The first sits on the spawn point;
// extra balls are spread out sideways so they do not start overlapped.
func (g *Game) spawnBalls() {
	bc := g.cfg.Ball
	count := max(bc.Count, 1)

	g.balls = make([]*Ball, 0, count)
	for i := range count {
		b := &Ball{
			X:       bc.SpawnX,
			Y:       bc.SpawnY,
			Radius:  bc.Radius,
			Gravity: bc.Gravity,
			Color:   g.randomColor(),
		}

		if i == 0 {
			g.launch(b)
		} else {
			offset := 3 * bc.Radius * float64((i+1)/2)
			if i%2 == 0 {
				offset = -offset
			}
			b.X = core.ClampF(bc.SpawnX+offset, bc.Radius, g.bounds.Width-bc.Radius)
			b.DX = g.randomExtraSpeed()
			b.DY = g.randomExtraSpeed()
		}

		g.balls = append(g.balls, b)
	}
}

// launch puts a ball back on the spawn point with a random horizontal direction.
func (g *Game) launch(b *Ball) {
	bc := g.cfg.Ball
	b.X = bc.SpawnX
	b.Y = bc.SpawnY
	b.DX = bc.SpawnSpeedX
	if g.rng.Intn(2) == 0 {
		b.DX = -b.DX
	}
	b.DY = bc.SpawnSpeedY
}

func (g *Game) randomExtraSpeed() float64 {
	speeds := g.cfg.Ball.ExtraSpeeds
	if len(speeds) == 0 {
		return g.cfg.Ball.SpawnSpeedX
	}
	return speeds[g.rng.Intn(len(speeds))]
}

func (g *Game) randomColor() core.Color {
	colors := g.cfg.Ball.Colors
	if len(colors) == 0 {
		return core.ColorWhite
	}
	return core.ParseColor(colors[g.rng.Intn(len(colors))])
}

// Resize adapts to a new terminal size. The field is in world units,
// so only the too-small check changes.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Closing wins over everything else, in any phase
	if in.Has(core.ActionClose) {
		g.phase = StateTerminated
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case StateTerminated:
		return core.StepResult{State: g.State()}
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.env.Logger.Debug("restart", "game", g.ID())
			g.Reset(g.runtime)
		} else if in.Has(core.ActionQuit) {
			g.phase = StateTerminated
		}
		return core.StepResult{State: g.State()}
	}

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	var events []core.Event
	emit := func(kind core.EventKind) {
		events = append(events, core.Event{Kind: kind, Score: g.score})
	}

	g.updatePaddle(in)

	for _, b := range g.balls {
		contact := b.Advance(g.bounds)
		if contact.Wall() {
			emit(core.EventBounce)
		}

		if ResolvePaddle(b, g.paddle) {
			g.score, _ = g.difficulty.ScorePaddleHit(g.score, b, g.paddle)
			emit(core.EventBounce)
			continue
		}

		if contact.Floor {
			g.lives--
			emit(core.EventLifeLost)
			if g.lives <= 0 {
				g.lives = 0
				g.endGame(emit)
				return core.StepResult{State: g.State(), Events: events}
			}
			g.launch(b)
		}
	}

	resolveAllPairs(g.balls)
	g.difficulty.Tick(g.elapsed(), g.balls)

	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveRight()
	}
	if g.cfg.Paddle.StayBelowBalls {
		g.paddle.KeepBelow(g.balls)
	}
}

// endGame moves to game over and submits the score to the keeper.
// A failed write is logged; the in-memory best still moves up.
func (g *Game) endGame(emit func(core.EventKind)) {
	g.phase = StateGameOver
	emit(core.EventGameOver)

	improved, err := g.env.HighScores.Record(g.score)
	if err != nil {
		g.env.Logger.Warn("cannot save high score", "score", g.score, "error", err)
	}
	if improved {
		g.newHigh = true
		emit(core.EventNewHighScore)
	}
	g.highScore = max(g.highScore, g.env.HighScores.Best())

	g.env.Logger.Info("game over",
		"game", g.ID(),
		"score", g.score,
		"high_score", g.highScore,
		"ticks", g.tickCount,
	)
}

// elapsed returns simulated time since the last reset.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.tickCount) * time.Second / time.Duration(g.runtime.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Lives:      g.lives,
		HighScore:  g.highScore,
		GameOver:   g.lives == 0,
		Terminated: g.phase == StateTerminated,
	}
}

// Phase returns the game loop state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// NewHighScore reports whether the finished game set a new best.
func (g *Game) NewHighScore() bool {
	return g.newHigh
}

// Register the game variants with the registry
func init() {
	registry.Register("bounce", func(env registry.Env) registry.Game {
		return New(config.VariantGravity, env)
	})
	registry.Register("bounce_classic", func(env registry.Env) registry.Game {
		return New(config.VariantClassic, env)
	})
}
