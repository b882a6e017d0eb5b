package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	Lives      int  // Remaining lives
	HighScore  int  // Best score known to the session
	GameOver   bool // Whether the game has ended
	Terminated bool // Whether the player asked to leave
}

// EventKind identifies a discrete side effect of a simulation tick.
type EventKind int

const (
	EventBounce       EventKind = iota // Ball hit a wall or the paddle
	EventLifeLost                      // Ball reached the floor
	EventGameOver                      // Last life lost
	EventNewHighScore                  // Game over with a new best score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for the presentation layer (sound, HUD flashes).
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// HighScoreKeeper tracks the best score across sessions.
// Implementations persist it; games only ever submit finished scores.
type HighScoreKeeper interface {
	// Best returns the best score recorded so far.
	Best() int
	// Record submits a finished score. It reports whether the score
	// became the new best; err is non-nil if persisting it failed.
	Record(score int) (improved bool, err error)
}

// MemoryKeeper is a HighScoreKeeper that never persists.
// Used when no high score file is configured, and in tests.
type MemoryKeeper struct {
	best int
}

// NewMemoryKeeper returns a keeper starting at best.
func NewMemoryKeeper(best int) *MemoryKeeper {
	return &MemoryKeeper{best: best}
}

// Best returns the best score.
func (k *MemoryKeeper) Best() int {
	return k.best
}

// Record keeps score if it beats the current best.
func (k *MemoryKeeper) Record(score int) (bool, error) {
	if score <= k.best {
		return false, nil
	}
	k.best = score
	return true, nil
}
