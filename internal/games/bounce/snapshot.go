package bounce

import (
	"math"
	"time"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Score     int
	Lives     int
	HighScore int

	PaddleX     float64
	PaddleY     float64
	PaddleWidth float64

	// Timed difficulty
	SpeedFactor float64
	LastSpeedup time.Duration

	// Each ball is 4 floats: X, Y, DX, DY
	BallCount int
	BallData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*4)
	for _, b := range g.balls {
		ballData = append(ballData, b.X, b.Y, b.DX, b.DY)
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:     int(g.phase),
		Score:     g.score,
		Lives:     g.lives,
		HighScore: g.highScore,

		PaddleX:     g.paddle.X,
		PaddleY:     g.paddle.Y,
		PaddleWidth: g.paddle.Width,

		SpeedFactor: g.difficulty.Factor(),
		LastSpeedup: g.difficulty.lastSpeedup,

		BallCount: len(g.balls),
		BallData:  ballData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Ball radius and gravity come from the config; colors are kept by index.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.phase = Phase(snap.Phase)
	g.score = snap.Score
	g.lives = snap.Lives
	g.highScore = snap.HighScore

	g.paddle.X = snap.PaddleX
	g.paddle.Y = snap.PaddleY
	g.paddle.Width = snap.PaddleWidth

	g.difficulty.factor = snap.SpeedFactor
	g.difficulty.lastSpeedup = snap.LastSpeedup

	bc := g.cfg.Ball
	old := g.balls
	g.balls = make([]*Ball, 0, snap.BallCount)
	for i := range snap.BallCount {
		idx := i * 4
		if idx+3 >= len(snap.BallData) {
			break
		}
		color := core.ColorWhite
		if i < len(old) {
			color = old[i].Color
		}
		g.balls = append(g.balls, &Ball{
			X:       snap.BallData[idx],
			Y:       snap.BallData[idx+1],
			DX:      snap.BallData[idx+2],
			DY:      snap.BallData[idx+3],
			Radius:  bc.Radius,
			Gravity: bc.Gravity,
			Color:   color,
		})
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + math.Float64bits(snap.SpeedFactor)
	h = h*31 + uint64(snap.LastSpeedup) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)   //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
