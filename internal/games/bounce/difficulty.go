package bounce

import (
	"time"

	"github.com/vovakirdan/bounce-arcade/internal/config"
)

// Difficulty applies the two independent speedups: score milestones on
// paddle hits and a periodic global speedup on the simulation clock.
type Difficulty struct {
	scoring    config.ScoringConfig
	shrinkStep float64

	timed       bool
	interval    time.Duration
	multiplier  float64
	lastSpeedup time.Duration

	// factor is the product of all timed speedups so far (>= 1).
	factor float64
}

// NewDifficulty creates a controller from the game config.
func NewDifficulty(cfg config.BounceConfig) *Difficulty {
	return &Difficulty{
		scoring:    cfg.Scoring,
		shrinkStep: cfg.Paddle.ShrinkStep,
		timed:      cfg.Difficulty.Enabled,
		interval:   time.Duration(cfg.Difficulty.SpeedupIntervalMs) * time.Millisecond,
		multiplier: cfg.Difficulty.SpeedupMultiplier,
		factor:     1,
	}
}

// Reset restarts the speedup clock at now.
func (d *Difficulty) Reset(now time.Duration) {
	d.lastSpeedup = now
	d.factor = 1
}

// ScorePaddleHit adds a paddle hit to score. On every milestone score the
// ball that hit speeds up and the paddle shrinks by one step.
// Returns the new score and whether a milestone was reached.
func (d *Difficulty) ScorePaddleHit(score int, b *Ball, p *Paddle) (int, bool) {
	score += d.scoring.PointsPerHit

	every := d.scoring.MilestoneEvery
	if every <= 0 || score%every != 0 {
		return score, false
	}

	b.Scale(d.scoring.MilestoneSpeedup)
	p.Shrink(d.shrinkStep)
	return score, true
}

// Tick applies the timed speedup to all balls once more than one interval
// has passed since the last one. Returns true if it fired.
func (d *Difficulty) Tick(now time.Duration, balls []*Ball) bool {
	if !d.timed || now-d.lastSpeedup <= d.interval {
		return false
	}

	for _, b := range balls {
		b.Scale(d.multiplier)
	}
	d.factor *= d.multiplier
	d.lastSpeedup = now
	return true
}

// Factor returns the accumulated timed speed multiplier.
func (d *Difficulty) Factor() float64 {
	return d.factor
}
