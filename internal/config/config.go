// Package config provides YAML-based game configuration loading and
// difficulty presets for the bounce game.
package config

import (
	"errors"
	"fmt"
)

// BounceConfig contains all configuration for the bounce game.
// All lengths are in world units; the renderer scales them to terminal cells.
type BounceConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball construction and physics.
type BallConfig struct {
	Radius      float64   `yaml:"radius"`
	Gravity     float64   `yaml:"gravity"` // Added to dy every tick; 0 disables
	Count       int       `yaml:"count"`   // Balls in play at game start
	SpawnX      float64   `yaml:"spawn_x"`
	SpawnY      float64   `yaml:"spawn_y"`
	SpawnSpeedX float64   `yaml:"spawn_speed_x"` // Magnitude; direction is random
	SpawnSpeedY float64   `yaml:"spawn_speed_y"`
	ExtraSpeeds []float64 `yaml:"extra_speeds"` // Velocity choices for balls beyond the first
	Colors      []string  `yaml:"colors"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	MinWidth       float64 `yaml:"min_width"`
	ShrinkStep     float64 `yaml:"shrink_step"`
	StayBelowBalls bool    `yaml:"stay_below_balls"`
	Color          string  `yaml:"color"`
}

// ScoringConfig defines score-driven difficulty.
type ScoringConfig struct {
	PointsPerHit     int     `yaml:"points_per_hit"`
	MilestoneEvery   int     `yaml:"milestone_every"`
	MilestoneSpeedup float64 `yaml:"milestone_speedup"`
}

// DifficultyConfig defines the time-based global speedup.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	SpeedupIntervalMs int     `yaml:"speedup_interval_ms"`
	SpeedupMultiplier float64 `yaml:"speedup_multiplier"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// AudioConfig defines sound trigger behavior.
type AudioConfig struct {
	BounceCooldownMs int `yaml:"bounce_cooldown_ms"`
}

// Validate reports the first invariant the config breaks.
func (c BounceConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be > 0, got %g", c.Ball.Radius))
	}
	if c.Ball.Count < 1 {
		errs = append(errs, fmt.Errorf("ball.count must be >= 1, got %d", c.Ball.Count))
	}
	if c.Ball.Count > 1 && len(c.Ball.ExtraSpeeds) == 0 {
		errs = append(errs, errors.New("ball.extra_speeds must not be empty when ball.count > 1"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %g exceeds field width %g", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.MinWidth < 0 || c.Paddle.MinWidth > c.Paddle.Width {
		errs = append(errs, fmt.Errorf("paddle.min_width must be in [0, %g], got %g", c.Paddle.Width, c.Paddle.MinWidth))
	}
	if c.Paddle.ShrinkStep < 0 {
		errs = append(errs, fmt.Errorf("paddle.shrink_step must be >= 0, got %g", c.Paddle.ShrinkStep))
	}
	if c.Scoring.PointsPerHit < 1 {
		errs = append(errs, fmt.Errorf("scoring.points_per_hit must be >= 1, got %d", c.Scoring.PointsPerHit))
	}
	if c.Scoring.MilestoneSpeedup < 1 {
		errs = append(errs, fmt.Errorf("scoring.milestone_speedup must be >= 1, got %g", c.Scoring.MilestoneSpeedup))
	}
	if c.Difficulty.SpeedupMultiplier < 1 {
		errs = append(errs, fmt.Errorf("difficulty.speedup_multiplier must be >= 1, got %g", c.Difficulty.SpeedupMultiplier))
	}
	if c.Scoring.MilestoneEvery < 0 {
		errs = append(errs, fmt.Errorf("scoring.milestone_every must be >= 0, got %d", c.Scoring.MilestoneEvery))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be >= 1, got %d", c.Gameplay.Lives))
	}
	if c.Difficulty.Enabled && c.Difficulty.SpeedupIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.speedup_interval_ms must be > 0, got %d", c.Difficulty.SpeedupIntervalMs))
	}
	return errors.Join(errs...)
}
