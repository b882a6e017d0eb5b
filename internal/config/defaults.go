package config

import (
	_ "embed"
)

// Variant names a registered flavor of the game.
type Variant string

const (
	VariantGravity Variant = "bounce"  // Balls fall under gravity
	VariantClassic Variant = "classic" // Balls travel in straight lines
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultBounceConfig returns the hardcoded configuration for a variant.
// It mirrors the embedded YAML and is used when that fails to parse.
func DefaultBounceConfig(v Variant) BounceConfig {
	gravity := 0.2
	if v == VariantClassic {
		gravity = 0
	}
	return BounceConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:      15,
			Gravity:     gravity,
			Count:       1,
			SpawnX:      400,
			SpawnY:      300,
			SpawnSpeedX: 4,
			SpawnSpeedY: -4,
			ExtraSpeeds: []float64{-3, -2, 2, 3},
			Colors:      []string{"red", "green", "blue", "yellow"},
		},
		Paddle: PaddleConfig{
			X:          350,
			Y:          580,
			Width:      100,
			Height:     15,
			Speed:      7,
			MinWidth:   50,
			ShrinkStep: 10,
			Color:      "cyan",
		},
		Scoring: ScoringConfig{
			PointsPerHit:     1,
			MilestoneEvery:   5,
			MilestoneSpeedup: 1.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			SpeedupIntervalMs: 5000,
			SpeedupMultiplier: 1.05,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Audio: AudioConfig{
			BounceCooldownMs: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantGravity:
		return defaultBounceYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
