package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "no preset" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config as loaded.
func ApplyPreset(cfg *BounceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.SpeedupIntervalMs = 8000
		cfg.Difficulty.SpeedupMultiplier = 1.03
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.SpeedupIntervalMs = 4000
		cfg.Difficulty.SpeedupMultiplier = 1.08
		cfg.Paddle.Speed *= 1.2
	case DifficultyFixed:
		// No time-based speedup; score milestones still apply
		cfg.Difficulty.Enabled = false
	}
}
