// Package config provides YAML-based game configuration loading and
// difficulty management for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board      T2048Board       `yaml:"board"`
	Spawn      T2048Spawn       `yaml:"spawn"`
	Animation  T2048Animation   `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// T2048Board defines the grid.
type T2048Board struct {
	Size int `yaml:"size"`
}

// T2048Spawn defines spawn parameters.
type T2048Spawn struct {
	FourProbability float64 `yaml:"four_probability"`
}

// T2048Animation defines how long render hints stay visible, in ticks.
type T2048Animation struct {
	MergeTicks int `yaml:"merge_ticks"`
	SpawnTicks int `yaml:"spawn_ticks"`
}

// Validate checks the config for values the game cannot run with.
func (c T2048Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("%w: board.size must be at least 2, got %d", ErrInvalidConfig, c.Board.Size)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability must be within [0, 1], got %g", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if c.Animation.MergeTicks < 0 || c.Animation.SpawnTicks < 0 {
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalidConfig)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressionScore, ProgressionMoves, ProgressionNone:
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionScore = "score"
	ProgressionMoves = "moves"
	ProgressionNone  = "none"
)

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FourProbabilityMax float64 `yaml:"four_probability_max"` // Four-spawn chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
