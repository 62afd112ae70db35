package config

import _ "embed"

// defaultT2048YAML mirrors DefaultT2048Config and doubles as a commented
// template for user config files.
//
//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{Size: 4},
		Spawn: T2048Spawn{FourProbability: 0.10},
		// At 60 ticks per second: about 133ms and 100ms
		Animation: T2048Animation{MergeTicks: 8, SpawnTicks: 6},
		Difficulty: DifficultyConfig{
			Progression: ProgressionConfig{Type: ProgressionScore, MaxAt: 20000},
			Scaling:     ScalingConfig{FourProbabilityMax: 0.30},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode, or nil
// for modes without one.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048", "2048_endless", "t2048":
		return defaultT2048YAML
	}
	return nil
}
