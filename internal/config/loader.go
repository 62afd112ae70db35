package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource names the built-in defaults in LoadT2048WithSource.
const EmbeddedSource = "embedded defaults"

// SearchPaths lists the optional config files tried when no explicit path
// is given, in priority order.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".t2048", "configs", "t2048.yaml"))
	}
	return append(paths, filepath.Join("configs", "t2048.yaml"))
}

// LoadT2048 loads the 2048 configuration, see LoadT2048WithSource.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, _, err := LoadT2048WithSource(customPath)
	return cfg, err
}

// LoadT2048WithSource loads the 2048 configuration and reports where it
// came from.
//
// An explicit customPath must exist and be valid; on failure the defaults
// are returned with the error. Otherwise the first readable, valid file of
// SearchPaths wins, falling back to the embedded defaults. Keys missing from
// a file keep their default values; unknown keys are an error.
func LoadT2048WithSource(customPath string) (T2048Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultT2048Config(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeT2048(data)
		if err != nil {
			return DefaultT2048Config(), "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Broken optional files are skipped, not fatal
		if cfg, err := decodeT2048(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := decodeT2048(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), EmbeddedSource, nil
	}
	return cfg, EmbeddedSource, nil
}

// decodeT2048 overlays YAML onto the defaults and validates the result.
func decodeT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultT2048Config(), fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultT2048Config(), err
	}
	return cfg, nil
}

// ApplyT2048Preset adjusts cfg for a difficulty preset. An empty preset
// leaves it unchanged.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.20
	}
}
