package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultT2048Config().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	data := GetDefaultYAML("2048")
	if len(data) == 0 {
		t.Fatal("GetDefaultYAML(\"2048\") returned nothing")
	}

	var cfg T2048Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}

	if GetDefaultYAML("snake") != nil {
		t.Error("GetDefaultYAML(\"snake\") should be nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"board too small", func(c *T2048Config) { c.Board.Size = 1 }, false},
		{"large board", func(c *T2048Config) { c.Board.Size = 8 }, true},
		{"negative probability", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, false},
		{"probability above one", func(c *T2048Config) { c.Spawn.FourProbability = 1.5 }, false},
		{"negative ticks", func(c *T2048Config) { c.Animation.MergeTicks = -1 }, false},
		{"unknown progression", func(c *T2048Config) { c.Difficulty.Progression.Type = "time" }, false},
		{"moves progression", func(c *T2048Config) { c.Difficulty.Progression.Type = ProgressionMoves }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	content := "board:\n  size: 5\nspawn:\n  four_probability: 0.25\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() error = %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("Spawn.FourProbability = %v, want 0.25", cfg.Spawn.FourProbability)
	}
	// Unset fields keep their defaults
	if cfg.Animation.MergeTicks != DefaultT2048Config().Animation.MergeTicks {
		t.Errorf("Animation.MergeTicks = %d, want default", cfg.Animation.MergeTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadT2048(missing) should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(broken); err == nil {
		t.Error("LoadT2048(broken) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadT2048(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadT2048(invalid) error = %v, want ErrInvalidConfig", err)
	}
	if cfg != DefaultT2048Config() {
		t.Error("LoadT2048(invalid) should return defaults")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v, want nil", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		four    float64
	}{
		{DifficultyEasy, true, 0.0, 0.05},
		{DifficultyNormal, true, 0.3, 0.10},
		{DifficultyHard, true, 0.7, 0.20},
		{DifficultyFixed, false, 0.0, 0.10},
	}

	for _, tt := range tests {
		cfg := DefaultT2048Config()
		ApplyT2048Preset(&cfg, tt.preset)

		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: Enabled = %v, want %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.level {
			t.Errorf("%s: InitialLevel = %v, want %v", tt.preset, cfg.Difficulty.InitialLevel, tt.level)
		}
		if cfg.Spawn.FourProbability != tt.four {
			t.Errorf("%s: FourProbability = %v, want %v", tt.preset, cfg.Spawn.FourProbability, tt.four)
		}
	}

	cfg := DefaultT2048Config()
	ApplyT2048Preset(&cfg, "")
	if cfg != DefaultT2048Config() {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultT2048Config().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: ProgressionScore, MaxAt: 1000}
	cfg.Scaling.FourProbabilityMax = 0.30

	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := dm.Level(500, 0); got != 0.5 {
		t.Errorf("Level(500) = %v, want 0.5", got)
	}
	if got := dm.Level(5000, 0); got != 1 {
		t.Errorf("Level(5000) = %v, want 1 (clamped)", got)
	}
	if got := dm.FourProbability(0.10, 500, 0); got < 0.199 || got > 0.201 {
		t.Errorf("FourProbability(0.10, 500) = %v, want 0.20", got)
	}

	cfg.Enabled = false
	disabled := NewDifficultyManager(cfg)
	if got := disabled.FourProbability(0.10, 5000, 0); got != 0.10 {
		t.Errorf("disabled FourProbability = %v, want base 0.10", got)
	}
}

func TestDifficultyManagerMovesProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressionMoves, MaxAt: 100},
		Scaling:      ScalingConfig{FourProbabilityMax: 0.5},
	})

	if got := dm.Level(999999, 50); got != 0.75 {
		t.Errorf("Level(moves=50) = %v, want 0.75", got)
	}
	if !dm.IsEnabled() {
		t.Error("IsEnabled() = false, want true")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("board:\n  sise: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(path); err == nil {
		t.Error("LoadT2048(typo) should fail on an unknown key")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := LoadT2048WithSource(path)
	if err != nil {
		t.Fatalf("LoadT2048WithSource(empty) error = %v", err)
	}
	if cfg != DefaultT2048Config() || source != path {
		t.Errorf("LoadT2048WithSource(empty) = %+v from %q, want defaults from %q", cfg, source, path)
	}
}

func TestLoadSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, source, err := LoadT2048WithSource("")
	if err != nil || source != EmbeddedSource || cfg != DefaultT2048Config() {
		t.Fatalf("no files: got %+v from %q (%v), want embedded defaults", cfg, source, err)
	}

	// The local file is used when the user file is missing
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "t2048.yaml"), []byte("board:\n  size: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if cfg, source, _ = LoadT2048WithSource(""); cfg.Board.Size != 3 || source != filepath.Join("configs", "t2048.yaml") {
		t.Errorf("local file: size %d from %q", cfg.Board.Size, source)
	}

	// The user file wins over the local one
	userPath := filepath.Join(home, ".t2048", "configs", "t2048.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("board:\n  size: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if cfg, source, _ = LoadT2048WithSource(""); cfg.Board.Size != 6 || source != userPath {
		t.Errorf("user file: size %d from %q", cfg.Board.Size, source)
	}

	// A broken user file falls through to the local one
	if err := os.WriteFile(userPath, []byte("board: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if cfg, _, _ = LoadT2048WithSource(""); cfg.Board.Size != 3 {
		t.Errorf("broken user file: size %d, want 3 from the local file", cfg.Board.Size)
	}
}

func TestFixedPresetKeepsInitialLevel(t *testing.T) {
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Fatal("IsFixedPreset should only match the fixed preset")
	}

	cfg := DefaultT2048Config()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 0.4
	ApplyT2048Preset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.4 {
		t.Errorf("fixed preset: Enabled = %v, InitialLevel = %v, want false, 0.4",
			cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
}
