package main

import "testing"

func TestResolveMode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"campaign", "2048", false},
		{"endless", "2048_endless", false},
		{"2048", "2048", false},
		{"2048_endless", "2048_endless", false},
		{"tetris", "", true},
	}

	for _, tt := range tests {
		got, err := resolveMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2022":     "2022",
		"no-port-at-all": "no-port-at-all",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadGameConfigFlags(t *testing.T) {
	defer func() {
		flagDifficulty, flagSize, flagConfig = "", 0, ""
	}()

	flagSize = 5
	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}

	flagSize = 1
	if _, err := loadGameConfig(); err == nil {
		t.Error("size 1 should be rejected")
	}

	flagSize = 0
	flagDifficulty = "nightmare"
	if _, err := loadGameConfig(); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
