package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "host_key"); got != want {
		t.Errorf("resolveHostKeyPath() = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(got)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}

	custom := filepath.Join(t.TempDir(), "keys", "server")
	got, err = resolveHostKeyPath(custom)
	if err != nil || got != custom {
		t.Errorf("resolveHostKeyPath(%q) = %q, %v", custom, got, err)
	}
}

func TestNewSSHServerDefaultsTickRate(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.TickRate = 0

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	defer srv.store.Close()

	if srv.config.TickRate != fallbackTickRate {
		t.Errorf("TickRate = %d, want %d", srv.config.TickRate, fallbackTickRate)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
