package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", stubFactory("test_zeta", "Zeta"))
	Register("test_alpha", stubFactory("test_alpha", "Alpha"))

	if !Exists("test_alpha") {
		t.Fatal("Exists(test_alpha) = false, want true")
	}
	if Exists("test_missing") {
		t.Error("Exists(test_missing) = true, want false")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create(test_zeta) error: %v", err)
	}
	if g.Title() != "Zeta" {
		t.Errorf("Title() = %q, want %q", g.Title(), "Zeta")
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create(test_missing) expected error")
	}

	var alpha, zeta = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test_alpha":
			alpha = i
		case "test_zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() order: alpha at %d, zeta at %d", alpha, zeta)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stubFactory("test_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", stubFactory("test_dup", "Dup"))
}
