package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "2048", core.ColorBrightGreen)
	s.DrawTextColor(0, 1, "x", core.ColorGray)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen has %d line breaks, want 1", got)
	}
	for _, want := range []string{"ab", "2048", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q:\n%s", want, out)
		}
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	colors := core.Colors()
	if len(cellStyles) != len(colors) {
		t.Fatalf("len(cellStyles) = %d, want %d", len(cellStyles), len(colors))
	}

	// Out-of-range colors fall back to the default style
	if got, want := cellStyle(core.Color(250)).Render("x"), cellStyle(core.ColorDefault).Render("x"); got != want {
		t.Errorf("cellStyle(250) rendered %q, want %q", got, want)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", got)
	}
}
