// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping, menus, saved games and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// fallbackTickRate is used when the configured rate is not positive.
const fallbackTickRate = core.DefaultTickRate

// tickCmd schedules the next TickMsg tickRate times per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
