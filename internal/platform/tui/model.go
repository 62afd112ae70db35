package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// LocalPlayer is the save slot used for games played outside the SSH server.
const LocalPlayer = "local"

// ModelOptions controls session behavior around a running game.
type ModelOptions struct {
	// Player owns the saved-game slot. Empty means LocalPlayer.
	Player string

	// Resume restores the player's saved game for this mode, if any.
	Resume bool

	// AllowBack lets B/Esc leave a paused or finished game instead of
	// pausing it.
	AllowBack bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A zero seed gives every game its own random stream.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if opts.Player == "" {
		opts.Player = LocalPlayer
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadSession()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Unset(core.ActionBack)
		if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.saveSession()
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games that cannot follow a resize start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// A fixed seed still yields a fresh board on every restart
		if m.config.Seed != 0 {
			m.config.Seed++
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.finishSession()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// loadSession seeds the best score and restores a saved game when asked.
func (m Model) loadSession() {
	p, ok := m.game.(registry.Persistent)
	if !ok || m.store == nil {
		return
	}

	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		p.SetBestScore(best)
	}

	if !m.opts.Resume {
		return
	}
	saved, err := m.store.LoadGame(m.opts.Player, m.game.ID())
	if err != nil || saved == nil {
		return
	}
	if err := p.Restore(saved.Level, saved.Data); err != nil {
		// Finished or unreadable saves are never worth offering again
		//nolint:errcheck // Best-effort cleanup
		m.store.DeleteGame(m.opts.Player, m.game.ID())
	}
}

// saveSession stores the running game so it can be resumed later.
func (m Model) saveSession() {
	p, ok := m.game.(registry.Persistent)
	if !ok || m.store == nil || m.game.State().GameOver {
		return
	}

	level, data, err := p.Session()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save, quitting continues regardless
	m.store.SaveGame(storage.SavedGame{
		Player: m.opts.Player,
		GameID: m.game.ID(),
		Level:  level,
		Data:   data,
	})
}

// finishSession records the final score and drops the saved game.
func (m Model) finishSession() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	if _, ok := m.game.(registry.Persistent); ok {
		//nolint:errcheck // Best-effort cleanup
		m.store.DeleteGame(m.opts.Player, m.game.ID())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		&quitOnBack{Model: model},
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if q, ok := finalModel.(*quitOnBack); ok {
		return q.BackToMenu(), nil
	}
	return false, nil
}

// quitOnBack ends a standalone program when the player leaves the game.
type quitOnBack struct {
	Model
}

func (q *quitOnBack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := q.Model.Update(msg)
	if m, ok := next.(Model); ok {
		q.Model = m
	}
	if q.BackToMenu() {
		return q, tea.Quit
	}
	return q, cmd
}
