package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel is the top-level model of an SSH connection. It moves
// between the mode menu, the scoreboard and a running game until the
// player quits.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	logger   *log.Logger

	screen     sessionScreen
	menu       T2048ModeModel
	scoreboard ScoreboardModel
	game       *Model
	gameStart  time.Time
	quitting   bool
}

// NewSessionModel creates a session for username, which also names the
// saved-game slot.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	m := SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		logger:   log.New(io.Discard),
	}
	m.menu = m.newMenu()
	return m
}

// newMenu builds the mode selector with the user's saved games.
func (m SessionModel) newMenu() T2048ModeModel {
	var saved []storage.SavedGame
	if m.store != nil {
		var err error
		if saved, err = m.store.SavedGames(m.username); err != nil {
			m.logger.Warn("could not list saved games", "error", err)
		}
	}
	return NewT2048ModeModel(m.config.ScreenW, m.config.ScreenH, saved).Embedded()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Screens created later start at the current size
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(T2048ModeModel); ok {
		m.menu = menu
	}

	switch sel := m.menu.Selected(); {
	case m.menu.IsQuitting() || m.menu.WantsBack():
		return m.quit()
	case sel == nil:
		return m, cmd
	case sel.Scores:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH).Embedded()
		m.screen = screenScores
		return m, m.scoreboard.Init()
	default:
		return m.startGame(*sel)
	}
}

func (m SessionModel) startGame(sel T2048Selection) (tea.Model, tea.Cmd) {
	game := t2048.New()
	if sel.Mode == T2048ModeEndless {
		game = t2048.NewEndless()
	}
	if sel.Level > 0 {
		game.StartAtLevel(sel.Level)
	}

	m.logger.Info("game started", "mode", game.ID(), "level", sel.Level, "resume", sel.Resume)

	model := NewModel(game, m.store, m.config, ModelOptions{
		Player:    m.username,
		Resume:    sel.Resume,
		AllowBack: true,
	})
	m.game = &model
	m.gameStart = time.Now()
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	switch {
	case m.game.BackToMenu():
		m.logGameEnd("game left")
		return m.toMenu()
	case m.game.IsQuitting():
		m.logGameEnd("game quit")
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) logGameEnd(msg string) {
	state := m.game.game.State()
	m.logger.Info(msg,
		"mode", m.game.game.ID(),
		"score", state.Score,
		"over", state.GameOver,
		"played", time.Since(m.gameStart).Round(time.Second),
	)
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame && m.game != nil:
		return m.game.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
