package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// T2048Mode represents the selected game mode.
type T2048Mode int

const (
	T2048ModeCampaign T2048Mode = iota
	T2048ModeEndless
)

// GameID returns the registry id of the mode.
func (m T2048Mode) GameID() string {
	if m == T2048ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// T2048Selection holds the user's selection from the 2048 menu.
type T2048Selection struct {
	Mode   T2048Mode
	Level  int  // 0 = start from beginning, 1-10 = specific level
	Resume bool // continue the saved game for Mode
	Scores bool // open the scoreboard instead of playing
}

type menuEntry struct {
	label     string
	selection T2048Selection
	levels    bool // opens the level list
}

var (
	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSubtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const menuHelp = "Enter: Select  |  Esc: Back  |  Q: Quit"

// T2048ModeModel is the start menu: mode, saved games, campaign level and
// the scoreboard.
type T2048ModeModel struct {
	entries     []menuEntry
	cursor      int
	levelCursor int
	inLevels    bool
	width       int
	height      int
	keyMapper   *KeyMapper

	selection *T2048Selection
	quitting  bool
	back      bool
	embedded  bool // hosted by another model, never sends tea.Quit
}

// NewT2048ModeModel creates the menu. Each saved game adds a Continue entry
// at the top.
func NewT2048ModeModel(width, height int, saved []storage.SavedGame) T2048ModeModel {
	return T2048ModeModel{
		entries:   buildMenuEntries(saved),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

func buildMenuEntries(saved []storage.SavedGame) []menuEntry {
	var entries []menuEntry
	for _, s := range saved {
		when := humanize.Time(s.SavedAt)
		switch s.GameID {
		case T2048ModeCampaign.GameID():
			entries = append(entries, menuEntry{
				label:     fmt.Sprintf("Continue Campaign (level %d, saved %s)", s.Level, when),
				selection: T2048Selection{Mode: T2048ModeCampaign, Resume: true},
			})
		case T2048ModeEndless.GameID():
			entries = append(entries, menuEntry{
				label:     fmt.Sprintf("Continue Endless (saved %s)", when),
				selection: T2048Selection{Mode: T2048ModeEndless, Resume: true},
			})
		}
	}

	return append(entries,
		menuEntry{label: fmt.Sprintf("Campaign (%d levels)", t2048.LevelCount()), selection: T2048Selection{Mode: T2048ModeCampaign}},
		menuEntry{label: "Endless Mode", selection: T2048Selection{Mode: T2048ModeEndless}},
		menuEntry{label: "Select Level...", levels: true},
		menuEntry{label: "High Scores", selection: T2048Selection{Scores: true}},
	)
}

// Embedded returns a copy that reports its result without quitting the program.
func (m T2048ModeModel) Embedded() T2048ModeModel {
	m.embedded = true
	return m
}

func (m T2048ModeModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// Init implements tea.Model.
func (m T2048ModeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m T2048ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// moveCursor steps *cur by delta within [0, n).
func moveCursor(cur *int, delta, n int) {
	*cur = min(max(*cur+delta, 0), n-1)
}

func (m T2048ModeModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	cursor, count := &m.cursor, len(m.entries)
	if m.inLevels {
		cursor, count = &m.levelCursor, t2048.LevelCount()
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, m.done()
	case MenuActionUp:
		moveCursor(cursor, -1, count)
	case MenuActionDown:
		moveCursor(cursor, 1, count)
	case MenuActionBack:
		if m.inLevels {
			m.inLevels = false
			return m, nil
		}
		m.back = true
		return m, m.done()
	case MenuActionSelect:
		return m.choose()
	}
	return m, nil
}

func (m T2048ModeModel) choose() (tea.Model, tea.Cmd) {
	if m.inLevels {
		m.selection = &T2048Selection{Mode: T2048ModeCampaign, Level: m.levelCursor + 1}
		return m, m.done()
	}

	entry := m.entries[m.cursor]
	if entry.levels {
		m.inLevels = true
		m.levelCursor = 0
		return m, nil
	}
	sel := entry.selection
	m.selection = &sel
	return m, m.done()
}

// View implements tea.Model.
func (m T2048ModeModel) View() string {
	if m.quitting {
		return ""
	}

	title, subtitle := "2 0 4 8", "Select game mode:"
	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		labels[i] = e.label
	}
	cursor := m.cursor

	if m.inLevels {
		title, subtitle = "SELECT LEVEL", "Campaign starting level:"
		names, targets := t2048.LevelNames(), t2048.LevelTargets()
		labels = make([]string, len(names))
		for i, name := range names {
			labels[i] = fmt.Sprintf("%2d. %s (Target: %s)", i+1, name, humanize.Comma(int64(targets[i])))
		}
		cursor = m.levelCursor
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtleStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(renderMenuList(labels, cursor), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(menuHelp), m.width))
	return b.String()
}

// renderMenuList renders one line per label with the cursor line marked.
func renderMenuList(labels []string, cursor int) string {
	lines := make([]string, len(labels))
	for i, label := range labels {
		if i == cursor {
			lines[i] = menuSelectedStyle.Render("> " + label)
		} else {
			lines[i] = menuItemStyle.Render(label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Selected returns the selection, or nil while the player is still choosing.
func (m T2048ModeModel) Selected() *T2048Selection {
	return m.selection
}

// IsQuitting reports whether the player asked to quit.
func (m T2048ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the player backed out of the menu.
func (m T2048ModeModel) WantsBack() bool {
	return m.back
}

// RunT2048ModeSelector runs the menu as its own program. A nil selection
// means the player backed out or quit. The returned config carries the
// latest terminal size.
func RunT2048ModeSelector(cfg core.RuntimeConfig, saved []storage.SavedGame) (*T2048Selection, core.RuntimeConfig, error) {
	final, err := tea.NewProgram(NewT2048ModeModel(cfg.ScreenW, cfg.ScreenH, saved), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, cfg, err
	}
	m, ok := final.(T2048ModeModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}
	return m.Selected(), cfg, nil
}

// centerText centers each line of text within width. Styled text is
// measured by its visible width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
