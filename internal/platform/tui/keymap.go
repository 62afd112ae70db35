package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type boundAction[A comparable] struct {
	action  A
	binding key.Binding
}

// lookup returns the action of the first binding matching msg.
func lookup[A comparable](bindings []boundAction[A], msg tea.KeyMsg) (A, bool) {
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	var none A
	return none, false
}

// gameBindings maps keys to game actions, checked in order.
var gameBindings = []boundAction[core.Action]{
	{core.ActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"))},
	{core.ActionUp, key.NewBinding(key.WithKeys("up", "w", "k"))},
	{core.ActionDown, key.NewBinding(key.WithKeys("down", "s", "j"))},
	{core.ActionLeft, key.NewBinding(key.WithKeys("left", "a", "h"))},
	{core.ActionRight, key.NewBinding(key.WithKeys("right", "d", "l"))},
	{core.ActionConfirm, key.NewBinding(key.WithKeys("enter"))},
	{core.ActionBack, key.NewBinding(key.WithKeys("esc", "b"))},
	{core.ActionPause, key.NewBinding(key.WithKeys("p"))},
	{core.ActionRestart, key.NewBinding(key.WithKeys("r"))},
}

// menuBindings maps keys to menu actions, checked in order.
var menuBindings = []boundAction[MenuAction]{
	{MenuActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"))},
	{MenuActionUp, key.NewBinding(key.WithKeys("up", "w", "k"))},
	{MenuActionDown, key.NewBinding(key.WithKeys("down", "s", "j"))},
	{MenuActionSelect, key.NewBinding(key.WithKeys("enter", " "))},
	{MenuActionBack, key.NewBinding(key.WithKeys("esc", "b"))},
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the game action for a key, ActionNone for unbound keys,
// and whether the key asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, _ = lookup(gameBindings, msg)
	return action, action == core.ActionQuit
}

// MapKeyToFrame adds the key's action to frame and reports a quit request.
// Quit itself is never stored in the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a menu navigation action.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction returns the menu action for a key.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	action, _ := lookup(menuBindings, msg)
	return action
}
