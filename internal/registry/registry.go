// Package registry maps game mode IDs to factories.
// Modes register themselves from init(), so the CLI and the SSH server can
// list and create them without importing each one.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is what the platform drives on every tick. Implementations hold pure
// game logic: the platform owns input mapping, timing and drawing to the
// terminal.
type Game interface {
	// ID is the stable mode key used by the CLI and score storage,
	// e.g. "2048" or "2048_endless".
	ID() string

	// Title is the display name, e.g. "2048 (Endless)".
	Title() string

	// Reset starts a new session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that has already been cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. Games without it are reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// Persistent is implemented by games whose session can be saved and resumed.
type Persistent interface {
	// SetBestScore seeds the best score, usually from stored high scores.
	SetBestScore(best int)

	// Session serializes the running session.
	Session() (level int, data []byte, err error)

	// Restore replaces the running session with a saved one.
	// It is only valid after Reset.
	Restore(level int, data []byte) error
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics when the ID is taken, since that can only
// be a programming error in some init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := slices.Sorted(maps.Keys(entries))
	out := make([]GameInfo, len(ids))
	for i, id := range ids {
		out[i] = GameInfo{ID: id, Title: entries[id].title}
	}
	return out
}

// Create returns a new instance of the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether the mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
