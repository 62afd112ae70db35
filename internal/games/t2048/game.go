package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearDelay is how long the level-cleared overlay stays up (2s at 60fps).
const levelClearDelay = 120

// winBannerTicks is how long endless mode shows the 2048 banner.
const winBannerTicks = 180

// ErrFinishedGame is returned when restoring a session that already ended.
var ErrFinishedGame = errors.New("t2048: saved game is already over")

// Package-level settings, set by the CLI before a game is created.
var (
	configPath        string
	difficultyPreset  config.DifficultyPreset
	boardSizeOverride int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetBoardSize overrides the configured board size. 0 keeps the config value.
func SetBoardSize(size int) {
	boardSizeOverride = size
}

// Game adapts the engine to the platform's tick loop.
type Game struct {
	mode       Mode
	cfg        config.T2048Config
	difficulty *config.DifficultyManager

	engine *Engine
	source Source
	tiles  *TileFactory
	state  GameState
	tick   uint64

	startLevel    int // 1-based level for the next Reset, 0 for none
	levelIndex    int // Current level (0-indexed)
	currentTarget int // Current tile target
	baseSpawn4    float64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused          bool
	tooSmall        bool
	levelCleared    bool
	won             bool // campaign finished
	levelClearTicks int
	winBanner       int // endless: ticks left on the 2048 banner
	reached2048     bool

	highlights []highlight
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// StartAtLevel makes the next Reset begin at the given 1-based campaign level.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	if boardSizeOverride >= MinBoardSize {
		cfg.Board.Size = boardSizeOverride
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if rc.Seed != 0 {
		g.source = NewSeededSource(rc.Seed)
	} else {
		g.source = CryptoSource()
	}
	g.tiles = NewTileFactory()

	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.levelCleared = false
	g.won = false
	g.levelClearTicks = 0
	g.winBanner = 0
	g.reached2048 = false
	g.highlights = nil

	// Apply selected start level (campaign only), consumed on use
	start := g.startLevel
	g.startLevel = 0
	if g.mode == ModeCampaign && start > 0 && start <= LevelCount() {
		g.levelIndex = start - 1
	} else {
		g.levelIndex = 0
	}
	g.loadLevel()

	best := g.state.BestScore
	g.state = g.engine.InitializeGameState(cfg.Board.Size).WithBestScore(best)
	g.startHighlights(spawnHints(g.state.Tiles))

	g.checkScreenSize()
}

// loadLevel sets up the current level parameters and the engine for them.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0 // No target in endless
		g.baseSpawn4 = g.cfg.Spawn.FourProbability
		g.engine = g.newEngine(g.baseSpawn4)
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}

	g.currentTarget = level.Target
	// Presets shift every level by the same amount the base rate moved.
	g.baseSpawn4 = clampProb(level.Spawn4 + g.cfg.Spawn.FourProbability - DefaultSpawn4Probability)
	g.engine = g.newEngine(g.baseSpawn4)
}

func (g *Game) newEngine(spawn4 float64) *Engine {
	return NewEngine(
		WithSource(g.source),
		WithTileFactory(g.tiles),
		WithSpawn4Probability(spawn4),
	)
}

// refreshSpawnRate applies endless-mode difficulty progression.
func (g *Game) refreshSpawnRate() {
	p := g.difficulty.FourProbability(g.baseSpawn4, g.state.Score, g.state.MoveCount)
	if p != g.engine.Spawn4Probability() {
		g.engine = g.newEngine(p)
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.updateHighlights()
	if g.winBanner > 0 {
		g.winBanner--
	}

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if in.Has(core.ActionRestart) && (g.state.IsGameOver || g.won) {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.state.IsGameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks at most one move per tick.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove plays one move and updates level progress.
func (g *Game) processMove(dir Direction) {
	if g.mode == ModeEndless {
		g.refreshSpawnRate()
	}

	res := g.engine.PlayMove(g.state.Tiles, dir)
	if !res.Moved {
		return
	}

	g.state = g.state.Apply(res)
	g.startHighlights(res.Hints)

	if g.mode == ModeEndless {
		if g.state.IsWon && !g.reached2048 {
			g.reached2048 = true
			g.winBanner = winBannerTicks
		}
		return
	}

	if g.currentTarget > 0 && MaxTile(g.state.Tiles) >= g.currentTarget && !g.state.IsGameOver {
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	// Keep current board and score - just update target
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.IsGameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// GameState returns the engine-level session state.
func (g *Game) GameState() GameState {
	return g.state
}

// SetBestScore raises the best score shown in the HUD, typically from storage.
func (g *Game) SetBestScore(best int) {
	g.state = g.state.WithBestScore(best)
}

// Session serializes the running game so it can be resumed later.
// The level is returned separately so storage can index it.
func (g *Game) Session() (level int, data []byte, err error) {
	data, err = EncodeState(g.state)
	if err != nil {
		return 0, nil, err
	}
	return g.levelIndex + 1, data, nil
}

// Restore replaces the current session with a saved one. It must be called
// after Reset.
func (g *Game) Restore(level int, data []byte) error {
	if g.tiles == nil {
		return fmt.Errorf("t2048: restore before reset")
	}
	restored, err := DecodeState(data, g.tiles)
	if err != nil {
		return err
	}
	if restored.IsGameOver || IsGameOver(restored.Tiles) {
		return ErrFinishedGame
	}

	g.state = restored.WithBestScore(g.state.BestScore)
	g.reached2048 = restored.IsWon
	if g.mode == ModeCampaign {
		g.levelIndex = min(max(level-1, 0), LevelCount()-1)
	}
	g.loadLevel()
	g.highlights = nil
	g.checkScreenSize()
	return nil
}
