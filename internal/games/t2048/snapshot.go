package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // Current level (1-indexed for display)
	Target    int    // Current target tile value, 0 in endless
	Score     int
	BestScore int
	Moves     int
	Board     [][]int
	MaxTile   int // Highest tile on board
	Spawn4    float64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.state.IsGameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.levelIndex + 1,
		Target:    g.currentTarget,
		Score:     g.state.Score,
		BestScore: g.state.BestScore,
		Moves:     g.state.MoveCount,
		Board:     g.state.Tiles.Values(),
		MaxTile:   MaxTile(g.state.Tiles),
		Spawn4:    g.engine.Spawn4Probability(),
		State:     state,
	}
}
