package core

// Runtime defaults used by DefaultConfig.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform tells a game when it starts a session.
type RuntimeConfig struct {
	ScreenW, ScreenH int // terminal size in cells

	// TickRate is the number of Step calls per second.
	TickRate int

	// Seed fixes the random stream for a reproducible session. Zero draws
	// from a non-reproducible source.
	Seed int64
}

// DefaultConfig returns an 80x24, 60 tick config with no fixed seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State GameState
}
