package t2048

// DefaultSpawn4Probability is the chance a spawned tile is a 4.
const DefaultSpawn4Probability = 0.10

// Engine computes board transitions. It holds no board state: every call
// takes a snapshot and returns a new one. An Engine is safe for concurrent
// use if its Source is.
type Engine struct {
	tiles      *TileFactory
	rng        Source
	spawn4Prob float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for spawning.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithTileFactory sets the factory used to allocate tiles.
func WithTileFactory(f *TileFactory) Option {
	return func(e *Engine) {
		e.tiles = f
	}
}

// WithSpawn4Probability sets the chance (0..1) of spawning a 4.
func WithSpawn4Probability(p float64) Option {
	return func(e *Engine) {
		e.spawn4Prob = clampProb(p)
	}
}

// NewEngine creates an engine. Without options it uses UUID tile ids,
// a non-seeded source and the standard 90/10 spawn split.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{spawn4Prob: DefaultSpawn4Probability}
	for _, opt := range opts {
		opt(e)
	}
	if e.tiles == nil {
		e.tiles = NewTileFactory()
	}
	if e.rng == nil {
		e.rng = CryptoSource()
	}
	return e
}

// Tiles returns the engine's tile factory.
func (e *Engine) Tiles() *TileFactory {
	return e.tiles
}

// Spawn4Probability returns the chance of spawning a 4.
func (e *Engine) Spawn4Probability() float64 {
	return e.spawn4Prob
}

func clampProb(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
