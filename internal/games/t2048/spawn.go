package t2048

import (
	"math/rand"

	"lukechampine.com/frand"
)

// Source is the randomness the spawn step draws from.
// *rand.Rand satisfies it, which keeps seeded replays trivial.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type cryptoSource struct{}

func (cryptoSource) Intn(n int) int   { return frand.Intn(n) }
func (cryptoSource) Float64() float64 { return frand.Float64() }

// CryptoSource returns a non-seeded uniform source backed by frand.
// Safe for concurrent use.
func CryptoSource() Source {
	return cryptoSource{}
}

// SpawnTile places a new tile (2, or 4 with the configured probability) in a
// uniformly chosen empty cell. A full board is returned unchanged.
func (e *Engine) SpawnTile(board Board) Board {
	b, _, _ := e.spawn(board)
	return b
}

// spawn is SpawnTile that also reports the cell it filled.
func (e *Engine) spawn(board Board) (Board, RenderHint, bool) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return CloneBoard(board), RenderHint{}, false
	}

	pos := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}

	tile := e.tiles.NewTile(value)
	hint := RenderHint{Row: pos.Row, Col: pos.Col, ID: tile.ID, Kind: HintNew}
	return board.With(pos.Row, pos.Col, tile), hint, true
}
