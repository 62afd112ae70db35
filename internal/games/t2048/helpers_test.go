package t2048

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws. Once a script runs out, Intn returns 0
// and Float64 returns 0.99 (always a 2).
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// newTestEngine returns an engine with sequential ids and a scripted source.
func newTestEngine(opts ...Option) *Engine {
	base := []Option{
		WithTileFactory(NewTileFactoryWithIDs(SequentialIDs("t"))),
		WithSource(&scriptedSource{}),
	}
	return NewEngine(append(base, opts...)...)
}

func mustBoard(t testing.TB, f *TileFactory, values [][]int) Board {
	t.Helper()
	b, err := BoardFromValues(values, f)
	require.NoError(t, err)
	return b
}

// lineOf builds a line of tiles; 0 is an empty slot.
func lineOf(f *TileFactory, values ...int) []Tile {
	line := make([]Tile, len(values))
	for i, v := range values {
		if v != 0 {
			line[i] = f.NewTile(v)
		}
	}
	return line
}

func lineValues(line []Tile) []int {
	out := make([]int, len(line))
	for i, t := range line {
		out[i] = t.Value
	}
	return out
}
