package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnTileScripted(t *testing.T) {
	tests := []struct {
		name  string
		ints  []int
		float float64
		pos   Position
		value int
	}{
		{"sixth empty cell gets a two", []int{5}, 0.50, Position{Row: 1, Col: 1}, 2},
		{"first empty cell gets a four", []int{0}, 0.05, Position{Row: 0, Col: 0}, 4},
		{"last empty cell", []int{15}, 0.10, Position{Row: 3, Col: 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{ints: tt.ints, floats: []float64{tt.float}}
			e := newTestEngine(WithSource(src))

			b := e.SpawnTile(InitBoard(4))

			assert.Equal(t, 1, TileCount(b))
			assert.Equal(t, tt.value, b.At(tt.pos.Row, tt.pos.Col).Value)
		})
	}
}

func TestSpawnPicksAmongEmptyCellsOnly(t *testing.T) {
	e := newTestEngine(WithSource(&scriptedSource{ints: []int{1}}))
	board := mustBoard(t, e.Tiles(), [][]int{
		{2, 0},
		{4, 0},
	})

	b := e.SpawnTile(board)

	// Empty cells in row-major order are (0,1) and (1,1)
	assert.Equal(t, 2, b.At(1, 1).Value)
	assert.True(t, b.At(0, 1).IsEmpty())
}

func TestSpawnFullBoardUnchanged(t *testing.T) {
	e := newTestEngine()
	board := mustBoard(t, e.Tiles(), [][]int{
		{2, 4},
		{8, 16},
	})

	b := e.SpawnTile(board)

	assert.True(t, BoardsEqual(board, b))
	assert.NotSame(t, &board.cells[0], &b.cells[0])
}

func TestSpawnAddsExactlyOneTile(t *testing.T) {
	e := newTestEngine(WithSource(NewSeededSource(3)))
	b := InitBoard(4)

	for i := 1; i <= 16; i++ {
		next := e.SpawnTile(b)
		require.Equal(t, TileCount(b)+1, TileCount(next), "spawn %d", i)
		b = next
	}

	full := e.SpawnTile(b)
	assert.Equal(t, 16, TileCount(full))
}

func TestSpawnProbabilityBounds(t *testing.T) {
	fours := newTestEngine(WithSource(NewSeededSource(1)), WithSpawn4Probability(2))
	twos := newTestEngine(WithSource(NewSeededSource(1)), WithSpawn4Probability(-1))

	assert.Equal(t, 1.0, fours.Spawn4Probability())
	assert.Equal(t, 0.0, twos.Spawn4Probability())

	for range 20 {
		assert.Equal(t, 4, MaxTile(fours.SpawnTile(InitBoard(2))))
		assert.Equal(t, 2, MaxTile(twos.SpawnTile(InitBoard(2))))
	}
}

func TestSeededSourceReplays(t *testing.T) {
	play := func() [][]int {
		e := newTestEngine(WithSource(NewSeededSource(2048)))
		b := e.InitializeGameBoard(4)
		for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft} {
			b = e.PlayMove(b, dir).Board
		}
		return b.Values()
	}

	assert.Equal(t, play(), play())
}

func TestCryptoSourceRange(t *testing.T) {
	src := CryptoSource()
	for range 100 {
		n := src.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)

		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
