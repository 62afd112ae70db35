package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	e := newTestEngine()
	board := mustBoard(t, e.Tiles(), [][]int{
		{2, 0},
		{0, 0},
	})

	assert.Equal(t, []Direction{DirDown, DirRight}, e.LegalMoves(board))

	locked := mustBoard(t, e.Tiles(), [][]int{
		{2, 4},
		{4, 2},
	})
	assert.Empty(t, e.LegalMoves(locked))
}

func TestStrategies(t *testing.T) {
	e := newTestEngine()
	board := mustBoard(t, e.Tiles(), [][]int{
		{2, 2},
		{0, 0},
	})

	dir, ok := CornerStrategy()(e, board)
	require.True(t, ok)
	assert.Equal(t, DirDown, dir)

	// Down scores nothing; left is the first merge in corner order
	dir, ok = GreedyStrategy()(e, board)
	require.True(t, ok)
	assert.Equal(t, DirLeft, dir)

	dir, ok = RandomStrategy(NewSeededSource(1))(e, board)
	require.True(t, ok)
	assert.Contains(t, e.LegalMoves(board), dir)
}

func TestStrategiesOnLockedBoard(t *testing.T) {
	e := newTestEngine()
	locked := mustBoard(t, e.Tiles(), [][]int{
		{2, 4},
		{4, 2},
	})

	for _, name := range StrategyNames {
		s, err := ParseStrategy(name, NewSeededSource(1))
		require.NoError(t, err)
		_, ok := s(e, locked)
		assert.False(t, ok, name)
	}
}

func TestParseStrategyUnknown(t *testing.T) {
	_, err := ParseStrategy("expectimax", nil)
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestAutoplayRunsToGameOver(t *testing.T) {
	e := NewEngine(WithSource(NewSeededSource(3)))

	state := e.Autoplay(3, CornerStrategy(), 0)

	assert.True(t, state.IsGameOver)
	assert.True(t, IsGameOver(state.Tiles))
	assert.Positive(t, state.MoveCount)
	assert.Equal(t, state.Score, state.BestScore)
}

func TestAutoplayMoveLimit(t *testing.T) {
	e := NewEngine(WithSource(NewSeededSource(3)))

	state := e.Autoplay(4, GreedyStrategy(), 5)

	assert.Equal(t, 5, state.MoveCount)
	assert.False(t, state.IsGameOver)
}

func TestAutoplayDeterministic(t *testing.T) {
	play := func() GameState {
		e := NewEngine(WithSource(NewSeededSource(42)))
		return e.Autoplay(4, CornerStrategy(), 200)
	}

	a, b := play(), play()
	assert.Equal(t, a.Tiles.Values(), b.Tiles.Values())
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.MoveCount, b.MoveCount)
}

func TestSummarize(t *testing.T) {
	f := NewTileFactory()
	states := []GameState{
		{Tiles: mustBoard(t, f, [][]int{{128, 2}, {4, 8}}), Score: 900, MoveCount: 60},
		{Tiles: mustBoard(t, f, [][]int{{256, 2}, {4, 8}}), Score: 2100, MoveCount: 120},
		{Tiles: mustBoard(t, f, [][]int{{2048, 2}, {4, 8}}), Score: 20000, MoveCount: 900, IsWon: true},
		{Tiles: mustBoard(t, f, [][]int{{128, 4}, {2, 8}}), Score: 1000, MoveCount: 80},
	}

	sum := Summarize(states)

	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, 20000, sum.BestScore)
	assert.InDelta(t, 6000.0, sum.MeanScore, 1e-9)
	assert.InDelta(t, 290.0, sum.MeanMoves, 1e-9)
	assert.Equal(t, map[int]int{128: 2, 256: 1, 2048: 1}, sum.MaxTiles)
	assert.Equal(t, []int{128, 256, 2048}, sum.SortedMaxTiles())
}

func TestSummarizeCountsWinsPastWinValue(t *testing.T) {
	f := NewTileFactory()
	states := []GameState{
		{Tiles: mustBoard(t, f, [][]int{{4096, 2}, {4, 8}}), Score: 50000},
		{Tiles: mustBoard(t, f, [][]int{{1024, 2}, {4, 8}}), Score: 9000},
	}

	sum := Summarize(states)

	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, map[int]int{1024: 1, 4096: 1}, sum.MaxTiles)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Games)
	assert.Empty(t, sum.SortedMaxTiles())
}
