package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyIgnoresNoOpMoves(t *testing.T) {
	e := newTestEngine()
	s := GameState{
		Tiles:     mustBoard(t, e.Tiles(), [][]int{{2, 0}, {0, 0}}),
		Score:     12,
		BestScore: 40,
		MoveCount: 3,
	}

	next := s.Apply(e.PlayMove(s.Tiles, DirLeft))

	assert.Equal(t, s, next)
}

func TestApplyAdvancesState(t *testing.T) {
	e := newTestEngine()
	s := GameState{
		Tiles:     mustBoard(t, e.Tiles(), [][]int{{4, 4}, {0, 0}}),
		Score:     10,
		BestScore: 12,
		MoveCount: 1,
	}

	r := e.PlayMove(s.Tiles, DirLeft)
	next := s.Apply(r)

	assert.Equal(t, 18, next.Score)
	assert.Equal(t, 18, next.BestScore)
	assert.Equal(t, 2, next.MoveCount)
	assert.True(t, BoardsEqual(r.Board, next.Tiles))

	// The receiver is a value and stays as it was
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.MoveCount)
}

func TestApplyKeepsHigherBestScore(t *testing.T) {
	e := newTestEngine()
	s := GameState{
		Tiles:     mustBoard(t, e.Tiles(), [][]int{{2, 2}, {0, 0}}),
		BestScore: 1000,
	}

	next := s.Apply(e.PlayMove(s.Tiles, DirLeft))

	assert.Equal(t, 4, next.Score)
	assert.Equal(t, 1000, next.BestScore)
}

func TestWithBestScore(t *testing.T) {
	s := GameState{BestScore: 50}

	assert.Equal(t, 80, s.WithBestScore(80).BestScore)
	assert.Equal(t, 50, s.WithBestScore(20).BestScore)
}

func TestCheckpointIsIndependent(t *testing.T) {
	e := newTestEngine()
	s := GameState{Tiles: mustBoard(t, e.Tiles(), [][]int{{2, 0}, {0, 4}}), Score: 7}

	cp := s.Checkpoint()

	assert.Equal(t, 7, cp.Score)
	assert.True(t, BoardsEqual(s.Tiles, cp.Board))
	assert.NotSame(t, &s.Tiles.cells[0], &cp.Board.cells[0])
}

func TestEncodeDecodeState(t *testing.T) {
	e := newTestEngine()
	s := GameState{
		Tiles: mustBoard(t, e.Tiles(), [][]int{
			{2, 0, 0, 4},
			{0, 8, 0, 0},
			{0, 0, 0, 0},
			{2048, 0, 0, 2},
		}),
		Score:     5000,
		BestScore: 9000,
		IsWon:     true,
		MoveCount: 321,
	}

	data, err := EncodeState(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "best_score: 9000")

	f := NewTileFactoryWithIDs(SequentialIDs("restored"))
	got, err := DecodeState(data, f)
	require.NoError(t, err)

	assert.Equal(t, s.Tiles.Values(), got.Tiles.Values())
	assert.Equal(t, s.Score, got.Score)
	assert.Equal(t, s.BestScore, got.BestScore)
	assert.Equal(t, s.IsWon, got.IsWon)
	assert.Equal(t, s.MoveCount, got.MoveCount)
	assert.Equal(t, TileID("restored-1"), got.Tiles.At(0, 0).ID)
}

func TestDecodeStateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool // wraps ErrInvalidBoard
	}{
		{"not yaml", "size: [", false},
		{"size mismatch", "size: 3\ncells: [[2, 0], [0, 0]]\n", true},
		{"ragged rows", "size: 2\ncells: [[2, 0], [0]]\n", true},
		{"not a power of two", "size: 2\ncells: [[3, 0], [0, 0]]\n", true},
		{"negative score", "size: 2\ncells: [[2, 0], [0, 0]]\nscore: -1\n", false},
		{"too small", "size: 1\ncells: [[2]]\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState([]byte(tt.data), NewTileFactory())
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidBoard)
			}
		})
	}
}
