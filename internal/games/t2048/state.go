package t2048

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameState is the session-level snapshot owned by the caller.
// It is replaced, never mutated, when a move is applied.
type GameState struct {
	Tiles      Board
	Score      int
	BestScore  int
	IsGameOver bool
	IsWon      bool
	MoveCount  int
}

// Apply advances the state with the result of PlayMove.
// Results with Moved=false leave the state as it was.
func (s GameState) Apply(r PlayResult) GameState {
	if !r.Moved {
		return s
	}

	next := s
	next.Tiles = r.Board
	next.Score += r.ScoreGain
	next.MoveCount++
	next.IsGameOver = r.GameOver
	next.IsWon = r.Won
	if next.Score > next.BestScore {
		next.BestScore = next.Score
	}
	return next
}

// WithBestScore returns the state with BestScore raised to at least best.
func (s GameState) WithBestScore(best int) GameState {
	if best > s.BestScore {
		s.BestScore = best
	}
	return s
}

// Checkpoint is a storable snapshot of the board and score.
type Checkpoint struct {
	Board Board
	Score int
}

// Checkpoint captures the current board and score.
func (s GameState) Checkpoint() Checkpoint {
	return Checkpoint{Board: CloneBoard(s.Tiles), Score: s.Score}
}

// savedState is the on-disk form of a GameState. Tile ids are not persisted;
// decoding allocates fresh ones.
type savedState struct {
	Size       int     `yaml:"size"`
	Cells      [][]int `yaml:"cells,flow"`
	Score      int     `yaml:"score"`
	BestScore  int     `yaml:"best_score"`
	IsGameOver bool    `yaml:"game_over"`
	IsWon      bool    `yaml:"won"`
	MoveCount  int     `yaml:"move_count"`
}

// EncodeState serializes a state as YAML.
func EncodeState(s GameState) ([]byte, error) {
	data, err := yaml.Marshal(savedState{
		Size:       s.Tiles.Size(),
		Cells:      s.Tiles.Values(),
		Score:      s.Score,
		BestScore:  s.BestScore,
		IsGameOver: s.IsGameOver,
		IsWon:      s.IsWon,
		MoveCount:  s.MoveCount,
	})
	if err != nil {
		return nil, fmt.Errorf("t2048: cannot encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a state produced by EncodeState.
func DecodeState(data []byte, f *TileFactory) (GameState, error) {
	var saved savedState
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return GameState{}, fmt.Errorf("t2048: cannot decode state: %w", err)
	}
	if saved.Size != len(saved.Cells) {
		return GameState{}, fmt.Errorf("%w: size %d does not match %d rows", ErrInvalidBoard, saved.Size, len(saved.Cells))
	}
	if saved.Score < 0 || saved.BestScore < 0 || saved.MoveCount < 0 {
		return GameState{}, fmt.Errorf("t2048: cannot decode state: negative counters")
	}

	board, err := BoardFromValues(saved.Cells, f)
	if err != nil {
		return GameState{}, err
	}

	return GameState{
		Tiles:      board,
		Score:      saved.Score,
		BestScore:  saved.BestScore,
		IsGameOver: saved.IsGameOver,
		IsWon:      saved.IsWon,
		MoveCount:  saved.MoveCount,
	}, nil
}
