package t2048

// PlayResult is a full user-facing transition: slide, spawn and terminal
// evaluation.
type PlayResult struct {
	MoveResult
	GameOver bool
	Won      bool
}

// PlayMove slides the board, spawns a tile if anything moved, and evaluates
// the terminal state. A move that changes nothing spawns nothing and scores
// nothing. Finished boards are not rejected.
func (e *Engine) PlayMove(board Board, dir Direction) PlayResult {
	mr := e.Move(board, dir)

	if !mr.Moved {
		mr.ScoreGain = 0
		mr.Hints = nil
		return PlayResult{
			MoveResult: mr,
			GameOver:   IsGameOver(mr.Board),
			Won:        CheckWin(mr.Board),
		}
	}

	spawned, hint, ok := e.spawn(mr.Board)
	mr.Board = spawned
	if ok {
		mr.Hints = append(mr.Hints, hint)
	}

	return PlayResult{
		MoveResult: mr,
		GameOver:   IsGameOver(spawned),
		Won:        CheckWin(spawned),
	}
}

// InitBoard returns an empty size×size board.
func (e *Engine) InitBoard(size int) Board {
	return InitBoard(size)
}

// InitializeGameBoard returns a board with two spawned tiles.
func (e *Engine) InitializeGameBoard(size int) Board {
	board := InitBoard(size)
	board = e.SpawnTile(board)
	board = e.SpawnTile(board)
	return board
}

// InitializeGameState returns a fresh session state.
func (e *Engine) InitializeGameState(size int) GameState {
	return GameState{
		Tiles: e.InitializeGameBoard(size),
	}
}
