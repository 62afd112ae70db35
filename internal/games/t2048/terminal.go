package t2048

// WinValue is the tile value that wins the game.
const WinValue = 2048

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, t := range board.cells {
		if t.IsEmpty() {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent occupied tiles share a value.
func HasPossibleMerge(board Board) bool {
	n := board.size
	for y := range n {
		for x := range n {
			val := board.At(y, x).Value
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < n-1 && board.At(y, x+1).Value == val {
				return true
			}
			// Check bottom neighbor
			if y < n-1 && board.At(y+1, x).Value == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(board Board) bool {
	return !CanMove(board)
}

// CheckWin returns true if a WinValue tile is on the board.
func CheckWin(board Board) bool {
	return ContainsValue(board, WinValue)
}

// ContainsValue reports whether any tile has exactly the given value.
func ContainsValue(board Board, value int) bool {
	for _, t := range board.cells {
		if !t.IsEmpty() && t.Value == value {
			return true
		}
	}
	return false
}
