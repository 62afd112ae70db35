package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// MoveResult is the output of a single slide, before any spawn.
type MoveResult struct {
	Board     Board
	ScoreGain int
	Moved     bool
	Hints     []RenderHint
}

// Move slides every line of the board in the given direction.
// The returned board never shares storage with the input.
func (e *Engine) Move(board Board, dir Direction) MoveResult {
	var (
		slid   Board
		gain   int
		merged map[TileID]bool
	)

	// Orient so the slide is always toward column 0, then undo.
	switch dir {
	case DirLeft:
		slid, gain, merged = e.slideLeft(board)
	case DirRight:
		slid, gain, merged = e.slideLeft(reverseRows(board))
		slid = reverseRows(slid)
	case DirUp:
		slid, gain, merged = e.slideLeft(transpose(board))
		slid = transpose(slid)
	case DirDown:
		slid, gain, merged = e.slideLeft(reverseRows(transpose(board)))
		slid = transpose(reverseRows(slid))
	default:
		return MoveResult{Board: CloneBoard(board)}
	}

	return MoveResult{
		Board:     slid,
		ScoreGain: gain,
		Moved:     !BoardsEqual(board, slid),
		Hints:     mergeHints(slid, merged),
	}
}

// slideLeft applies the line transform to every row.
func (e *Engine) slideLeft(board Board) (Board, int, map[TileID]bool) {
	out := InitBoard(board.size)
	total := 0
	merged := make(map[TileID]bool)

	for row := range board.size {
		res := e.TransformLine(board.Row(row))
		copy(out.cells[row*board.size:], res.Line)
		total += res.ScoreGain
		for _, id := range res.Merged {
			merged[id] = true
		}
	}

	return out, total, merged
}

// mergeHints locates merged tiles on the final board.
func mergeHints(b Board, merged map[TileID]bool) []RenderHint {
	if len(merged) == 0 {
		return nil
	}
	var hints []RenderHint
	for i, t := range b.cells {
		if !t.IsEmpty() && merged[t.ID] {
			hints = append(hints, RenderHint{
				Row:  i / b.size,
				Col:  i % b.size,
				ID:   t.ID,
				Kind: HintMerged,
			})
		}
	}
	return hints
}
