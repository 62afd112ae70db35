package t2048

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// Stats summarizes a board.
type Stats struct {
	MaxTile   int
	TotalSum  int
	TileCount int
	GridSize  int
}

// TilesFlat returns the occupied tiles in row-major order.
func TilesFlat(board Board) []Tile {
	return lo.Filter(board.cells, func(t Tile, _ int) bool {
		return !t.IsEmpty()
	})
}

// TileCount returns the number of occupied cells.
func TileCount(board Board) int {
	return lo.CountBy(board.cells, func(t Tile) bool {
		return !t.IsEmpty()
	})
}

// MaxTile returns the maximum tile value on the board, or 0 if empty.
func MaxTile(board Board) int {
	return lo.Max(lo.Map(board.cells, func(t Tile, _ int) int {
		return t.Value
	}))
}

// CalculateStats computes summary statistics for a board.
func CalculateStats(board Board) Stats {
	tiles := TilesFlat(board)
	return Stats{
		MaxTile: MaxTile(board),
		TotalSum: lo.SumBy(tiles, func(t Tile) int {
			return t.Value
		}),
		TileCount: len(tiles),
		GridSize:  board.Size(),
	}
}

// FormatScore renders a score with thousands separators.
func FormatScore(score int) string {
	return humanize.Comma(int64(score))
}

// BoardToString renders a board for debugging: one line per row, cells
// right-aligned in five columns and separated by '|', empty cells as dots.
func BoardToString(board Board) string {
	rows := make([]string, board.Size())
	for row := range board.Size() {
		cells := make([]string, board.Size())
		for col := range board.Size() {
			t := board.At(row, col)
			if t.IsEmpty() {
				cells[col] = "....."
				continue
			}
			cells[col] = fmt.Sprintf("%5d", t.Value)
		}
		rows[row] = strings.Join(cells, "|")
	}
	return strings.Join(rows, "\n")
}
