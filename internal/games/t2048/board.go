package t2048

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest supported grid dimension.
const MinBoardSize = 2

// BoardSize is the default board dimension.
const BoardSize = 4

// ErrInvalidBoard is returned when a grid cannot form a valid board.
var ErrInvalidBoard = errors.New("t2048: invalid board")

// Position addresses a cell.
type Position struct {
	Row int
	Col int
}

// Board is an immutable N×N snapshot of optional tiles in row-major order.
// Every operation that changes a board returns a new one.
type Board struct {
	size  int
	cells []Tile
}

// InitBoard returns an empty size×size board.
func InitBoard(size int) Board {
	return Board{size: size, cells: make([]Tile, size*size)}
}

// BoardFromValues builds a board from a value grid, allocating a fresh tile
// for every non-zero value. The grid must be square, at least MinBoardSize,
// and hold only zeros or powers of two ≥2.
func BoardFromValues(values [][]int, f *TileFactory) (Board, error) {
	size := len(values)
	if size < MinBoardSize {
		return Board{}, fmt.Errorf("%w: size %d below %d", ErrInvalidBoard, size, MinBoardSize)
	}

	b := InitBoard(size)
	for row, line := range values {
		if len(line) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, row, len(line), size)
		}
		for col, v := range line {
			if v == 0 {
				continue
			}
			if !isTileValue(v) {
				return Board{}, fmt.Errorf("%w: value %d at (%d, %d) is not a power of two", ErrInvalidBoard, v, row, col)
			}
			b.cells[row*size+col] = f.NewTile(v)
		}
	}
	return b, nil
}

// isTileValue reports whether v is a power of two ≥2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// At returns the tile at (row, col). Empty cells return the zero Tile.
func (b Board) At(row, col int) Tile {
	return b.cells[row*b.size+col]
}

// With returns a copy of the board with (row, col) set to t.
func (b Board) With(row, col int, t Tile) Board {
	nb := CloneBoard(b)
	nb.cells[row*b.size+col] = t
	return nb
}

// Row returns a copy of the given row.
func (b Board) Row(row int) []Tile {
	line := make([]Tile, b.size)
	copy(line, b.cells[row*b.size:(row+1)*b.size])
	return line
}

// Column returns a copy of the given column, top to bottom.
func (b Board) Column(col int) []Tile {
	line := make([]Tile, b.size)
	for row := range b.size {
		line[row] = b.cells[row*b.size+col]
	}
	return line
}

// EmptyPositions returns all empty cells in row-major order.
func (b Board) EmptyPositions() []Position {
	var empty []Position
	for i, t := range b.cells {
		if t.IsEmpty() {
			empty = append(empty, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return empty
}

// OccupiedPositions returns all occupied cells in row-major order.
func (b Board) OccupiedPositions() []Position {
	var occupied []Position
	for i, t := range b.cells {
		if !t.IsEmpty() {
			occupied = append(occupied, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return occupied
}

// Tiles returns a copy of the board as a grid of tiles.
func (b Board) Tiles() [][]Tile {
	grid := make([][]Tile, b.size)
	for row := range b.size {
		grid[row] = b.Row(row)
	}
	return grid
}

// Values returns the value grid, with 0 for empty cells.
func (b Board) Values() [][]int {
	grid := make([][]int, b.size)
	for row := range b.size {
		grid[row] = make([]int, b.size)
		for col := range b.size {
			grid[row][col] = b.cells[row*b.size+col].Value
		}
	}
	return grid
}

// String implements fmt.Stringer.
func (b Board) String() string {
	return BoardToString(b)
}

// CloneBoard returns a structural copy of b that shares no storage with it.
func CloneBoard(b Board) Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// BoardsEqual compares occupancy and values only, ignoring tile ids.
func BoardsEqual(a, b Board) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.cells {
		if a.cells[i].Value != b.cells[i].Value {
			return false
		}
	}
	return true
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	nb := InitBoard(b.size)
	for row := range b.size {
		for col := range b.size {
			nb.cells[row*b.size+col] = b.cells[col*b.size+row]
		}
	}
	return nb
}

// reverseRows returns the board with every row mirrored.
func reverseRows(b Board) Board {
	nb := InitBoard(b.size)
	for row := range b.size {
		for col := range b.size {
			nb.cells[row*b.size+col] = b.cells[row*b.size+b.size-1-col]
		}
	}
	return nb
}
