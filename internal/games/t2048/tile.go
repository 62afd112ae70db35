package t2048

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// TileID identifies a tile. IDs are never reused within a factory.
type TileID string

// Tile is a single numbered piece on the board.
// The zero Tile is an empty cell.
type Tile struct {
	ID    TileID
	Value int
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.Value == 0
}

// IDGenerator produces tile identifiers.
type IDGenerator func() TileID

// UUIDs generates random UUID-based tile identifiers.
func UUIDs() IDGenerator {
	return func() TileID {
		return TileID(uuid.NewString())
	}
}

// SequentialIDs generates "<prefix>-1", "<prefix>-2", ...
// Safe for concurrent use.
func SequentialIDs(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() TileID {
		return TileID(fmt.Sprintf("%s-%d", prefix, n.Add(1)))
	}
}

// TileFactory allocates tiles with unique identifiers.
type TileFactory struct {
	nextID IDGenerator
}

// NewTileFactory creates a factory backed by UUIDs.
func NewTileFactory() *TileFactory {
	return &TileFactory{nextID: UUIDs()}
}

// NewTileFactoryWithIDs creates a factory using the given generator.
func NewTileFactoryWithIDs(gen IDGenerator) *TileFactory {
	if gen == nil {
		gen = UUIDs()
	}
	return &TileFactory{nextID: gen}
}

// NewTile creates a tile with a fresh id.
func (f *TileFactory) NewTile(value int) Tile {
	return Tile{ID: f.nextID(), Value: value}
}

// HintKind classifies a render hint.
type HintKind int

const (
	// HintNew marks a tile spawned by the transition.
	HintNew HintKind = iota
	// HintMerged marks a tile produced by a merge.
	HintMerged
)

// String returns the hint name.
func (k HintKind) String() string {
	switch k {
	case HintNew:
		return "new"
	case HintMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// RenderHint tells the presentation layer that a cell changed in a notable
// way during the last transition. Hints are transient and are not part of
// the board.
type RenderHint struct {
	Row  int
	Col  int
	ID   TileID
	Kind HintKind
}
