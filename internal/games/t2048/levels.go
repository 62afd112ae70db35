// Package t2048 implements the 2048 board-transition engine and the game
// built on it.
//
// The engine is pure: a Board is an immutable N×N snapshot, and Move,
// SpawnTile and PlayMove return new boards along with render hints that
// name the tiles that merged or appeared. Randomness comes from an
// injectable Source so play can be replayed from a seed.
//
// Game adapts the engine to the platform tick loop with a ten-level
// campaign and an endless mode.
package t2048

import "github.com/samber/lo"

// Level is one campaign stage: reach Target to clear it.
type Level struct {
	ID     int
	Name   string
	Target int     // Tile value that clears the level
	Spawn4 float64 // Four-spawn probability before preset adjustment
}

// Levels defines the campaign. Targets past 2048 keep the board and score,
// and later stages spawn more fours.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	return lo.Map(Levels, func(l Level, _ int) string {
		return l.Name
	})
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	return lo.Map(Levels, func(l Level, _ int) int {
		return l.Target
	})
}
