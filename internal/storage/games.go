package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SavedGame is an unfinished game kept for resuming.
// A player has at most one saved game per mode.
type SavedGame struct {
	Player  string
	GameID  string
	Level   int
	Data    []byte
	SavedAt time.Time
}

// SaveGame stores g, replacing the player's earlier save of the same mode.
func (s *Store) SaveGame(g SavedGame) error {
	const upsert = `
INSERT INTO saved_games (player, game_id, level, data, saved_at)
VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (player, game_id) DO UPDATE SET
	level = excluded.level,
	data = excluded.data,
	saved_at = excluded.saved_at`

	if _, err := s.db.Exec(upsert, g.Player, g.GameID, g.Level, g.Data); err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the player's save of a mode, or nil if there is none.
func (s *Store) LoadGame(player, gameID string) (*SavedGame, error) {
	g := SavedGame{Player: player, GameID: gameID}
	var savedAt any

	err := s.db.QueryRow(
		"SELECT level, data, saved_at FROM saved_games WHERE player = ? AND game_id = ?",
		player, gameID,
	).Scan(&g.Level, &g.Data, &savedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	g.SavedAt = parseTime(savedAt)
	return &g, nil
}

// DeleteGame removes a save. Deleting a missing save is not an error.
func (s *Store) DeleteGame(player, gameID string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE player = ? AND game_id = ?", player, gameID); err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// SavedGames lists a player's saves, most recent first, without their data.
func (s *Store) SavedGames(player string) ([]SavedGame, error) {
	rows, err := s.db.Query(
		"SELECT game_id, level, saved_at FROM saved_games WHERE player = ? ORDER BY saved_at DESC, game_id",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved games: %w", err)
	}
	defer rows.Close()

	var games []SavedGame
	for rows.Next() {
		g := SavedGame{Player: player}
		var savedAt any
		if err := rows.Scan(&g.GameID, &g.Level, &savedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan saved game: %w", err)
		}
		g.SavedAt = parseTime(savedAt)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}
