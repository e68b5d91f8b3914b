package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// BoardEntry is one saved board as stored.
type BoardEntry struct {
	UserID    string
	Mode      string
	Data      []byte
	UpdatedAt time.Time
}

// LoadBoard returns the saved board for (userID, mode), or nil when there is none.
func (s *Store) LoadBoard(userID, mode string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM boards WHERE user_id = ? AND mode = ?",
		userID, mode,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load board: %w", err)
	}
	return data, nil
}

// SaveBoard inserts or replaces the saved board for (userID, mode).
func (s *Store) SaveBoard(userID, mode string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO boards (user_id, mode, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id, mode) DO UPDATE SET
		     data = excluded.data,
		     updated_at = excluded.updated_at`,
		userID, mode, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board: %w", err)
	}
	return nil
}

// DeleteBoard removes the saved board for (userID, mode). Deleting a board
// that does not exist is not an error.
func (s *Store) DeleteBoard(userID, mode string) error {
	_, err := s.db.Exec("DELETE FROM boards WHERE user_id = ? AND mode = ?", userID, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	return nil
}

// ListBoards returns every saved board of a user, ordered by mode.
func (s *Store) ListBoards(userID string) ([]BoardEntry, error) {
	rows, err := s.db.Query(
		`SELECT user_id, mode, data, updated_at
		 FROM boards
		 WHERE user_id = ?
		 ORDER BY mode`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var entries []BoardEntry
	for rows.Next() {
		var e BoardEntry
		var updatedAt any
		if err := rows.Scan(&e.UserID, &e.Mode, &e.Data, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
