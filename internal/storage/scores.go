package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	UserID    string
	Score     int
	Elapsed   int // seconds
	CreatedAt time.Time
}

// SaveScore records a final session score for the given mode.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(mode, userID string, score, elapsedSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (mode, user_id, score, elapsed_secs) VALUES (?, ?, ?, ?)",
		mode, userID, score, elapsedSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordScore implements jungle.ScoreRecorder.
func (s *Store) RecordScore(userID, mode string, score, elapsedSecs int) error {
	_, err := s.SaveScore(mode, userID, score, elapsedSecs)
	return err
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending; faster sessions win ties.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, user_id, score, elapsed_secs, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.UserID, &e.Score, &e.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// ModeStats contains aggregated leaderboard statistics for a mode.
type ModeStats struct {
	Mode         string
	Sessions     int
	HighScore    int
	AvgScore     float64
	TotalSeconds int64
	LastPlayed   time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(elapsed_secs), 0)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.Sessions, &stats.HighScore, &stats.AvgScore, &stats.TotalSeconds)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE mode = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
