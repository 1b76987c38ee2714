package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one recorded cross solve.
type HistoryEntry struct {
	HistoryID  string
	PuzzleName string
	CrossColor string
	Mode       string
	Superhuman bool
	Moves      string
	MoveCount  int
	CreatedAt  time.Time
}

// HistoryRepository records solved crosses for later review.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record stores one solve and returns its ID.
func (r *HistoryRepository) Record(puzzleName, crossColor, mode string, superhuman bool, moves string, moveCount int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solve_history (history_id, puzzle_name, cross_color, mode, superhuman, moves, move_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, puzzleName, crossColor, mode, superhuman, moves, moveCount, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// Recent returns the latest solves, newest first.
func (r *HistoryRepository) Recent(limit int) ([]HistoryEntry, error) {
	rows, err := r.db.Query(`
		SELECT history_id, puzzle_name, cross_color, mode, superhuman, moves, move_count, created_at
		FROM solve_history
		ORDER BY created_at DESC, history_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var created string
		if err := rows.Scan(&e.HistoryID, &e.PuzzleName, &e.CrossColor, &e.Mode, &e.Superhuman, &e.Moves, &e.MoveCount, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("bad created_at for %s: %w", e.HistoryID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
