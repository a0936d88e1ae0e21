package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one finished quiz attempt as recorded locally. The remote
// service keeps only the latest score per skill; this log is the device's
// own history, rendered by the profile screen.
type Attempt struct {
	ID        string
	Username  string
	Skill     string
	Score     int
	Total     int
	Submitted bool // false when the score upload failed
	TakenAt   time.Time
}

// AppendAttempt records a finished attempt. The ID is assigned here.
func (s *Store) AppendAttempt(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.TakenAt.IsZero() {
		a.TakenAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, username, skill, score, total, submitted, taken_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Skill, a.Score, a.Total, boolToInt(a.Submitted),
		a.TakenAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns up to limit attempts, newest first.
func (s *Store) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, skill, score, total, submitted, taken_at
		 FROM attempts ORDER BY taken_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var submitted int
		var takenAt string
		if err := rows.Scan(&a.ID, &a.Username, &a.Skill, &a.Score, &a.Total, &submitted, &takenAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Submitted = submitted != 0
		if t, err := time.Parse(time.RFC3339, takenAt); err == nil {
			a.TakenAt = t
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
