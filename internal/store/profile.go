package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// The username is the app's whole identity model: one handle per device,
// read once at startup, written once by the first-run prompt. The single
// profile row is enforced by the id = 1 check.

// Username returns the stored username, or "" if none has been saved yet.
func (s *Store) Username(ctx context.Context) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT username FROM profile WHERE id = 1`).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query username: %w", err)
	}
	return name, nil
}

// SaveUsername persists the username, replacing any previous value.
func (s *Store) SaveUsername(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile (id, username) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET username = excluded.username`,
		username,
	)
	if err != nil {
		return fmt.Errorf("save username: %w", err)
	}
	return nil
}

// ClearProfile removes the stored username and attempt history.
func (s *Store) ClearProfile(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profile`); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}
