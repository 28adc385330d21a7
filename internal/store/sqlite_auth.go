package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/linkdeck/backend/internal/domain/user"
)

// SaveUser inserts a new user. A taken username is a conflict.
func (s *SQLiteStore) SaveUser(ctx context.Context, u *user.User) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE username = ?", u.Username).Scan(&one)
	if err == nil {
		return ErrConflict
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)",
		u.ID, u.Username, u.PasswordHash,
	)
	return err
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?", username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveSession persists an opaque session token with its expiry.
func (s *SQLiteStore) SaveSession(ctx context.Context, token, userID string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)",
		token, userID, expiresAt,
	)
	return err
}

// GetSessionUser resolves a session token to its user id. Expired sessions
// are removed on sight and reported as not found.
func (s *SQLiteStore) GetSessionUser(ctx context.Context, token string) (string, error) {
	var userID string
	var expiresAt time.Time
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, expires_at FROM sessions WHERE token = ?", token,
	).Scan(&userID, &expiresAt)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if time.Now().After(expiresAt) {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
		return "", ErrNotFound
	}
	return userID, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}
