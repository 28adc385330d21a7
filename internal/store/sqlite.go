// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS folders (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    parent_id TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS smart_links (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    link_type TEXT NOT NULL,
    title_type TEXT NOT NULL,
    modified_title TEXT NOT NULL,
    url TEXT NOT NULL,
    folder_id TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trash (
    id TEXT PRIMARY KEY,
    entity_type TEXT NOT NULL,
    original_id TEXT NOT NULL,
    data TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    body TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Order mutations read max(position) and write inside one transaction;
	// a single writer connection keeps them serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scopeWhere builds the WHERE fragment selecting one sibling scope:
// a specific folder, or the root scope when folderID is nil.
func scopeWhere(folderID *string) (string, []any) {
	if folderID == nil {
		return "folder_id IS NULL", nil
	}
	return "folder_id = ?", []any{*folderID}
}

func parentWhere(parentID *string) (string, []any) {
	if parentID == nil {
		return "parent_id IS NULL", nil
	}
	return "parent_id = ?", []any{*parentID}
}

// nextPosition returns 1 + max(position) in the scope, or 0 for an empty
// scope, so every scope's positions are exactly 0..n-1.
func nextPosition(ctx context.Context, q querier, table, where string, args []any) (int, error) {
	var next int
	query := fmt.Sprintf("SELECT COALESCE(MAX(position) + 1, 0) FROM %s WHERE %s", table, where)
	if err := q.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// renumberScope rewrites the positions of a scope to 0..n-1 in the current
// position order, closing any gaps left by a delete or move.
func renumberScope(ctx context.Context, q querier, table, where string, args []any) error {
	query := fmt.Sprintf("SELECT id FROM %s WHERE %s ORDER BY position, rowid", table, where)
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	update := fmt.Sprintf("UPDATE %s SET position = ? WHERE id = ?", table)
	for i, id := range ids {
		if _, err := q.ExecContext(ctx, update, i, id); err != nil {
			return err
		}
	}
	return nil
}

// folderExists checks a folder reference before it is written.
func folderExists(ctx context.Context, q querier, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM folders WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
