package store

import (
	"context"

	"github.com/linkdeck/backend/internal/domain/message"
)

func (s *SQLiteStore) SaveMessage(ctx context.Context, m *message.Message) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (id, name, email, subject, body, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.Name, m.Email, m.Subject, m.Body, string(m.Status), m.CreatedAt,
	)
	return err
}

// UpdateMessageStatus records the outcome of the background email send.
func (s *SQLiteStore) UpdateMessageStatus(ctx context.Context, id string, status message.DeliveryStatus) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE messages SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMessages returns contact messages, newest first.
func (s *SQLiteStore) ListMessages(ctx context.Context) ([]*message.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, subject, body, status, created_at FROM messages ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*message.Message
	for rows.Next() {
		var m message.Message
		var status string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &status, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Status = message.DeliveryStatus(status)
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
