package store

import (
	"context"
	"database/sql"

	"github.com/linkdeck/backend/internal/domain/trash"
)

func insertTrashEntry(ctx context.Context, q querier, e *trash.Entry) error {
	_, err := q.ExecContext(ctx,
		"INSERT INTO trash (id, entity_type, original_id, data, created_at) VALUES (?, ?, ?, ?, ?)",
		e.ID, string(e.EntityType), e.OriginalID, string(e.Data), e.CreatedAt,
	)
	return err
}

func scanTrashEntry(row interface{ Scan(...any) error }) (*trash.Entry, error) {
	var e trash.Entry
	var entityType, data string
	if err := row.Scan(&e.ID, &entityType, &e.OriginalID, &data, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.EntityType = trash.EntityType(entityType)
	e.Data = []byte(data)
	return &e, nil
}

// ListTrash returns all trash entries, newest first.
func (s *SQLiteStore) ListTrash(ctx context.Context) ([]*trash.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, entity_type, original_id, data, created_at FROM trash ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*trash.Entry
	for rows.Next() {
		e, err := scanTrashEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) GetTrashEntry(ctx context.Context, id string) (*trash.Entry, error) {
	e, err := scanTrashEntry(s.db.QueryRowContext(ctx,
		"SELECT id, entity_type, original_id, data, created_at FROM trash WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// RestoreTrashEntry recreates the snapshotted entity under its original id.
// Dangling folder references are cleared rather than restored, the entity is
// appended at the end of whatever scope it ends up in, and the trash entry
// is removed — all in one transaction. Restoring over a live entity fails
// with ErrConflict and changes nothing.
func (s *SQLiteStore) RestoreTrashEntry(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	e, err := scanTrashEntry(tx.QueryRowContext(ctx,
		"SELECT id, entity_type, original_id, data, created_at FROM trash WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	switch e.EntityType {
	case trash.EntitySmartLink:
		l, err := e.SmartLink()
		if err != nil {
			return err
		}
		var one int
		err = tx.QueryRowContext(ctx, "SELECT 1 FROM smart_links WHERE id = ?", l.ID).Scan(&one)
		if err == nil {
			return ErrConflict
		}
		if err != sql.ErrNoRows {
			return err
		}
		if l.FolderID != nil {
			ok, err := folderExists(ctx, tx, *l.FolderID)
			if err != nil {
				return err
			}
			if !ok {
				l.FolderID = nil
			}
		}
		where, args := scopeWhere(l.FolderID)
		l.Position, err = nextPosition(ctx, tx, "smart_links", where, args)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO smart_links ("+linkColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			l.ID, l.Title, l.LinkType, l.TitleType, l.ModifiedTitle, l.URL, l.FolderID, l.Position,
		)
		if err != nil {
			return err
		}

	case trash.EntityFolder:
		f, err := e.Folder()
		if err != nil {
			return err
		}
		var one int
		err = tx.QueryRowContext(ctx, "SELECT 1 FROM folders WHERE id = ?", f.ID).Scan(&one)
		if err == nil {
			return ErrConflict
		}
		if err != sql.ErrNoRows {
			return err
		}
		if f.ParentID != nil {
			ok, err := folderExists(ctx, tx, *f.ParentID)
			if err != nil {
				return err
			}
			if !ok {
				f.ParentID = nil
			}
		}
		where, args := parentWhere(f.ParentID)
		f.Position, err = nextPosition(ctx, tx, "folders", where, args)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO folders (id, title, parent_id, position) VALUES (?, ?, ?, ?)",
			f.ID, f.Title, f.ParentID, f.Position,
		)
		if err != nil {
			return err
		}

	default:
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM trash WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteTrashEntry permanently removes a trash entry. Irreversible.
func (s *SQLiteStore) DeleteTrashEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trash WHERE id = ?", id)
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
