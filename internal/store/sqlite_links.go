package store

import (
	"context"
	"database/sql"

	"github.com/linkdeck/backend/internal/domain/smartlink"
	"github.com/linkdeck/backend/internal/domain/trash"
)

const linkColumns = "id, title, link_type, title_type, modified_title, url, folder_id, position"

func scanLink(row interface{ Scan(...any) error }) (*smartlink.SmartLink, error) {
	var l smartlink.SmartLink
	var folderID sql.NullString
	err := row.Scan(&l.ID, &l.Title, &l.LinkType, &l.TitleType, &l.ModifiedTitle, &l.URL, &folderID, &l.Position)
	if err != nil {
		return nil, err
	}
	if folderID.Valid {
		l.FolderID = &folderID.String
	}
	return &l, nil
}

func scanLinks(rows *sql.Rows) ([]*smartlink.SmartLink, error) {
	defer rows.Close()
	var links []*smartlink.SmartLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// SaveLink inserts a link at the end of its scope. A folder reference,
// if present, must point at an existing folder.
func (s *SQLiteStore) SaveLink(ctx context.Context, l *smartlink.SmartLink) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if l.FolderID != nil {
		ok, err := folderExists(ctx, tx, *l.FolderID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
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
	return tx.Commit()
}

func (s *SQLiteStore) GetLink(ctx context.Context, id string) (*smartlink.SmartLink, error) {
	l, err := scanLink(s.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListAllLinks returns every link across all scopes (the admin view).
func (s *SQLiteStore) ListAllLinks(ctx context.Context) ([]*smartlink.SmartLink, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links ORDER BY folder_id, position")
	if err != nil {
		return nil, err
	}
	return scanLinks(rows)
}

// ListRootLinks returns links that are not filed in any folder.
func (s *SQLiteStore) ListRootLinks(ctx context.Context) ([]*smartlink.SmartLink, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE folder_id IS NULL ORDER BY position")
	if err != nil {
		return nil, err
	}
	return scanLinks(rows)
}

// ListLinksByFolder returns the links of one folder sorted by position.
func (s *SQLiteStore) ListLinksByFolder(ctx context.Context, folderID string) ([]*smartlink.SmartLink, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE folder_id = ? ORDER BY position", folderID)
	if err != nil {
		return nil, err
	}
	return scanLinks(rows)
}

// UpdateLink rewrites a link's content fields. Folder changes go through
// MoveLink so position bookkeeping stays in one place.
func (s *SQLiteStore) UpdateLink(ctx context.Context, l *smartlink.SmartLink) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE smart_links SET title = ?, link_type = ?, title_type = ?, modified_title = ?, url = ? WHERE id = ?",
		l.Title, l.LinkType, l.TitleType, l.ModifiedTitle, l.URL, l.ID,
	)
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

// MoveLink re-files a link into destFolderID (nil = root), appending it at
// the end of the destination scope and compacting the scope it left.
func (s *SQLiteStore) MoveLink(ctx context.Context, id string, destFolderID *string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	l, err := scanLink(tx.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if destFolderID != nil {
		ok, err := folderExists(ctx, tx, *destFolderID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
		}
	}

	destWhere, destArgs := scopeWhere(destFolderID)
	newPos, err := nextPosition(ctx, tx, "smart_links", destWhere, destArgs)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE smart_links SET folder_id = ?, position = ? WHERE id = ?",
		destFolderID, newPos, id,
	)
	if err != nil {
		return err
	}

	// Close the gap in the scope the link left.
	oldWhere, oldArgs := scopeWhere(l.FolderID)
	if err := renumberScope(ctx, tx, "smart_links", oldWhere, oldArgs); err != nil {
		return err
	}

	return tx.Commit()
}

// SetLinkPosition moves a link to a new position within its scope using a
// shift: every sibling between the old and new position moves by one, so
// the scope stays dense with no duplicates.
func (s *SQLiteStore) SetLinkPosition(ctx context.Context, id string, newPos int) error {
	if newPos < 0 {
		return ErrInvalidOrder
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	l, err := scanLink(tx.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	where, args := scopeWhere(l.FolderID)
	var count int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM smart_links WHERE "+where, args...).Scan(&count); err != nil {
		return err
	}
	if newPos >= count {
		return ErrInvalidOrder
	}
	if newPos == l.Position {
		return tx.Commit()
	}

	if newPos > l.Position {
		// Moving down: siblings in (old, new] shift up by one.
		_, err = tx.ExecContext(ctx,
			"UPDATE smart_links SET position = position - 1 WHERE "+where+" AND position > ? AND position <= ?",
			append(args, l.Position, newPos)...)
	} else {
		// Moving up: siblings in [new, old) shift down by one.
		_, err = tx.ExecContext(ctx,
			"UPDATE smart_links SET position = position + 1 WHERE "+where+" AND position >= ? AND position < ?",
			append(args, newPos, l.Position)...)
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE smart_links SET position = ? WHERE id = ?", newPos, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ReorderLinks applies a full desired ordering to one scope. The updates
// must cover exactly the scope's links with positions 0..n-1.
func (s *SQLiteStore) ReorderLinks(ctx context.Context, folderID *string, updates []smartlink.PositionUpdate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	where, args := scopeWhere(folderID)
	rows, err := tx.QueryContext(ctx,
		"SELECT id FROM smart_links WHERE "+where, args...)
	if err != nil {
		return err
	}
	siblingIDs := []string{}
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return err
		}
		siblingIDs = append(siblingIDs, sid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	inScope := make(map[string]bool, len(siblingIDs))
	for _, sid := range siblingIDs {
		inScope[sid] = true
	}
	for _, u := range updates {
		if !inScope[u.ID] {
			return ErrNotFound
		}
	}
	if err := smartlink.ValidatePermutation(updates, siblingIDs); err != nil {
		return ErrInvalidOrder
	}

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx,
			"UPDATE smart_links SET position = ? WHERE id = ?", u.Position, u.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteLink snapshots the link to trash, deletes it, and compacts the
// scope it occupied. Trash is written before the delete so a crash between
// the two steps cannot lose the snapshot.
func (s *SQLiteStore) DeleteLink(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	l, err := scanLink(tx.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	entry, err := trash.NewLinkEntry(l)
	if err != nil {
		return err
	}
	if err := insertTrashEntry(ctx, tx, entry); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM smart_links WHERE id = ?", id); err != nil {
		return err
	}

	where, args := scopeWhere(l.FolderID)
	if err := renumberScope(ctx, tx, "smart_links", where, args); err != nil {
		return err
	}

	return tx.Commit()
}
