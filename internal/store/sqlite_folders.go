package store

import (
	"context"
	"database/sql"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/trash"
)

func scanFolder(row interface{ Scan(...any) error }) (*folder.Folder, error) {
	var f folder.Folder
	var parentID sql.NullString
	if err := row.Scan(&f.ID, &f.Title, &parentID, &f.Position); err != nil {
		return nil, err
	}
	if parentID.Valid {
		f.ParentID = &parentID.String
	}
	return &f, nil
}

// SaveFolder inserts a folder at the end of its parent scope. A parent
// reference, if present, must point at an existing folder.
func (s *SQLiteStore) SaveFolder(ctx context.Context, f *folder.Folder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if f.ParentID != nil {
		ok, err := folderExists(ctx, tx, *f.ParentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
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
	return tx.Commit()
}

func (s *SQLiteStore) GetFolder(ctx context.Context, id string) (*folder.Folder, error) {
	f, err := scanFolder(s.db.QueryRowContext(ctx,
		"SELECT id, title, parent_id, position FROM folders WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListFolders returns all folders ordered by position within each scope.
func (s *SQLiteStore) ListFolders(ctx context.Context) ([]*folder.Folder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, parent_id, position FROM folders ORDER BY parent_id, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []*folder.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// RenameFolder updates only the title.
func (s *SQLiteStore) RenameFolder(ctx context.Context, id, title string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE folders SET title = ? WHERE id = ?", title, id)
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

// ReparentFolder moves a folder under newParentID (nil = root). The folder's
// position is recomputed in the new scope, not carried over, and the move is
// rejected if it would create a cycle.
func (s *SQLiteStore) ReparentFolder(ctx context.Context, id string, newParentID *string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	f, err := scanFolder(tx.QueryRowContext(ctx,
		"SELECT id, title, parent_id, position FROM folders WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if newParentID != nil {
		parents, err := loadParentMap(ctx, tx)
		if err != nil {
			return err
		}
		if _, ok := parents[*newParentID]; !ok {
			return ErrInvalidReference
		}
		if folder.WouldCycle(id, *newParentID, parents) {
			return ErrInvalidReference
		}
	}

	where, args := parentWhere(newParentID)
	newPos, err := nextPosition(ctx, tx, "folders", where, args)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE folders SET parent_id = ?, position = ? WHERE id = ?",
		newParentID, newPos, id,
	)
	if err != nil {
		return err
	}

	oldWhere, oldArgs := parentWhere(f.ParentID)
	if err := renumberScope(ctx, tx, "folders", oldWhere, oldArgs); err != nil {
		return err
	}

	return tx.Commit()
}

// SetFolderPosition moves a folder within its sibling scope using the same
// shift policy as SetLinkPosition.
func (s *SQLiteStore) SetFolderPosition(ctx context.Context, id string, newPos int) error {
	if newPos < 0 {
		return ErrInvalidOrder
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	f, err := scanFolder(tx.QueryRowContext(ctx,
		"SELECT id, title, parent_id, position FROM folders WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	where, args := parentWhere(f.ParentID)
	var count int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM folders WHERE "+where, args...).Scan(&count); err != nil {
		return err
	}
	if newPos >= count {
		return ErrInvalidOrder
	}
	if newPos == f.Position {
		return tx.Commit()
	}

	if newPos > f.Position {
		_, err = tx.ExecContext(ctx,
			"UPDATE folders SET position = position - 1 WHERE "+where+" AND position > ? AND position <= ?",
			append(args, f.Position, newPos)...)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE folders SET position = position + 1 WHERE "+where+" AND position >= ? AND position < ?",
			append(args, newPos, f.Position)...)
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE folders SET position = ? WHERE id = ?", newPos, id); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteFolder removes a folder according to mode:
//
//   - detach: delete the folder and all descendant folders; links anywhere
//     in the subtree are re-homed to root with fresh appended positions.
//   - cascade: delete the subtree; every link and folder in it is
//     snapshotted to trash first.
//   - single: delete only the target; its direct links are trashed and its
//     child folders are promoted to the target's former parent.
//
// Affected ids are collected before anything is mutated, and all writes
// happen in one transaction, so a failed delete leaves prior state intact.
func (s *SQLiteStore) DeleteFolder(ctx context.Context, id string, mode folder.DeleteMode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	target, err := scanFolder(tx.QueryRowContext(ctx,
		"SELECT id, title, parent_id, position FROM folders WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	parents, err := loadParentMap(ctx, tx)
	if err != nil {
		return err
	}
	subtree := folder.Subtree(id, parents)

	switch mode {
	case folder.DeleteDetach:
		if err := s.detachSubtreeLinks(ctx, tx, subtree); err != nil {
			return err
		}
		if err := deleteFolders(ctx, tx, subtree); err != nil {
			return err
		}

	case folder.DeleteCascade:
		for _, folderID := range subtree {
			if err := s.trashFolderLinks(ctx, tx, folderID); err != nil {
				return err
			}
		}
		for _, folderID := range subtree {
			f, err := scanFolder(tx.QueryRowContext(ctx,
				"SELECT id, title, parent_id, position FROM folders WHERE id = ?", folderID))
			if err != nil {
				return err
			}
			entry, err := trash.NewFolderEntry(f)
			if err != nil {
				return err
			}
			if err := insertTrashEntry(ctx, tx, entry); err != nil {
				return err
			}
		}
		if err := deleteFolders(ctx, tx, subtree); err != nil {
			return err
		}

	case folder.DeleteSingle:
		if err := s.trashFolderLinks(ctx, tx, id); err != nil {
			return err
		}
		// Promote children to the target's former parent, appended after
		// that scope's existing folders.
		where, args := parentWhere(target.ParentID)
		base, err := nextPosition(ctx, tx, "folders", where, args)
		if err != nil {
			return err
		}
		childRows, err := tx.QueryContext(ctx,
			"SELECT id FROM folders WHERE parent_id = ? ORDER BY position", id)
		if err != nil {
			return err
		}
		var children []string
		for childRows.Next() {
			var childID string
			if err := childRows.Scan(&childID); err != nil {
				childRows.Close()
				return err
			}
			children = append(children, childID)
		}
		childRows.Close()
		if err := childRows.Err(); err != nil {
			return err
		}
		for i, childID := range children {
			if _, err := tx.ExecContext(ctx,
				"UPDATE folders SET parent_id = ?, position = ? WHERE id = ?",
				target.ParentID, base+i, childID); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id); err != nil {
			return err
		}

	default:
		return ErrInvalidOrder
	}

	// Compact the scope the target folder occupied.
	where, args := parentWhere(target.ParentID)
	if err := renumberScope(ctx, tx, "folders", where, args); err != nil {
		return err
	}

	return tx.Commit()
}

// loadParentMap reads the whole folder forest as id → parent id.
func loadParentMap(ctx context.Context, q querier) (map[string]*string, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, parent_id FROM folders")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parents := make(map[string]*string)
	for rows.Next() {
		var id string
		var parentID sql.NullString
		if err := rows.Scan(&id, &parentID); err != nil {
			return nil, err
		}
		if parentID.Valid {
			p := parentID.String
			parents[id] = &p
		} else {
			parents[id] = nil
		}
	}
	return parents, rows.Err()
}

// detachSubtreeLinks re-homes every link filed in any of folderIDs to the
// root scope, appending them after the existing root links.
func (s *SQLiteStore) detachSubtreeLinks(ctx context.Context, tx *sql.Tx, folderIDs []string) error {
	rootNext, err := nextPosition(ctx, tx, "smart_links", "folder_id IS NULL", nil)
	if err != nil {
		return err
	}
	for _, folderID := range folderIDs {
		rows, err := tx.QueryContext(ctx,
			"SELECT id FROM smart_links WHERE folder_id = ? ORDER BY position", folderID)
		if err != nil {
			return err
		}
		var linkIDs []string
		for rows.Next() {
			var linkID string
			if err := rows.Scan(&linkID); err != nil {
				rows.Close()
				return err
			}
			linkIDs = append(linkIDs, linkID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		for _, linkID := range linkIDs {
			if _, err := tx.ExecContext(ctx,
				"UPDATE smart_links SET folder_id = NULL, position = ? WHERE id = ?",
				rootNext, linkID); err != nil {
				return err
			}
			rootNext++
		}
	}
	return nil
}

// trashFolderLinks snapshots and deletes the links filed directly in folderID.
func (s *SQLiteStore) trashFolderLinks(ctx context.Context, tx *sql.Tx, folderID string) error {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM smart_links WHERE folder_id = ? ORDER BY position", folderID)
	if err != nil {
		return err
	}
	links, err := scanLinks(rows)
	if err != nil {
		return err
	}
	for _, l := range links {
		entry, err := trash.NewLinkEntry(l)
		if err != nil {
			return err
		}
		if err := insertTrashEntry(ctx, tx, entry); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM smart_links WHERE id = ?", l.ID); err != nil {
			return err
		}
	}
	return nil
}

func deleteFolders(ctx context.Context, tx *sql.Tx, ids []string) error {
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id); err != nil {
			return err
		}
	}
	return nil
}
