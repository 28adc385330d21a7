package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/trash"
	"github.com/linkdeck/backend/internal/store"
)

func TestSaveFolder_AppendsPerScope(t *testing.T) {
	s := newTestStore(t)

	a := mustFolder(t, s, "A", nil)
	b := mustFolder(t, s, "B", nil)
	child := mustFolder(t, s, "A-child", &a.ID)

	if a.Position != 0 || b.Position != 1 {
		t.Errorf("expected root folders at 0,1, got %d,%d", a.Position, b.Position)
	}
	if child.Position != 0 {
		t.Errorf("expected child at 0 in its own scope, got %d", child.Position)
	}
}

func TestSaveFolder_UnknownParent(t *testing.T) {
	s := newTestStore(t)

	missing := "no-such-folder"
	f, err := folder.New("orphan", &missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveFolder(context.Background(), f); !errors.Is(err, store.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestReparentFolder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := mustFolder(t, s, "A", nil)
	b := mustFolder(t, s, "B", nil)
	c := mustFolder(t, s, "C", nil)

	if err := s.ReparentFolder(ctx, a.ID, &b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved, err := s.GetFolder(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.ParentID == nil || *moved.ParentID != b.ID {
		t.Errorf("expected parent %s, got %v", b.ID, moved.ParentID)
	}
	if moved.Position != 0 {
		t.Errorf("expected fresh position 0 in the new scope, got %d", moved.Position)
	}

	// The root scope closed the gap A left.
	bAfter, _ := s.GetFolder(ctx, b.ID)
	cAfter, _ := s.GetFolder(ctx, c.ID)
	if bAfter.Position != 0 || cAfter.Position != 1 {
		t.Errorf("expected root folders renumbered to 0,1, got %d,%d", bAfter.Position, cAfter.Position)
	}
}

func TestReparentFolder_RejectsCycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := mustFolder(t, s, "A", nil)
	b := mustFolder(t, s, "B", &a.ID)
	c := mustFolder(t, s, "C", &b.ID)

	if err := s.ReparentFolder(ctx, a.ID, &c.ID); !errors.Is(err, store.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference for cycle, got %v", err)
	}
	if err := s.ReparentFolder(ctx, a.ID, &a.ID); !errors.Is(err, store.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference for self-parent, got %v", err)
	}

	// Rejected moves leave the hierarchy untouched.
	got, err := s.GetFolder(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ParentID != nil {
		t.Errorf("expected A still at root, got parent %v", *got.ParentID)
	}
}

func TestSetFolderPosition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := mustFolder(t, s, "A", nil)
	b := mustFolder(t, s, "B", nil)
	c := mustFolder(t, s, "C", nil)

	if err := s.SetFolderPosition(ctx, c.ID, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	folders, err := s.ListFolders(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byID := make(map[string]int)
	for _, f := range folders {
		byID[f.ID] = f.Position
	}
	if byID[c.ID] != 0 || byID[a.ID] != 1 || byID[b.ID] != 2 {
		t.Errorf("expected order C,A,B, got positions %d,%d,%d", byID[c.ID], byID[a.ID], byID[b.ID])
	}
}

func TestDeleteFolder_Detach(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := mustFolder(t, s, "A", nil)
	sub := mustFolder(t, s, "A-sub", &a.ID)
	rootLink := mustLink(t, s, "root-link", nil)
	inA := mustLink(t, s, "in-a", &a.ID)
	inSub := mustLink(t, s, "in-sub", &sub.ID)

	if err := s.DeleteFolder(ctx, a.ID, folder.DeleteDetach); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both folders are gone.
	if _, err := s.GetFolder(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected folder A deleted, got %v", err)
	}
	if _, err := s.GetFolder(ctx, sub.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected subfolder deleted, got %v", err)
	}

	// All three links survive at root with dense appended positions.
	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("expected 3 root links, got %d", len(links))
	}
	assertDense(t, links)
	positions := positionsOf(t, links)
	if positions[rootLink.ID] != 0 {
		t.Errorf("expected pre-existing root link first, got %d", positions[rootLink.ID])
	}
	if positions[inA.ID] != 1 || positions[inSub.ID] != 2 {
		t.Errorf("expected detached links appended at 1,2, got %d,%d", positions[inA.ID], positions[inSub.ID])
	}

	// Detach does not write trash.
	entries, err := s.ListTrash(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty trash after detach, got %d entries", len(entries))
	}
}

func TestDeleteFolder_Cascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := mustFolder(t, s, "A", nil)
	sub := mustFolder(t, s, "A-sub", &a.ID)
	inA := mustLink(t, s, "in-a", &a.ID)
	inSub := mustLink(t, s, "in-sub", &sub.ID)
	outside := mustLink(t, s, "outside", nil)

	if err := s.DeleteFolder(ctx, a.ID, folder.DeleteCascade); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Everything inside the subtree is gone; the outside link survives.
	for _, id := range []string{inA.ID, inSub.ID} {
		if _, err := s.GetLink(ctx, id); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("expected link %s deleted, got %v", id, err)
		}
	}
	if _, err := s.GetLink(ctx, outside.ID); err != nil {
		t.Errorf("expected outside link untouched, got %v", err)
	}

	// Trash holds snapshots for two folders and two links.
	entries, err := s.ListTrash(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var folders, links int
	trashed := make(map[string]bool)
	for _, e := range entries {
		trashed[e.OriginalID] = true
		switch e.EntityType {
		case trash.EntityFolder:
			folders++
		case trash.EntitySmartLink:
			links++
		}
	}
	if folders != 2 || links != 2 {
		t.Errorf("expected 2 folder and 2 link entries, got %d and %d", folders, links)
	}
	for _, id := range []string{a.ID, sub.ID, inA.ID, inSub.ID} {
		if !trashed[id] {
			t.Errorf("expected trash entry for %s", id)
		}
	}
}

func TestDeleteFolder_SinglePromotesChildren(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	parent := mustFolder(t, s, "Parent", nil)
	target := mustFolder(t, s, "Target", &parent.ID)
	sibling := mustFolder(t, s, "Sibling", &parent.ID)
	child1 := mustFolder(t, s, "Child1", &target.ID)
	child2 := mustFolder(t, s, "Child2", &target.ID)
	targetLink := mustLink(t, s, "in-target", &target.ID)
	childLink := mustLink(t, s, "in-child", &child1.ID)

	if err := s.DeleteFolder(ctx, target.ID, folder.DeleteSingle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Children now hang off the target's former parent.
	for _, id := range []string{child1.ID, child2.ID} {
		f, err := s.GetFolder(ctx, id)
		if err != nil {
			t.Fatalf("expected promoted child %s to survive, got %v", id, err)
		}
		if f.ParentID == nil || *f.ParentID != parent.ID {
			t.Errorf("expected child %s promoted under %s, got %v", id, parent.ID, f.ParentID)
		}
	}

	// The promoted children come after the surviving sibling, and the
	// scope is dense.
	sibAfter, _ := s.GetFolder(ctx, sibling.ID)
	c1After, _ := s.GetFolder(ctx, child1.ID)
	c2After, _ := s.GetFolder(ctx, child2.ID)
	if sibAfter.Position != 0 || c1After.Position != 1 || c2After.Position != 2 {
		t.Errorf("expected positions 0,1,2 for sibling and promoted children, got %d,%d,%d",
			sibAfter.Position, c1After.Position, c2After.Position)
	}

	// The target's direct link was trashed; the grandchild's link was not.
	if _, err := s.GetLink(ctx, targetLink.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected target's link trashed, got %v", err)
	}
	if _, err := s.GetLink(ctx, childLink.ID); err != nil {
		t.Errorf("expected grandchild link untouched, got %v", err)
	}

	entries, err := s.ListTrash(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].OriginalID != targetLink.ID {
		t.Errorf("expected exactly the target's link in trash, got %d entries", len(entries))
	}
}

func TestDeleteFolder_NotFound(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteFolder(context.Background(), "no-such-folder", folder.DeleteDetach); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// Full walkthrough: file a link in a folder, detach-delete that folder,
// cascade-delete another, then restore the cascaded link and watch its
// dangling folder reference get cleared.
func TestFolderAndTrash_Walkthrough(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	folderA := mustFolder(t, s, "A", nil)
	folderB := mustFolder(t, s, "B", nil)
	link1 := mustLink(t, s, "L1", &folderB.ID)

	// Detach-delete A: no links inside, no trash written.
	if err := s.DeleteFolder(ctx, folderA.ID, folder.DeleteDetach); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cascade-delete B: both B and L1 land in trash.
	if err := s.DeleteFolder(ctx, folderB.ID, folder.DeleteCascade); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.ListTrash(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var linkEntry *trash.Entry
	for _, e := range entries {
		if e.OriginalID == link1.ID {
			linkEntry = e
		}
	}
	if linkEntry == nil {
		t.Fatal("expected a trash entry for L1")
	}

	// Restore L1. Folder B no longer exists, so the link comes back at
	// root, first position.
	if err := s.RestoreTrashEntry(ctx, linkEntry.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, err := s.GetLink(ctx, link1.ID)
	if err != nil {
		t.Fatalf("expected restored link, got %v", err)
	}
	if restored.FolderID != nil {
		t.Errorf("expected dangling folder reference cleared, got %v", *restored.FolderID)
	}
	if restored.Position != 0 {
		t.Errorf("expected position 0 at root, got %d", restored.Position)
	}
}
