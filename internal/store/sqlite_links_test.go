package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/linkdeck/backend/internal/domain/smartlink"
	"github.com/linkdeck/backend/internal/store"
)

func TestSaveLink_AppendsAtEndOfScope(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)

	if l1.Position != 0 || l2.Position != 1 || l3.Position != 2 {
		t.Errorf("expected positions 0,1,2, got %d,%d,%d", l1.Position, l2.Position, l3.Position)
	}

	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDense(t, links)
}

func TestSaveLink_ScopesAreIndependent(t *testing.T) {
	s := newTestStore(t)

	f := mustFolder(t, s, "Albums", nil)
	root := mustLink(t, s, "root-link", nil)
	filed := mustLink(t, s, "filed-link", &f.ID)

	if root.Position != 0 {
		t.Errorf("expected root link at 0, got %d", root.Position)
	}
	if filed.Position != 0 {
		t.Errorf("expected filed link at 0 in its own scope, got %d", filed.Position)
	}
}

func TestSaveLink_UnknownFolder(t *testing.T) {
	s := newTestStore(t)

	missing := "no-such-folder"
	l, err := smartlink.New("x", "spotify", "release", "x", "https://example.com/x", &missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveLink(context.Background(), l); !errors.Is(err, store.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestSetLinkPosition_ShiftsSiblings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)
	l4 := mustLink(t, s, "four", nil)

	// Move the first link to position 2: two and three shift up by one,
	// four stays put.
	if err := s.SetLinkPosition(ctx, l1.ID, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDense(t, links)

	positions := positionsOf(t, links)
	want := map[string]int{l2.ID: 0, l3.ID: 1, l1.ID: 2, l4.ID: 3}
	for id, pos := range want {
		if positions[id] != pos {
			t.Errorf("expected link %s at %d, got %d", id, pos, positions[id])
		}
	}
}

func TestSetLinkPosition_MoveUp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)

	if err := s.SetLinkPosition(ctx, l3.ID, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	positions := positionsOf(t, links)
	want := map[string]int{l3.ID: 0, l1.ID: 1, l2.ID: 2}
	for id, pos := range want {
		if positions[id] != pos {
			t.Errorf("expected link %s at %d, got %d", id, pos, positions[id])
		}
	}
}

func TestSetLinkPosition_OutOfRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l := mustLink(t, s, "only", nil)

	if err := s.SetLinkPosition(ctx, l.ID, 1); !errors.Is(err, store.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for position past end, got %v", err)
	}
	if err := s.SetLinkPosition(ctx, l.ID, -1); !errors.Is(err, store.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for negative position, got %v", err)
	}
	if err := s.SetLinkPosition(ctx, "no-such-link", 0); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveLink_AppendsAtDestinationAndCompactsSource(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	f := mustFolder(t, s, "Albums", nil)
	dest := mustLink(t, s, "already-there", &f.ID)
	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)

	if err := s.MoveLink(ctx, l1.ID, &f.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved, err := s.GetLink(ctx, l1.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.FolderID == nil || *moved.FolderID != f.ID {
		t.Errorf("expected link filed in %s, got %v", f.ID, moved.FolderID)
	}
	if moved.Position != 1 {
		t.Errorf("expected moved link appended after %s at position 1, got %d", dest.ID, moved.Position)
	}

	// The root scope closed the gap.
	rootLinks, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDense(t, rootLinks)
	positions := positionsOf(t, rootLinks)
	if positions[l2.ID] != 0 || positions[l3.ID] != 1 {
		t.Errorf("expected remaining root links at 0,1, got %d,%d", positions[l2.ID], positions[l3.ID])
	}
}

func TestMoveLink_ToRoot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	f := mustFolder(t, s, "Albums", nil)
	mustLink(t, s, "root-one", nil)
	filed := mustLink(t, s, "filed", &f.ID)

	if err := s.MoveLink(ctx, filed.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved, err := s.GetLink(ctx, filed.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.FolderID != nil {
		t.Errorf("expected link at root, got folder %v", *moved.FolderID)
	}
	if moved.Position != 1 {
		t.Errorf("expected position 1 after the existing root link, got %d", moved.Position)
	}
}

func TestMoveLink_UnknownDestination(t *testing.T) {
	s := newTestStore(t)

	l := mustLink(t, s, "one", nil)
	missing := "no-such-folder"
	if err := s.MoveLink(context.Background(), l.ID, &missing); !errors.Is(err, store.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestReorderLinks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)

	err := s.ReorderLinks(ctx, nil, []smartlink.PositionUpdate{
		{ID: l3.ID, Position: 0},
		{ID: l1.ID, Position: 1},
		{ID: l2.ID, Position: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if links[0].ID != l3.ID || links[1].ID != l1.ID || links[2].ID != l2.ID {
		t.Errorf("unexpected order after reorder: %v, %v, %v", links[0].Title, links[1].Title, links[2].Title)
	}
}

func TestReorderLinks_Rejections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)

	// Unknown id in the updates.
	err := s.ReorderLinks(ctx, nil, []smartlink.PositionUpdate{
		{ID: l1.ID, Position: 0},
		{ID: "no-such-link", Position: 1},
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}

	// Incomplete cover of the scope.
	err = s.ReorderLinks(ctx, nil, []smartlink.PositionUpdate{
		{ID: l1.ID, Position: 0},
	})
	if !errors.Is(err, store.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for partial cover, got %v", err)
	}

	// Duplicate position.
	err = s.ReorderLinks(ctx, nil, []smartlink.PositionUpdate{
		{ID: l1.ID, Position: 0},
		{ID: l2.ID, Position: 0},
	})
	if !errors.Is(err, store.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for duplicate position, got %v", err)
	}

	// A failed reorder leaves the original order intact.
	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if links[0].ID != l1.ID || links[1].ID != l2.ID {
		t.Error("expected original order preserved after rejected reorders")
	}
}

func TestUpdateLink_ContentOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	f := mustFolder(t, s, "Albums", nil)
	l := mustLink(t, s, "one", &f.ID)

	l.Title = "renamed"
	l.URL = "https://example.com/renamed"
	if err := s.UpdateLink(ctx, l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetLink(ctx, l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "renamed" || got.URL != "https://example.com/renamed" {
		t.Errorf("expected updated content, got %q %q", got.Title, got.URL)
	}
	if got.FolderID == nil || *got.FolderID != f.ID {
		t.Error("expected folder untouched by content update")
	}
}

func TestDeleteLink_TrashesAndCompacts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l1 := mustLink(t, s, "one", nil)
	l2 := mustLink(t, s, "two", nil)
	l3 := mustLink(t, s, "three", nil)

	if err := s.DeleteLink(ctx, l2.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.GetLink(ctx, l2.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected deleted link gone, got %v", err)
	}

	links, err := s.ListRootLinks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDense(t, links)
	positions := positionsOf(t, links)
	if positions[l1.ID] != 0 || positions[l3.ID] != 1 {
		t.Errorf("expected remaining links at 0,1, got %d,%d", positions[l1.ID], positions[l3.ID])
	}

	entries, err := s.ListTrash(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one trash entry, got %d", len(entries))
	}
	if entries[0].OriginalID != l2.ID {
		t.Errorf("expected trash entry for %s, got %s", l2.ID, entries[0].OriginalID)
	}
}
