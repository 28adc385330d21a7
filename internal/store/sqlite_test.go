package store_test

import (
	"context"
	"testing"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/smartlink"
	"github.com/linkdeck/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustFolder(t *testing.T, s *store.SQLiteStore, title string, parentID *string) *folder.Folder {
	t.Helper()
	f, err := folder.New(title, parentID)
	if err != nil {
		t.Fatalf("failed to build folder %q: %v", title, err)
	}
	if err := s.SaveFolder(context.Background(), f); err != nil {
		t.Fatalf("failed to save folder %q: %v", title, err)
	}
	return f
}

func mustLink(t *testing.T, s *store.SQLiteStore, title string, folderID *string) *smartlink.SmartLink {
	t.Helper()
	l, err := smartlink.New(title, "spotify", "release", title, "https://example.com/"+title, folderID)
	if err != nil {
		t.Fatalf("failed to build link %q: %v", title, err)
	}
	if err := s.SaveLink(context.Background(), l); err != nil {
		t.Fatalf("failed to save link %q: %v", title, err)
	}
	return l
}

// positionsOf maps id → position for easy assertions on a scope.
func positionsOf(t *testing.T, links []*smartlink.SmartLink) map[string]int {
	t.Helper()
	positions := make(map[string]int, len(links))
	for _, l := range links {
		positions[l.ID] = l.Position
	}
	return positions
}

// assertDense fails unless the links are exactly positions 0..n-1 in order.
func assertDense(t *testing.T, links []*smartlink.SmartLink) {
	t.Helper()
	for i, l := range links {
		if l.Position != i {
			t.Errorf("expected position %d at index %d, got %d (link %s)", i, i, l.Position, l.Title)
		}
	}
}
