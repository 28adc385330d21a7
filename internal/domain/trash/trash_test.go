package trash_test

import (
	"testing"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/smartlink"
	"github.com/linkdeck/backend/internal/domain/trash"
)

func TestFolderEntry_RoundTrip(t *testing.T) {
	parent := "parent-id"
	original := &folder.Folder{
		ID:       "folder-id",
		Title:    "Albums",
		ParentID: &parent,
		Position: 3,
	}

	entry, err := trash.NewFolderEntry(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.EntityType != trash.EntityFolder {
		t.Errorf("expected entity type %q, got %q", trash.EntityFolder, entry.EntityType)
	}
	if entry.OriginalID != original.ID {
		t.Errorf("expected original id %q, got %q", original.ID, entry.OriginalID)
	}

	restored, err := entry.Folder()
	if err != nil {
		t.Fatalf("unexpected error decoding snapshot: %v", err)
	}
	if restored.ID != original.ID {
		t.Errorf("expected restored id %q, got %q", original.ID, restored.ID)
	}
	if restored.Title != original.Title {
		t.Errorf("expected title %q, got %q", original.Title, restored.Title)
	}
	if restored.ParentID == nil || *restored.ParentID != parent {
		t.Errorf("expected parent %q, got %v", parent, restored.ParentID)
	}
	if restored.Position != original.Position {
		t.Errorf("expected position %d, got %d", original.Position, restored.Position)
	}
}

func TestLinkEntry_RoundTrip(t *testing.T) {
	original := &smartlink.SmartLink{
		ID:            "link-id",
		Title:         "New Album",
		LinkType:      "spotify",
		TitleType:     "release",
		ModifiedTitle: "new-album",
		URL:           "https://example.com/a",
		Position:      1,
	}

	entry, err := trash.NewLinkEntry(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.EntityType != trash.EntitySmartLink {
		t.Errorf("expected entity type %q, got %q", trash.EntitySmartLink, entry.EntityType)
	}

	restored, err := entry.SmartLink()
	if err != nil {
		t.Fatalf("unexpected error decoding snapshot: %v", err)
	}
	if restored.ID != original.ID {
		t.Errorf("expected restored id %q, got %q", original.ID, restored.ID)
	}
	if restored.URL != original.URL {
		t.Errorf("expected url %q, got %q", original.URL, restored.URL)
	}
	if restored.FolderID != nil {
		t.Errorf("expected nil folder, got %v", *restored.FolderID)
	}
}

func TestEntry_WrongKind(t *testing.T) {
	f := &folder.Folder{ID: "f1", Title: "Albums"}
	entry, err := trash.NewFolderEntry(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := entry.SmartLink(); err == nil {
		t.Error("expected error decoding a folder entry as a smart link")
	}
	if _, err := entry.Folder(); err != nil {
		t.Errorf("expected folder decode to succeed, got %v", err)
	}
}
