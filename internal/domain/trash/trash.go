package trash

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/smartlink"
	"github.com/linkdeck/backend/internal/id"
)

// EntityType discriminates what kind of entity a trash entry snapshots.
type EntityType string

const (
	EntityFolder    EntityType = "folder"
	EntitySmartLink EntityType = "smartlink"
)

// Entry is one record of the soft-delete log: the deleted entity's kind,
// its original id, and a full snapshot of its fields at deletion time.
// OriginalID is preserved so restore recreates the entity with the same
// referential identity.
type Entry struct {
	ID         string
	EntityType EntityType
	OriginalID string
	Data       []byte // JSON snapshot
	CreatedAt  time.Time
}

type folderSnapshot struct {
	Title    string  `json:"title"`
	ParentID *string `json:"parent_id,omitempty"`
	Position int     `json:"position"`
}

type linkSnapshot struct {
	Title         string  `json:"title"`
	LinkType      string  `json:"link_type"`
	TitleType     string  `json:"title_type"`
	ModifiedTitle string  `json:"modified_title"`
	URL           string  `json:"url"`
	FolderID      *string `json:"folder_id,omitempty"`
	Position      int     `json:"position"`
}

// NewFolderEntry snapshots a folder about to be deleted.
func NewFolderEntry(f *folder.Folder) (*Entry, error) {
	data, err := json.Marshal(folderSnapshot{
		Title:    f.Title,
		ParentID: f.ParentID,
		Position: f.Position,
	})
	if err != nil {
		return nil, err
	}
	return &Entry{
		ID:         id.GenerateID(),
		EntityType: EntityFolder,
		OriginalID: f.ID,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// NewLinkEntry snapshots a smart link about to be deleted.
func NewLinkEntry(l *smartlink.SmartLink) (*Entry, error) {
	data, err := json.Marshal(linkSnapshot{
		Title:         l.Title,
		LinkType:      l.LinkType,
		TitleType:     l.TitleType,
		ModifiedTitle: l.ModifiedTitle,
		URL:           l.URL,
		FolderID:      l.FolderID,
		Position:      l.Position,
	})
	if err != nil {
		return nil, err
	}
	return &Entry{
		ID:         id.GenerateID(),
		EntityType: EntitySmartLink,
		OriginalID: l.ID,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Folder decodes the snapshot of a folder entry, rebuilding the folder
// with its original id.
func (e *Entry) Folder() (*folder.Folder, error) {
	if e.EntityType != EntityFolder {
		return nil, fmt.Errorf("entry %s holds a %s, not a folder", e.ID, e.EntityType)
	}
	var snap folderSnapshot
	if err := json.Unmarshal(e.Data, &snap); err != nil {
		return nil, err
	}
	return &folder.Folder{
		ID:       e.OriginalID,
		Title:    snap.Title,
		ParentID: snap.ParentID,
		Position: snap.Position,
	}, nil
}

// SmartLink decodes the snapshot of a smart link entry, rebuilding the
// link with its original id.
func (e *Entry) SmartLink() (*smartlink.SmartLink, error) {
	if e.EntityType != EntitySmartLink {
		return nil, fmt.Errorf("entry %s holds a %s, not a smartlink", e.ID, e.EntityType)
	}
	var snap linkSnapshot
	if err := json.Unmarshal(e.Data, &snap); err != nil {
		return nil, err
	}
	return &smartlink.SmartLink{
		ID:            e.OriginalID,
		Title:         snap.Title,
		LinkType:      snap.LinkType,
		TitleType:     snap.TitleType,
		ModifiedTitle: snap.ModifiedTitle,
		URL:           snap.URL,
		FolderID:      snap.FolderID,
		Position:      snap.Position,
	}, nil
}
