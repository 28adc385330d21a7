package folder

import (
	"errors"

	"github.com/linkdeck/backend/internal/id"
)

// Folder is a node in the link organizer's folder forest.
// ParentID is the single source of truth for the hierarchy;
// children are always computed by query, never stored.
type Folder struct {
	ID       string
	Title    string
	ParentID *string // nil means root-level
	Position int     // unique among siblings sharing the same parent
}

// New creates a Folder with a generated ID. Position is assigned by the store.
func New(title string, parentID *string) (*Folder, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	return &Folder{
		ID:       id.GenerateID(),
		Title:    title,
		ParentID: parentID,
	}, nil
}

// DeleteMode selects what happens to a folder's contents when it is deleted.
type DeleteMode string

const (
	// DeleteDetach removes the folder subtree but keeps its links,
	// re-homing them to the root scope.
	DeleteDetach DeleteMode = "detach"
	// DeleteCascade removes the folder subtree and trashes every folder
	// and link inside it.
	DeleteCascade DeleteMode = "cascade"
	// DeleteSingle removes only the target folder, trashing its direct
	// links and promoting child folders to the target's former parent.
	DeleteSingle DeleteMode = "single"
)

// ParseDeleteMode validates a mode string. An empty mode defaults to detach.
func ParseDeleteMode(s string) (DeleteMode, error) {
	switch DeleteMode(s) {
	case "":
		return DeleteDetach, nil
	case DeleteDetach, DeleteCascade, DeleteSingle:
		return DeleteMode(s), nil
	default:
		return "", errors.New("invalid delete mode: must be detach, cascade, or single")
	}
}
