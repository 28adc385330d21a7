package smartlink

import (
	"errors"
	"fmt"

	"github.com/linkdeck/backend/internal/id"
)

// SmartLink points at an external destination (a streaming platform, a
// press article, ...) and may optionally be filed in one folder.
type SmartLink struct {
	ID            string
	Title         string
	LinkType      string
	TitleType     string
	ModifiedTitle string
	URL           string
	FolderID      *string // nil means the link lives at root scope
	Position      int     // unique among links sharing the same folder scope
}

// New creates a SmartLink with a generated ID. Position is assigned by the store.
func New(title, linkType, titleType, modifiedTitle, url string, folderID *string) (*SmartLink, error) {
	l := &SmartLink{
		ID:            id.GenerateID(),
		Title:         title,
		LinkType:      linkType,
		TitleType:     titleType,
		ModifiedTitle: modifiedTitle,
		URL:           url,
		FolderID:      folderID,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks that all required string fields are non-empty.
func (l *SmartLink) Validate() error {
	switch {
	case l.Title == "":
		return errors.New("title is required")
	case l.LinkType == "":
		return errors.New("link_type is required")
	case l.TitleType == "":
		return errors.New("title_type is required")
	case l.ModifiedTitle == "":
		return errors.New("modified_title is required")
	case l.URL == "":
		return errors.New("url is required")
	}
	return nil
}

// PositionUpdate is one entry of a bulk reorder request.
type PositionUpdate struct {
	ID       string
	Position int
}

// ValidatePermutation checks that updates assign exactly the positions
// 0..n-1 across exactly the sibling ids in scope, with no id repeated.
func ValidatePermutation(updates []PositionUpdate, siblingIDs []string) error {
	if len(updates) != len(siblingIDs) {
		return fmt.Errorf("expected %d entries, got %d", len(siblingIDs), len(updates))
	}

	inScope := make(map[string]bool, len(siblingIDs))
	for _, sid := range siblingIDs {
		inScope[sid] = true
	}

	seenID := make(map[string]bool, len(updates))
	seenPos := make(map[int]bool, len(updates))
	for _, u := range updates {
		if !inScope[u.ID] {
			return fmt.Errorf("id %s is not in this scope", u.ID)
		}
		if seenID[u.ID] {
			return fmt.Errorf("id %s appears more than once", u.ID)
		}
		seenID[u.ID] = true
		if u.Position < 0 || u.Position >= len(updates) {
			return fmt.Errorf("position %d is out of range [0, %d)", u.Position, len(updates))
		}
		if seenPos[u.Position] {
			return fmt.Errorf("position %d is assigned twice", u.Position)
		}
		seenPos[u.Position] = true
	}
	return nil
}
