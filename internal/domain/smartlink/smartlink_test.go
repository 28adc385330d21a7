package smartlink_test

import (
	"testing"

	"github.com/linkdeck/backend/internal/domain/smartlink"
)

func TestNewSmartLink(t *testing.T) {
	l, err := smartlink.New("New Album", "spotify", "release", "new-album", "https://example.com/a", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID == "" {
		t.Error("expected non-empty ID")
	}
	if l.Title != "New Album" {
		t.Errorf("expected title %q, got %q", "New Album", l.Title)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		link smartlink.SmartLink
	}{
		{"missing title", smartlink.SmartLink{LinkType: "t", TitleType: "t", ModifiedTitle: "t", URL: "u"}},
		{"missing link_type", smartlink.SmartLink{Title: "t", TitleType: "t", ModifiedTitle: "t", URL: "u"}},
		{"missing title_type", smartlink.SmartLink{Title: "t", LinkType: "t", ModifiedTitle: "t", URL: "u"}},
		{"missing modified_title", smartlink.SmartLink{Title: "t", LinkType: "t", TitleType: "t", URL: "u"}},
		{"missing url", smartlink.SmartLink{Title: "t", LinkType: "t", TitleType: "t", ModifiedTitle: "t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.link.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePermutation(t *testing.T) {
	siblings := []string{"l1", "l2", "l3"}

	valid := []smartlink.PositionUpdate{
		{ID: "l3", Position: 0},
		{ID: "l1", Position: 1},
		{ID: "l2", Position: 2},
	}
	if err := smartlink.ValidatePermutation(valid, siblings); err != nil {
		t.Errorf("expected valid permutation, got %v", err)
	}
}

func TestValidatePermutation_Rejections(t *testing.T) {
	siblings := []string{"l1", "l2", "l3"}

	tests := []struct {
		name    string
		updates []smartlink.PositionUpdate
	}{
		{"too few entries", []smartlink.PositionUpdate{
			{ID: "l1", Position: 0}, {ID: "l2", Position: 1},
		}},
		{"unknown id", []smartlink.PositionUpdate{
			{ID: "l1", Position: 0}, {ID: "l2", Position: 1}, {ID: "zz", Position: 2},
		}},
		{"duplicate id", []smartlink.PositionUpdate{
			{ID: "l1", Position: 0}, {ID: "l1", Position: 1}, {ID: "l2", Position: 2},
		}},
		{"duplicate position", []smartlink.PositionUpdate{
			{ID: "l1", Position: 0}, {ID: "l2", Position: 0}, {ID: "l3", Position: 2},
		}},
		{"position out of range", []smartlink.PositionUpdate{
			{ID: "l1", Position: 0}, {ID: "l2", Position: 1}, {ID: "l3", Position: 3},
		}},
		{"negative position", []smartlink.PositionUpdate{
			{ID: "l1", Position: -1}, {ID: "l2", Position: 1}, {ID: "l3", Position: 2},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := smartlink.ValidatePermutation(tc.updates, siblings); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidatePermutation_EmptyScope(t *testing.T) {
	if err := smartlink.ValidatePermutation(nil, nil); err != nil {
		t.Errorf("empty scope with no updates should be valid, got %v", err)
	}
}
