package api

import (
	"net/http"
	"time"

	"github.com/linkdeck/backend/internal/domain/folder"
	"github.com/linkdeck/backend/internal/domain/smartlink"
)

// ── Response types ──────────────────────────────────────────────────────────

type ExportLink struct {
	Title         string `json:"title"`
	LinkType      string `json:"link_type"`
	TitleType     string `json:"title_type"`
	ModifiedTitle string `json:"modified_title"`
	URL           string `json:"url"`
}

type ExportFolder struct {
	Title    string         `json:"title"`
	Children []ExportFolder `json:"children,omitempty"`
	Links    []ExportLink   `json:"links,omitempty"`
}

type ExportData struct {
	Version    string         `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Folders    []ExportFolder `json:"folders"`
	RootLinks  []ExportLink   `json:"root_links"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps the whole organizer as one versioned JSON document.
// @Summary      Export everything
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folders, err := h.store.ListFolders(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load folders")
		return
	}
	links, err := h.store.ListAllLinks(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load links")
		return
	}

	linksByFolder := make(map[string][]ExportLink)
	var rootLinks []ExportLink
	for _, l := range links {
		exported := exportLink(l)
		if l.FolderID == nil {
			rootLinks = append(rootLinks, exported)
		} else {
			linksByFolder[*l.FolderID] = append(linksByFolder[*l.FolderID], exported)
		}
	}

	childrenByParent := make(map[string][]*folder.Folder)
	var roots []*folder.Folder
	for _, f := range folders {
		if f.ParentID == nil {
			roots = append(roots, f)
		} else {
			childrenByParent[*f.ParentID] = append(childrenByParent[*f.ParentID], f)
		}
	}

	// Visited set guards against parent cycles in pre-existing data.
	visited := make(map[string]bool)
	var build func(f *folder.Folder) ExportFolder
	build = func(f *folder.Folder) ExportFolder {
		visited[f.ID] = true
		exported := ExportFolder{
			Title: f.Title,
			Links: linksByFolder[f.ID],
		}
		for _, child := range childrenByParent[f.ID] {
			if visited[child.ID] {
				continue
			}
			exported.Children = append(exported.Children, build(child))
		}
		return exported
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Folders:    make([]ExportFolder, 0, len(roots)),
		RootLinks:  rootLinks,
	}
	for _, root := range roots {
		exportData.Folders = append(exportData.Folders, build(root))
	}

	respondJSON(w, http.StatusOK, exportData)
}

func exportLink(l *smartlink.SmartLink) ExportLink {
	return ExportLink{
		Title:         l.Title,
		LinkType:      l.LinkType,
		TitleType:     l.TitleType,
		ModifiedTitle: l.ModifiedTitle,
		URL:           l.URL,
	}
}
