package api

import (
	"errors"
	"net/http"

	"github.com/linkdeck/backend/internal/domain/folder"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateFolderRequest struct {
	Title        string  `json:"title" example:"Albums"`
	ParentFolder *string `json:"parent_folder,omitempty" example:"f1o2l3d4-e5r6-i7d8-0000-000000000000"`
}

func (r *CreateFolderRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type FolderResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ParentFolder *string `json:"parent_folder,omitempty"`
	Position     int     `json:"position"`
}

type GetFolderResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	ParentFolder *string          `json:"parent_folder,omitempty"`
	Position     int              `json:"position"`
	Children     []FolderResponse `json:"children"`
	Links        []LinkResponse   `json:"links"`
}

type UpdateFolderRequest struct {
	Title        *string `json:"title,omitempty"`
	ParentFolder *string `json:"parent_folder"`
	// SetParent distinguishes "move to root" (parent_folder null) from
	// "leave the parent alone" (field omitted).
	SetParent bool `json:"set_parent,omitempty"`
}

type SetPositionRequest struct {
	Position int `json:"position"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

func folderToResponse(f *folder.Folder) FolderResponse {
	return FolderResponse{
		ID:           f.ID,
		Title:        f.Title,
		ParentFolder: f.ParentID,
		Position:     f.Position,
	}
}

// createFolder creates a new folder.
// @Summary      Create a folder
// @Description  Create a folder, optionally nested under a parent. Its position is appended at the end of the sibling scope.
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        body  body      CreateFolderRequest  true  "Folder to create"
// @Success      201   {object}  FolderResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /folders [post]
func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateFolderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	f, err := folder.New(req.Title, req.ParentFolder)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, h.store.SaveFolder(ctx, f), "folder") {
		return
	}

	respondJSON(w, http.StatusCreated, folderToResponse(f))
}

// listFolders lists all folders.
// @Summary      List folders
// @Description  Returns all folders ordered by position within each scope.
// @Tags         Folders
// @Produce      json
// @Success      200  {array}   FolderResponse
// @Failure      500  {object}  map[string]string
// @Router       /folders [get]
func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folders, err := h.store.ListFolders(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load folders")
		return
	}

	response := make([]FolderResponse, len(folders))
	for i, f := range folders {
		response[i] = folderToResponse(f)
	}
	respondJSON(w, http.StatusOK, response)
}

// getFolder returns a single folder with its children and links resolved.
// @Summary      Get a folder
// @Description  Returns a folder with its child folders and its links, each ordered by position.
// @Tags         Folders
// @Produce      json
// @Param        folderID  path      string  true  "Folder ID"
// @Success      200       {object}  GetFolderResponse
// @Failure      404       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /folders/{folderID} [get]
func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.PathValue("folderID")

	f, err := h.store.GetFolder(ctx, folderID)
	if h.handleStoreError(w, err, "folder") {
		return
	}

	all, err := h.store.ListFolders(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load folders")
		return
	}
	children := []FolderResponse{}
	for _, candidate := range all {
		if candidate.ParentID != nil && *candidate.ParentID == folderID {
			children = append(children, folderToResponse(candidate))
		}
	}

	links, err := h.store.ListLinksByFolder(ctx, folderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load links")
		return
	}
	linkResponses := make([]LinkResponse, len(links))
	for i, l := range links {
		linkResponses[i] = linkToResponse(l)
	}

	respondJSON(w, http.StatusOK, GetFolderResponse{
		ID:           f.ID,
		Title:        f.Title,
		ParentFolder: f.ParentID,
		Position:     f.Position,
		Children:     children,
		Links:        linkResponses,
	})
}

// updateFolder renames and/or reparents a folder.
// @Summary      Update a folder
// @Description  Partial update. Reparenting recomputes the folder's position in the new scope and rejects moves that would create a cycle.
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        folderID  path      string               true  "Folder ID"
// @Param        body      body      UpdateFolderRequest  true  "Fields to update"
// @Success      200       {object}  FolderResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /folders/{folderID} [put]
func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.PathValue("folderID")

	var req UpdateFolderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil && !req.SetParent {
		respondError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}
		if h.handleStoreError(w, h.store.RenameFolder(ctx, folderID, *req.Title), "folder") {
			return
		}
	}
	if req.SetParent {
		if h.handleStoreError(w, h.store.ReparentFolder(ctx, folderID, req.ParentFolder), "folder") {
			return
		}
	}

	f, err := h.store.GetFolder(ctx, folderID)
	if h.handleStoreError(w, err, "folder") {
		return
	}
	respondJSON(w, http.StatusOK, folderToResponse(f))
}

// setFolderPosition moves a folder within its sibling scope.
// @Summary      Reorder a folder
// @Description  Moves the folder to the given position; intervening siblings shift by one so the scope stays dense.
// @Tags         Folders
// @Accept       json
// @Param        folderID  path  string              true  "Folder ID"
// @Param        body      body  SetPositionRequest  true  "Target position"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /folders/{folderID}/position [patch]
func (h *Handler) setFolderPosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.PathValue("folderID")

	var req SetPositionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleStoreError(w, h.store.SetFolderPosition(ctx, folderID, req.Position), "folder") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteFolder removes a folder subtree according to ?mode=.
// @Summary      Delete a folder
// @Description  mode=detach (default) deletes the subtree and re-homes its links to root; mode=cascade trashes everything in the subtree; mode=single deletes only the target, trashing its direct links and promoting child folders.
// @Tags         Folders
// @Param        folderID  path   string  true   "Folder ID"
// @Param        mode      query  string  false  "detach | cascade | single"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /folders/{folderID} [delete]
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.PathValue("folderID")

	mode, err := folder.ParseDeleteMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, h.store.DeleteFolder(ctx, folderID, mode), "folder") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
