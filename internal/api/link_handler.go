package api

import (
	"net/http"

	"github.com/linkdeck/backend/internal/domain/smartlink"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateLinkRequest struct {
	Title         string  `json:"title" example:"New Album"`
	LinkType      string  `json:"link_type" example:"spotify"`
	TitleType     string  `json:"title_type" example:"release"`
	ModifiedTitle string  `json:"modified_title" example:"new-album"`
	URL           string  `json:"url" example:"https://open.spotify.com/album/xyz"`
	Folder        *string `json:"folder,omitempty"`
}

type LinkResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	LinkType      string  `json:"link_type"`
	TitleType     string  `json:"title_type"`
	ModifiedTitle string  `json:"modified_title"`
	URL           string  `json:"url"`
	Folder        *string `json:"folder,omitempty"`
	Position      int     `json:"position"`
}

type UpdateLinkRequest struct {
	Title         *string `json:"title,omitempty"`
	LinkType      *string `json:"link_type,omitempty"`
	TitleType     *string `json:"title_type,omitempty"`
	ModifiedTitle *string `json:"modified_title,omitempty"`
	URL           *string `json:"url,omitempty"`
}

type MoveLinkRequest struct {
	// Folder is the destination; null moves the link to the root scope.
	Folder *string `json:"folder"`
}

type ReorderLinksRequest struct {
	Folder *string             `json:"folder"`
	Links  []ReorderLinksEntry `json:"links"`
}

type ReorderLinksEntry struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

func linkToResponse(l *smartlink.SmartLink) LinkResponse {
	return LinkResponse{
		ID:            l.ID,
		Title:         l.Title,
		LinkType:      l.LinkType,
		TitleType:     l.TitleType,
		ModifiedTitle: l.ModifiedTitle,
		URL:           l.URL,
		Folder:        l.FolderID,
		Position:      l.Position,
	}
}

// createLink creates a smart link.
// @Summary      Create a smart link
// @Description  All string fields are required. A folder reference, if given, must exist; the link is appended at the end of its scope.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        body  body      CreateLinkRequest  true  "Link to create"
// @Success      201   {object}  LinkResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /links [post]
func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := smartlink.New(req.Title, req.LinkType, req.TitleType, req.ModifiedTitle, req.URL, req.Folder)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, h.store.SaveLink(ctx, l), "folder") {
		return
	}

	respondJSON(w, http.StatusCreated, linkToResponse(l))
}

// listAllLinks returns every link across all scopes (admin view).
// @Summary      List all links
// @Tags         Links
// @Produce      json
// @Success      200  {array}   LinkResponse
// @Failure      500  {object}  map[string]string
// @Router       /links [get]
func (h *Handler) listAllLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.store.ListAllLinks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load links")
		return
	}
	respondJSON(w, http.StatusOK, linksToResponse(links))
}

// listRootLinks returns links not filed in any folder.
// @Summary      List root links
// @Tags         Links
// @Produce      json
// @Success      200  {array}   LinkResponse
// @Failure      500  {object}  map[string]string
// @Router       /links/root [get]
func (h *Handler) listRootLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.store.ListRootLinks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load links")
		return
	}
	respondJSON(w, http.StatusOK, linksToResponse(links))
}

// listLinksByFolder returns the links of one folder sorted by position.
// @Summary      List links in a folder
// @Tags         Folders
// @Produce      json
// @Param        folderID  path      string  true  "Folder ID"
// @Success      200       {array}   LinkResponse
// @Failure      404       {object}  map[string]string
// @Router       /folders/{folderID}/links [get]
func (h *Handler) listLinksByFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.PathValue("folderID")

	_, err := h.store.GetFolder(ctx, folderID)
	if h.handleStoreError(w, err, "folder") {
		return
	}

	links, err := h.store.ListLinksByFolder(ctx, folderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load links")
		return
	}
	respondJSON(w, http.StatusOK, linksToResponse(links))
}

func linksToResponse(links []*smartlink.SmartLink) []LinkResponse {
	response := make([]LinkResponse, len(links))
	for i, l := range links {
		response[i] = linkToResponse(l)
	}
	return response
}

// GET /links/{linkID}
func (h *Handler) getLink(w http.ResponseWriter, r *http.Request) {
	l, err := h.store.GetLink(r.Context(), r.PathValue("linkID"))
	if h.handleStoreError(w, err, "link") {
		return
	}
	respondJSON(w, http.StatusOK, linkToResponse(l))
}

// updateLink rewrites a link's content fields. Folder moves go through
// PATCH /links/{linkID}/folder.
// @Summary      Update a link
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        linkID  path      string             true  "Link ID"
// @Param        body    body      UpdateLinkRequest  true  "Fields to update"
// @Success      200     {object}  LinkResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /links/{linkID} [put]
func (h *Handler) updateLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	linkID := r.PathValue("linkID")

	var req UpdateLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.store.GetLink(ctx, linkID)
	if h.handleStoreError(w, err, "link") {
		return
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.LinkType != nil {
		l.LinkType = *req.LinkType
	}
	if req.TitleType != nil {
		l.TitleType = *req.TitleType
	}
	if req.ModifiedTitle != nil {
		l.ModifiedTitle = *req.ModifiedTitle
	}
	if req.URL != nil {
		l.URL = *req.URL
	}
	if err := l.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.UpdateLink(ctx, l), "link") {
		return
	}
	respondJSON(w, http.StatusOK, linkToResponse(l))
}

// moveLink re-files a link into another folder (or root).
// @Summary      Move a link
// @Description  Removes the link from its current scope (compacting remaining siblings) and appends it at the end of the destination scope.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        linkID  path      string           true  "Link ID"
// @Param        body    body      MoveLinkRequest  true  "Destination folder (null = root)"
// @Success      200     {object}  LinkResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /links/{linkID}/folder [patch]
func (h *Handler) moveLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	linkID := r.PathValue("linkID")

	var req MoveLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if h.handleStoreError(w, h.store.MoveLink(ctx, linkID, req.Folder), "link") {
		return
	}

	l, err := h.store.GetLink(ctx, linkID)
	if h.handleStoreError(w, err, "link") {
		return
	}
	respondJSON(w, http.StatusOK, linkToResponse(l))
}

// setLinkPosition moves a link within its scope.
// @Summary      Reorder a link
// @Tags         Links
// @Accept       json
// @Param        linkID  path  string              true  "Link ID"
// @Param        body    body  SetPositionRequest  true  "Target position"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /links/{linkID}/position [patch]
func (h *Handler) setLinkPosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	linkID := r.PathValue("linkID")

	var req SetPositionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleStoreError(w, h.store.SetLinkPosition(ctx, linkID, req.Position), "link") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reorderLinks applies a full desired ordering to one scope.
// @Summary      Bulk reorder links
// @Description  The entries must cover exactly the scope's links with positions 0..n-1; anything else is rejected.
// @Tags         Links
// @Accept       json
// @Param        body  body  ReorderLinksRequest  true  "Scope and desired ordering"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /links/reorder [post]
func (h *Handler) reorderLinks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReorderLinksRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updates := make([]smartlink.PositionUpdate, len(req.Links))
	for i, entry := range req.Links {
		updates[i] = smartlink.PositionUpdate{ID: entry.ID, Position: entry.Position}
	}
	if h.handleStoreError(w, h.store.ReorderLinks(ctx, req.Folder, updates), "link") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteLink soft-deletes a link into the trash.
// @Summary      Delete a link
// @Description  The link is snapshotted to trash before deletion and can be restored from there.
// @Tags         Links
// @Param        linkID  path  string  true  "Link ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /links/{linkID} [delete]
func (h *Handler) deleteLink(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteLink(r.Context(), r.PathValue("linkID")), "link") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
