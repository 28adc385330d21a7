package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/linkdeck/backend/internal/domain/trash"
)

type TrashEntryResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entity_type"`
	OriginalID string          `json:"original_id"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
}

func trashToResponse(e *trash.Entry) TrashEntryResponse {
	return TrashEntryResponse{
		ID:         e.ID,
		EntityType: string(e.EntityType),
		OriginalID: e.OriginalID,
		Data:       json.RawMessage(e.Data),
		CreatedAt:  e.CreatedAt,
	}
}

// GET /trash
func (h *Handler) listTrash(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListTrash(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load trash")
		return
	}
	response := make([]TrashEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = trashToResponse(e)
	}
	respondJSON(w, http.StatusOK, response)
}

// restoreTrashEntry recreates the snapshotted entity under its original id.
// @Summary      Restore from trash
// @Description  Fails with 409 if a live entity already holds the original id. Dangling folder references are cleared on restore.
// @Tags         Trash
// @Param        entryID  path  string  true  "Trash entry ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /trash/{entryID}/restore [post]
func (h *Handler) restoreTrashEntry(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.RestoreTrashEntry(r.Context(), r.PathValue("entryID")), "entity") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /trash/{entryID} — irreversible.
func (h *Handler) permanentlyDeleteTrashEntry(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteTrashEntry(r.Context(), r.PathValue("entryID")), "trash entry") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
