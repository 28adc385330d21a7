package api

import (
	"net/http"
	"time"

	"github.com/linkdeck/backend/internal/domain/message"
)

// ── Request / Response types ────────────────────────────────────────────────

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type ContactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitContact stores a contact-form message and queues the email send.
// The caller gets a 202 immediately; delivery happens in the background
// and its outcome is recorded on the message.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := message.New(req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveMessage(ctx, m); err != nil {
		h.logger.Error("failed to save contact message", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save message")
		return
	}

	h.delivery.Submit(m)

	respondJSON(w, http.StatusAccepted, ContactResponse{
		ID:     m.ID,
		Status: string(m.Status),
	})
}

// GET /contact/messages — admin view of the contact inbox.
func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.ListMessages(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}
	response := make([]ContactMessageResponse, len(messages))
	for i, m := range messages {
		response[i] = ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Body:      m.Body,
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, response)
}
