package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/linkdeck/backend/internal/domain/user"
	"github.com/linkdeck/backend/internal/id"
	"github.com/linkdeck/backend/internal/store"
)

const sessionTTL = 7 * 24 * time.Hour

// ── Request / Response types ────────────────────────────────────────────────

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *CredentialsRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /auth/register
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := user.New(req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, h.store.SaveUser(ctx, u), "user") {
		return
	}

	respondJSON(w, http.StatusCreated, UserResponse{ID: u.ID, Username: u.Username})
}

// POST /auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.store.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !u.CheckPassword(req.Password)) {
		respondError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}
	if err != nil {
		h.logger.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token := id.GenerateID()
	if err := h.store.SaveSession(ctx, token, u.ID, time.Now().Add(sessionTTL)); err != nil {
		h.logger.Error("failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  UserResponse{ID: u.ID, Username: u.Username},
	})
}

// POST /auth/logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.store.DeleteSession(r.Context(), token); err != nil {
			h.logger.Error("failed to delete session", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// GET /auth/me
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	userID, err := h.store.GetSessionUser(r.Context(), token)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "invalid or expired session")
		return
	}
	if err != nil {
		h.logger.Error("session lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	u, err := h.store.GetUser(r.Context(), userID)
	if h.handleStoreError(w, err, "user") {
		return
	}
	respondJSON(w, http.StatusOK, UserResponse{ID: u.ID, Username: u.Username})
}
