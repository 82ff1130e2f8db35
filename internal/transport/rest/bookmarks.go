package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// bookmarkService defines the minimal interface needed by BookmarkHandler.
type bookmarkService interface {
	Create(ctx context.Context, userID, cardID string) (*domain.Bookmark, error)
	List(ctx context.Context, userID string) ([]*domain.Bookmark, error)
	Exists(ctx context.Context, userID, cardID string) (bool, error)
	Delete(ctx context.Context, userID, bookmarkID string) error
	DeleteByCard(ctx context.Context, userID, cardID string) error
}

// BookmarkHandler serves bookmark endpoints.
type BookmarkHandler struct {
	svc bookmarkService
	log *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc bookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmark")}
}

type createBookmarkRequest struct {
	CardID string `json:"card_id"`
}

// Create handles POST /api/v1/bookmarks.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CardID == "" {
		writeError(w, http.StatusBadRequest, "card_id must not be empty")
		return
	}

	bm, err := h.svc.Create(r.Context(), userID, req.CardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bm)
}

// List handles GET /api/v1/bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookmarks, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookmarks": bookmarks})
}

// Exists handles GET /api/v1/cards/{id}/bookmark.
func (h *BookmarkHandler) Exists(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	exists, err := h.svc.Exists(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": exists})
}

// Delete handles DELETE /api/v1/bookmarks/{id}.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteByCard handles DELETE /api/v1/cards/{id}/bookmark.
func (h *BookmarkHandler) DeleteByCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteByCard(r.Context(), userID, r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
