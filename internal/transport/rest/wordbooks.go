package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/service/wordbook"
)

// wordbookService defines the minimal interface needed by WordbookHandler.
type wordbookService interface {
	Create(ctx context.Context, userID string, in wordbook.CreateInput) (*domain.Wordbook, error)
	Get(ctx context.Context, userID, id string) (*domain.Wordbook, error)
	ListMine(ctx context.Context, userID string) ([]*domain.Wordbook, error)
	Update(ctx context.Context, userID, id string, in wordbook.UpdateInput) (*domain.Wordbook, error)
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, requesterID string, in wordbook.SearchInput) (*wordbook.SearchResult, error)
	Duplicate(ctx context.Context, userID, sourceID string) (*domain.Wordbook, error)
}

// WordbookHandler serves wordbook endpoints.
type WordbookHandler struct {
	svc wordbookService
	log *slog.Logger
}

// NewWordbookHandler creates a WordbookHandler.
func NewWordbookHandler(svc wordbookService, logger *slog.Logger) *WordbookHandler {
	return &WordbookHandler{svc: svc, log: logger.With("handler", "wordbook")}
}

type createWordbookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type updateWordbookRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

// Create handles POST /api/v1/wordbooks.
func (h *WordbookHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createWordbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wb, err := h.svc.Create(r.Context(), userID, wordbook.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wb)
}

// Get handles GET /api/v1/wordbooks/{id}.
func (h *WordbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := requireUserOptional(r)

	wb, err := h.svc.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wb)
}

// ListMine handles GET /api/v1/wordbooks.
func (h *WordbookHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	books, err := h.svc.ListMine(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"wordbooks": books})
}

// Update handles PATCH /api/v1/wordbooks/{id}.
func (h *WordbookHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateWordbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wb, err := h.svc.Update(r.Context(), userID, r.PathValue("id"), wordbook.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wb)
}

// Delete handles DELETE /api/v1/wordbooks/{id}.
func (h *WordbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Duplicate handles POST /api/v1/wordbooks/{id}/duplicate.
func (h *WordbookHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	wb, err := h.svc.Duplicate(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wb)
}

// Search handles GET /api/v1/wordbooks/search.
// Query params: q, is_public, is_owned, min_words, sort_by, order, page, limit.
func (h *WordbookHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, _ := requireUserOptional(r)
	q := r.URL.Query()

	in := wordbook.SearchInput{
		Filter: domain.WordbookFilter{Query: q.Get("q")},
		SortBy: q.Get("sort_by"),
	}
	if v := q.Get("is_public"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "is_public must be a boolean")
			return
		}
		in.Filter.IsPublic = &b
	}
	if v := q.Get("is_owned"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "is_owned must be a boolean")
			return
		}
		in.Filter.IsOwned = &b
	}
	if v := q.Get("min_words"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_words must be an integer")
			return
		}
		in.Filter.MinWords = &n
	}
	in.SortDesc = q.Get("order") == "desc"
	in.Page, _ = strconv.Atoi(q.Get("page"))
	in.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.svc.Search(r.Context(), userID, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
