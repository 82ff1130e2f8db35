package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	Enrich(ctx context.Context, headword string) (*domain.GeneratedWordInfo, error)
	CreateCard(ctx context.Context, userID string, in word.CreateCardInput) (*domain.WordCard, error)
	DeleteCard(ctx context.Context, userID, cardID string) error
	ListCards(ctx context.Context, userID, wordbookID string) ([]*domain.WordCard, error)
}

// WordHandler serves enrichment and word card endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type enrichRequest struct {
	Word string `json:"word"`
}

type createCardRequest struct {
	WordbookID       string                   `json:"wordbook_id"`
	English          string                   `json:"english"`
	Definitions      []domain.Definition      `json:"definitions"`
	Synonyms         []string                 `json:"synonyms"`
	ExampleSentences []domain.ExampleSentence `json:"example_sentences"`
	Phonetics        *domain.PhoneticInfo     `json:"phonetics"`
}

// Enrich handles POST /api/v1/words/enrich.
func (h *WordHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info, err := h.svc.Enrich(r.Context(), req.Word)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// CreateCard handles POST /api/v1/cards.
func (h *WordHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), userID, word.CreateCardInput{
		WordbookID:       req.WordbookID,
		English:          req.English,
		Definitions:      req.Definitions,
		Synonyms:         req.Synonyms,
		ExampleSentences: req.ExampleSentences,
		Phonetics:        req.Phonetics,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *WordHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), userID, r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCards handles GET /api/v1/wordbooks/{id}/cards.
func (h *WordHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, _ := requireUserOptional(r)

	cards, err := h.svc.ListCards(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}
