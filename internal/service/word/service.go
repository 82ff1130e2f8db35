// Package word implements the word card business logic: LLM-backed
// enrichment of a headword into a complete card draft, and card persistence
// paired with the wordbook's denormalized counter.
package word

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryRepo interface {
	GetByWord(ctx context.Context, word string) (*domain.DictionaryRecord, error)
}

type liveDictionary interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type cardRepo interface {
	Create(ctx context.Context, card *domain.WordCard) error
	GetByID(ctx context.Context, id string) (*domain.WordCard, error)
	Delete(ctx context.Context, id string) error
	ListByWordbook(ctx context.Context, wordbookID string) ([]*domain.WordCard, error)
}

type wordbookRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Wordbook, error)
	AdjustWordCount(ctx context.Context, id string, delta int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the word card business logic.
type Service struct {
	log       *slog.Logger
	dict      dictionaryRepo
	live      liveDictionary
	generator textGenerator
	cards     cardRepo
	wordbooks wordbookRepo
	tx        txManager
}

// NewService creates a new word service.
func NewService(
	logger *slog.Logger,
	dict dictionaryRepo,
	live liveDictionary,
	generator textGenerator,
	cards cardRepo,
	wordbooks wordbookRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "word"),
		dict:      dict,
		live:      live,
		generator: generator,
		cards:     cards,
		wordbooks: wordbooks,
		tx:        tx,
	}
}
