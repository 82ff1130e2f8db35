// Package wordbook implements the wordbook business logic: CRUD with the
// owner-or-public visibility rule, the search pipeline, and atomic
// duplication.
package wordbook

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordbookRepo interface {
	Create(ctx context.Context, wb *domain.Wordbook) error
	GetByID(ctx context.Context, id string) (*domain.Wordbook, error)
	Update(ctx context.Context, wb *domain.Wordbook) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Wordbook, error)
	ListOrdered(ctx context.Context, sortBy string, desc bool) ([]*domain.Wordbook, error)
}

type cardRepo interface {
	Create(ctx context.Context, card *domain.WordCard) error
	ListByWordbook(ctx context.Context, wordbookID string) ([]*domain.WordCard, error)
	DeleteByWordbook(ctx context.Context, wordbookID string) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the wordbook business logic.
type Service struct {
	log       *slog.Logger
	wordbooks wordbookRepo
	cards     cardRepo
	users     userRepo
	tx        txManager
}

// NewService creates a new wordbook service.
func NewService(
	logger *slog.Logger,
	wordbooks wordbookRepo,
	cards cardRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "wordbook"),
		wordbooks: wordbooks,
		cards:     cards,
		users:     users,
		tx:        tx,
	}
}
