// Package bookmark implements bookmark business logic. One bookmark per
// (user, card) pair, enforced by an existence check before insert.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type bookmarkRepo interface {
	Create(ctx context.Context, b *domain.Bookmark) error
	GetByID(ctx context.Context, id string) (*domain.Bookmark, error)
	GetByCard(ctx context.Context, userID, cardID string) (*domain.Bookmark, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Bookmark, error)
	Delete(ctx context.Context, id string) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id string) (*domain.WordCard, error)
}

type wordbookRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Wordbook, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the bookmark business logic.
type Service struct {
	log       *slog.Logger
	bookmarks bookmarkRepo
	cards     cardRepo
	wordbooks wordbookRepo
}

// NewService creates a new bookmark service.
func NewService(logger *slog.Logger, bookmarks bookmarkRepo, cards cardRepo, wordbooks wordbookRepo) *Service {
	return &Service{
		log:       logger.With("service", "bookmark"),
		bookmarks: bookmarks,
		cards:     cards,
		wordbooks: wordbooks,
	}
}

// Create bookmarks a card the user may see. A second bookmark for the same
// (user, card) pair is a conflict. The check-then-insert is not wrapped in a
// transaction: two simultaneous creations can race, which is accepted.
func (s *Service) Create(ctx context.Context, userID, cardID string) (*domain.Bookmark, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	wb, err := s.wordbooks.GetByID(ctx, card.WordbookID)
	if err != nil {
		return nil, err
	}
	if !wb.VisibleTo(userID) {
		return nil, fmt.Errorf("word card %s: %w", cardID, domain.ErrForbidden)
	}

	if _, err := s.bookmarks.GetByCard(ctx, userID, cardID); err == nil {
		return nil, fmt.Errorf("bookmark for card %s: %w", cardID, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	b := &domain.Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		CardID:    cardID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bookmarks.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "bookmark created",
		slog.String("bookmark_id", b.ID),
		slog.String("card_id", cardID),
	)
	return b, nil
}

// List returns the user's bookmarks, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, userID)
}

// Exists reports whether the user has bookmarked a card.
func (s *Service) Exists(ctx context.Context, userID, cardID string) (bool, error) {
	_, err := s.bookmarks.GetByCard(ctx, userID, cardID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes one of the user's bookmarks by ID.
func (s *Service) Delete(ctx context.Context, userID, bookmarkID string) error {
	b, err := s.bookmarks.GetByID(ctx, bookmarkID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return fmt.Errorf("bookmark %s: %w", bookmarkID, domain.ErrForbidden)
	}
	return s.bookmarks.Delete(ctx, bookmarkID)
}

// DeleteByCard removes the user's bookmark for a card, addressing it by the
// card instead of the bookmark ID.
func (s *Service) DeleteByCard(ctx context.Context, userID, cardID string) error {
	b, err := s.bookmarks.GetByCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	return s.bookmarks.Delete(ctx, b.ID)
}
