package wordbook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// maxTxWrites is the store's hard limit on writes per transaction: the new
// wordbook plus one write per copied card must fit.
const maxTxWrites = 500

// Duplicate copies a readable wordbook into a new one owned by the
// requester. All writes (new wordbook, all copied cards) happen in one
// transaction: a partial failure leaves no new wordbook visible. The copy
// starts private regardless of the source's visibility.
func (s *Service) Duplicate(ctx context.Context, userID, sourceID string) (*domain.Wordbook, error) {
	src, err := s.wordbooks.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if !src.VisibleTo(userID) {
		return nil, fmt.Errorf("wordbook %s: %w", sourceID, domain.ErrForbidden)
	}

	now := time.Now().UTC()
	dup := &domain.Wordbook{
		ID:          uuid.NewString(),
		Name:        src.Name,
		OwnerID:     userID,
		OwnerName:   s.ownerName(ctx, userID),
		IsPublic:    false,
		Description: src.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Transactional read before any write: the copied card set is the
		// one the transaction observed.
		cards, err := s.cards.ListByWordbook(ctx, sourceID)
		if err != nil {
			return err
		}
		if len(cards)+1 > maxTxWrites {
			return domain.NewValidationError("wordbook", "too many cards to duplicate")
		}

		dup.NumWords = len(cards)
		if err := s.wordbooks.Create(ctx, dup); err != nil {
			return err
		}

		for _, src := range cards {
			copy := *src
			copy.ID = uuid.NewString()
			copy.WordbookID = dup.ID
			copy.OwnerID = userID
			copy.CreatedAt = now
			copy.UpdatedAt = now
			if err := s.cards.Create(ctx, &copy); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "wordbook duplicated",
		slog.String("source_id", sourceID),
		slog.String("wordbook_id", dup.ID),
		slog.Int("cards_copied", dup.NumWords),
	)
	return dup, nil
}
