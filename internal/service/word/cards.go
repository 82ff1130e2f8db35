package word

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// CreateCard saves a card into the user's wordbook. The card write and the
// wordbook's num_words increment happen in one transaction; the counter is
// never updated without the card mutation it pairs with.
func (s *Service) CreateCard(ctx context.Context, userID string, in CreateCardInput) (*domain.WordCard, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	wb, err := s.wordbooks.GetByID(ctx, in.WordbookID)
	if err != nil {
		return nil, err
	}
	if wb.OwnerID != userID {
		return nil, fmt.Errorf("wordbook %s: %w", wb.ID, domain.ErrForbidden)
	}

	now := time.Now().UTC()
	card := &domain.WordCard{
		ID:               uuid.NewString(),
		WordbookID:       in.WordbookID,
		OwnerID:          userID,
		English:          in.English,
		Definitions:      in.Definitions,
		Synonyms:         in.Synonyms,
		ExampleSentences: in.ExampleSentences,
		Phonetics:        in.Phonetics,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.cards.Create(ctx, card); err != nil {
			return err
		}
		return s.wordbooks.AdjustWordCount(ctx, in.WordbookID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", card.ID),
		slog.String("wordbook_id", card.WordbookID),
	)
	return card, nil
}

// DeleteCard removes a card and decrements the parent wordbook's counter in
// the same transaction. The counter never goes below zero even if it was
// already inconsistent.
func (s *Service) DeleteCard(ctx context.Context, userID, cardID string) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.OwnerID != userID {
		return fmt.Errorf("word card %s: %w", cardID, domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Transactional reads come before writes.
		wb, err := s.wordbooks.GetByID(ctx, card.WordbookID)
		if err != nil {
			return err
		}

		if err := s.cards.Delete(ctx, cardID); err != nil {
			return err
		}
		if wb.NumWords > 0 {
			return s.wordbooks.AdjustWordCount(ctx, card.WordbookID, -1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("card_id", cardID),
		slog.String("wordbook_id", card.WordbookID),
	)
	return nil
}

// ListCards returns the cards of a wordbook the requester may see.
func (s *Service) ListCards(ctx context.Context, userID, wordbookID string) ([]*domain.WordCard, error) {
	wb, err := s.wordbooks.GetByID(ctx, wordbookID)
	if err != nil {
		return nil, err
	}
	if !wb.VisibleTo(userID) {
		return nil, fmt.Errorf("wordbook %s: %w", wordbookID, domain.ErrForbidden)
	}

	return s.cards.ListByWordbook(ctx, wordbookID)
}
