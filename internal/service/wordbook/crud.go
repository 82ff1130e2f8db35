package wordbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// Create stores a new wordbook owned by the user. The owner's display name
// is denormalized onto the wordbook so search and listings need no join.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Wordbook, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	wb := &domain.Wordbook{
		ID:          uuid.NewString(),
		Name:        in.Name,
		OwnerID:     userID,
		OwnerName:   s.ownerName(ctx, userID),
		IsPublic:    in.IsPublic,
		NumWords:    0,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.wordbooks.Create(ctx, wb); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "wordbook created",
		slog.String("wordbook_id", wb.ID),
		slog.Bool("is_public", wb.IsPublic),
	)
	return wb, nil
}

// ownerName resolves the user's display name, tolerating a missing profile.
func (s *Service) ownerName(ctx context.Context, userID string) string {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "resolve owner name failed",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		}
		return ""
	}
	return u.DisplayName
}

// Get returns a wordbook the requester may see.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Wordbook, error) {
	wb, err := s.wordbooks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !wb.VisibleTo(userID) {
		return nil, fmt.Errorf("wordbook %s: %w", id, domain.ErrForbidden)
	}
	return wb, nil
}

// ListMine returns all wordbooks owned by the user, newest first.
func (s *Service) ListMine(ctx context.Context, userID string) ([]*domain.Wordbook, error) {
	return s.wordbooks.ListByOwner(ctx, userID)
}

// Update applies a partial update to an owned wordbook.
func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (*domain.Wordbook, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	wb, err := s.wordbooks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wb.OwnerID != userID {
		return nil, fmt.Errorf("wordbook %s: %w", id, domain.ErrForbidden)
	}

	if in.Name != nil {
		wb.Name = *in.Name
	}
	if in.Description != nil {
		wb.Description = *in.Description
	}
	if in.IsPublic != nil {
		wb.IsPublic = *in.IsPublic
	}
	wb.UpdatedAt = time.Now().UTC()

	if err := s.wordbooks.Update(ctx, wb); err != nil {
		return nil, err
	}
	return wb, nil
}

// Delete removes an owned wordbook and all its cards. Cards go first, in
// bounded batches, so an interrupted delete never leaves orphan cards behind
// a missing wordbook.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	wb, err := s.wordbooks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wb.OwnerID != userID {
		return fmt.Errorf("wordbook %s: %w", id, domain.ErrForbidden)
	}

	deleted, err := s.cards.DeleteByWordbook(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cards of wordbook %s: %w", id, err)
	}
	if err := s.wordbooks.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "wordbook deleted",
		slog.String("wordbook_id", id),
		slog.Int("cards_deleted", deleted),
	)
	return nil
}
