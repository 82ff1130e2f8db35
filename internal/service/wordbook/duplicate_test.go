package wordbook

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

func TestService_Duplicate(t *testing.T) {
	t.Parallel()

	source := &domain.Wordbook{
		ID:       "wb-src",
		Name:     "JLPT N2",
		OwnerID:  "user-a",
		IsPublic: true,
		NumWords: 3,
	}
	sourceCards := []*domain.WordCard{
		{ID: "card-1", WordbookID: "wb-src", OwnerID: "user-a", English: "alpha"},
		{ID: "card-2", WordbookID: "wb-src", OwnerID: "user-a", English: "beta"},
		{ID: "card-3", WordbookID: "wb-src", OwnerID: "user-a", English: "gamma"},
	}

	t.Run("copies cards with fresh ids into one new wordbook", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService()
		d.wordbooks.GetByIDFunc = func(_ context.Context, _ string) (*domain.Wordbook, error) {
			return source, nil
		}
		d.cards.ListByWordbookFunc = func(_ context.Context, _ string) ([]*domain.WordCard, error) {
			return sourceCards, nil
		}

		dup, err := svc.Duplicate(context.Background(), "user-b", "wb-src")
		require.NoError(t, err)

		assert.NotEqual(t, "wb-src", dup.ID)
		assert.Equal(t, "JLPT N2", dup.Name)
		assert.Equal(t, "user-b", dup.OwnerID)
		assert.False(t, dup.IsPublic)
		assert.Equal(t, 3, dup.NumWords)

		assert.Equal(t, 1, d.tx.Calls)
		require.Len(t, d.cards.Created, 3)

		originals := map[string]bool{"card-1": true, "card-2": true, "card-3": true}
		for _, card := range d.cards.Created {
			assert.False(t, originals[card.ID], "copied card reused a source id")
			assert.Equal(t, dup.ID, card.WordbookID)
			assert.Equal(t, "user-b", card.OwnerID)
		}
	})

	t.Run("owner can duplicate their own private wordbook", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService()
		private := &domain.Wordbook{ID: "wb-src", OwnerID: "user-a"}
		d.wordbooks.GetByIDFunc = func(_ context.Context, _ string) (*domain.Wordbook, error) {
			return private, nil
		}

		_, err := svc.Duplicate(context.Background(), "user-a", "wb-src")
		assert.NoError(t, err)
	})

	t.Run("stranger cannot duplicate a private wordbook", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService()
		private := &domain.Wordbook{ID: "wb-src", OwnerID: "user-a"}
		d.wordbooks.GetByIDFunc = func(_ context.Context, _ string) (*domain.Wordbook, error) {
			return private, nil
		}

		_, err := svc.Duplicate(context.Background(), "user-b", "wb-src")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Zero(t, d.tx.Calls)
	})

	t.Run("transaction failure leaves nothing visible", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService()
		d.wordbooks.GetByIDFunc = func(_ context.Context, _ string) (*domain.Wordbook, error) {
			return source, nil
		}
		d.tx.RunInTxFunc = func(_ context.Context, _ func(ctx context.Context) error) error {
			return errors.New("contention")
		}

		_, err := svc.Duplicate(context.Background(), "user-b", "wb-src")
		assert.Error(t, err)
	})

	t.Run("rejects sources that overflow one transaction", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService()
		d.wordbooks.GetByIDFunc = func(_ context.Context, _ string) (*domain.Wordbook, error) {
			return source, nil
		}
		huge := make([]*domain.WordCard, maxTxWrites)
		for i := range huge {
			huge[i] = &domain.WordCard{ID: fmt.Sprintf("card-%d", i)}
		}
		d.cards.ListByWordbookFunc = func(_ context.Context, _ string) ([]*domain.WordCard, error) {
			return huge, nil
		}

		_, err := svc.Duplicate(context.Background(), "user-b", "wb-src")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, d.wordbooks.Created)
	})
}
