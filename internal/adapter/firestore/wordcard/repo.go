// Package wordcard implements the word card repository backed by Firestore.
package wordcard

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	store "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

const (
	collection = "word_cards"

	// deleteChunk stays under the store's 500-write batch limit.
	deleteChunk = 500
)

// Repo provides word card persistence backed by Firestore.
type Repo struct {
	client *firestore.Client
}

// New creates a new word card repository.
func New(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(collection).Doc(id)
}

// Create stores a new card document keyed by its ID.
func (r *Repo) Create(ctx context.Context, card *domain.WordCard) error {
	if err := store.SetDoc(ctx, r.doc(card.ID), card); err != nil {
		return store.MapError(err, "word card", card.ID)
	}
	return nil
}

// GetByID returns a card by ID.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.WordCard, error) {
	doc, err := store.GetDoc(ctx, r.doc(id))
	if err != nil {
		return nil, store.MapError(err, "word card", id)
	}

	var card domain.WordCard
	if err := doc.DataTo(&card); err != nil {
		return nil, fmt.Errorf("decode word card %s: %w", id, err)
	}
	return &card, nil
}

// Delete removes a card document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := store.DeleteDoc(ctx, r.doc(id)); err != nil {
		return store.MapError(err, "word card", id)
	}
	return nil
}

// ListByWordbook returns all cards of one wordbook, oldest first.
func (r *Repo) ListByWordbook(ctx context.Context, wordbookID string) ([]*domain.WordCard, error) {
	q := r.client.Collection(collection).
		Where("wordbook_id", "==", wordbookID).
		OrderBy("created_at", firestore.Asc)

	iter := store.Docs(ctx, q)
	defer iter.Stop()

	var cards []*domain.WordCard
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, store.MapError(err, "word card", "list")
		}

		var card domain.WordCard
		if err := doc.DataTo(&card); err != nil {
			return nil, fmt.Errorf("decode word card %s: %w", doc.Ref.ID, err)
		}
		cards = append(cards, &card)
	}
	return cards, nil
}

// DeleteByWordbook removes every card of a wordbook in bounded batches and
// returns the number of deleted cards. Not transactional: a wordbook delete
// may leave orphan cards if interrupted, which a later run cleans up.
func (r *Repo) DeleteByWordbook(ctx context.Context, wordbookID string) (int, error) {
	iter := r.client.Collection(collection).
		Where("wordbook_id", "==", wordbookID).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	batch := r.client.Batch()
	pending := 0

	flush := func() error {
		if pending == 0 {
			return nil
		}
		if _, err := batch.Commit(ctx); err != nil {
			return store.MapError(err, "word card batch", wordbookID)
		}
		deleted += pending
		batch = r.client.Batch()
		pending = 0
		return nil
	}

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return deleted, store.MapError(err, "word card", "list")
		}

		batch.Delete(doc.Ref)
		pending++
		if pending == deleteChunk {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}

	if err := flush(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
