// Package wordbook implements the wordbook repository backed by Firestore.
package wordbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	store "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

const collection = "wordbooks"

// Repo provides wordbook persistence backed by Firestore.
type Repo struct {
	client *firestore.Client
}

// New creates a new wordbook repository.
func New(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(collection).Doc(id)
}

// Create stores a new wordbook document keyed by its ID.
func (r *Repo) Create(ctx context.Context, wb *domain.Wordbook) error {
	if err := store.SetDoc(ctx, r.doc(wb.ID), wb); err != nil {
		return store.MapError(err, "wordbook", wb.ID)
	}
	return nil
}

// GetByID returns a wordbook by ID regardless of visibility; callers decide
// whether the requester may see it.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Wordbook, error) {
	doc, err := store.GetDoc(ctx, r.doc(id))
	if err != nil {
		return nil, store.MapError(err, "wordbook", id)
	}

	var wb domain.Wordbook
	if err := doc.DataTo(&wb); err != nil {
		return nil, fmt.Errorf("decode wordbook %s: %w", id, err)
	}
	return &wb, nil
}

// Update overwrites the stored wordbook document.
func (r *Repo) Update(ctx context.Context, wb *domain.Wordbook) error {
	if err := store.SetDoc(ctx, r.doc(wb.ID), wb); err != nil {
		return store.MapError(err, "wordbook", wb.ID)
	}
	return nil
}

// Delete removes the wordbook document. Cascade deletion of its cards is the
// service's responsibility.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := store.DeleteDoc(ctx, r.doc(id)); err != nil {
		return store.MapError(err, "wordbook", id)
	}
	return nil
}

// AdjustWordCount applies an atomic increment to the denormalized card
// counter and touches updated_at. Used inside the same transaction as the
// card write it pairs with.
func (r *Repo) AdjustWordCount(ctx context.Context, id string, delta int) error {
	err := store.UpdateDoc(ctx, r.doc(id), []firestore.Update{
		{Path: "num_words", Value: firestore.Increment(delta)},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	if err != nil {
		return store.MapError(err, "wordbook", id)
	}
	return nil
}

// ListByOwner returns all wordbooks owned by a user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Wordbook, error) {
	q := r.client.Collection(collection).
		Where("owner_id", "==", ownerID).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, q)
}

// ListOrdered returns every wordbook sorted server-side on the given field.
// The search pipeline applies visibility and filters on the result in memory.
func (r *Repo) ListOrdered(ctx context.Context, sortBy string, desc bool) ([]*domain.Wordbook, error) {
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}
	q := r.client.Collection(collection).OrderBy(sortBy, dir)
	return r.collect(ctx, q)
}

func (r *Repo) collect(ctx context.Context, q firestore.Query) ([]*domain.Wordbook, error) {
	iter := store.Docs(ctx, q)
	defer iter.Stop()

	var books []*domain.Wordbook
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, store.MapError(err, "wordbook", "list")
		}

		var wb domain.Wordbook
		if err := doc.DataTo(&wb); err != nil {
			return nil, fmt.Errorf("decode wordbook %s: %w", doc.Ref.ID, err)
		}
		books = append(books, &wb)
	}
	return books, nil
}
