// Package bookmark implements the bookmark repository backed by Firestore.
package bookmark

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	store "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

const collection = "bookmarks"

// Repo provides bookmark persistence backed by Firestore.
type Repo struct {
	client *firestore.Client
}

// New creates a new bookmark repository.
func New(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(collection).Doc(id)
}

// Create stores a new bookmark document keyed by its ID. Uniqueness of the
// (user, card) pair is checked by the service before calling this.
func (r *Repo) Create(ctx context.Context, b *domain.Bookmark) error {
	if err := store.SetDoc(ctx, r.doc(b.ID), b); err != nil {
		return store.MapError(err, "bookmark", b.ID)
	}
	return nil
}

// GetByID returns a bookmark by ID.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	doc, err := store.GetDoc(ctx, r.doc(id))
	if err != nil {
		return nil, store.MapError(err, "bookmark", id)
	}

	var b domain.Bookmark
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("decode bookmark %s: %w", id, err)
	}
	return &b, nil
}

// GetByCard returns the user's bookmark for a card, or domain.ErrNotFound.
func (r *Repo) GetByCard(ctx context.Context, userID, cardID string) (*domain.Bookmark, error) {
	q := r.client.Collection(collection).
		Where("user_id", "==", userID).
		Where("card_id", "==", cardID).
		Limit(1)

	iter := store.Docs(ctx, q)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, fmt.Errorf("bookmark for card %s: %w", cardID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, store.MapError(err, "bookmark", cardID)
	}

	var b domain.Bookmark
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("decode bookmark %s: %w", doc.Ref.ID, err)
	}
	return &b, nil
}

// ListByUser returns all bookmarks of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	q := r.client.Collection(collection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc)

	iter := store.Docs(ctx, q)
	defer iter.Stop()

	var bookmarks []*domain.Bookmark
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, store.MapError(err, "bookmark", "list")
		}

		var b domain.Bookmark
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("decode bookmark %s: %w", doc.Ref.ID, err)
		}
		bookmarks = append(bookmarks, &b)
	}
	return bookmarks, nil
}

// Delete removes a bookmark document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := store.DeleteDoc(ctx, r.doc(id)); err != nil {
		return store.MapError(err, "bookmark", id)
	}
	return nil
}
