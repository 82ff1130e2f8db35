// Package dictionary implements the offline dictionary repository backed by
// Firestore. Records are keyed by normalized headword, one document per word.
package dictionary

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	store "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// maxBatchWrites is the store's hard limit on writes per atomic batch.
const maxBatchWrites = 500

// Repo provides dictionary record persistence backed by Firestore.
type Repo struct {
	client     *firestore.Client
	collection string
}

// New creates a new dictionary repository over the given collection.
func New(client *firestore.Client, collection string) *Repo {
	return &Repo{client: client, collection: collection}
}

// GetByWord returns the record for a headword. The lookup key is the
// normalized form; callers may pass raw user input.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.DictionaryRecord, error) {
	key := domain.NormalizeWord(word)

	doc, err := store.GetDoc(ctx, r.client.Collection(r.collection).Doc(key))
	if err != nil {
		return nil, store.MapError(err, "dictionary record", key)
	}

	var rec domain.DictionaryRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("decode dictionary record %s: %w", key, err)
	}

	return &rec, nil
}

// CommitBatch writes one atomic batch of records, overwriting any existing
// documents for the same headwords. The batch must not exceed the store's
// 500-write limit; the build pipeline chunks accordingly.
func (r *Repo) CommitBatch(ctx context.Context, records []*domain.DictionaryRecord) error {
	if len(records) == 0 {
		return nil
	}
	if len(records) > maxBatchWrites {
		return fmt.Errorf("batch of %d records exceeds the %d-write limit", len(records), maxBatchWrites)
	}

	batch := r.client.Batch()
	for _, rec := range records {
		batch.Set(r.client.Collection(r.collection).Doc(rec.Word), rec)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return store.MapError(err, "dictionary batch", records[0].Word)
	}
	return nil
}
