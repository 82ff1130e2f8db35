package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// TxManager manages Firestore transactions using the context pattern.
// Nested RunInTx calls are NOT supported: calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
//
// Firestore requires all transactional reads to happen before the first
// write; callbacks must order their repository calls accordingly.
type TxManager struct {
	client *firestore.Client
}

// NewTxManager creates a new TxManager.
func NewTxManager(client *firestore.Client) *TxManager {
	return &TxManager{client: client}
}

// RunInTx executes fn within a Firestore transaction. The transaction is
// carried in the context; repositories route their reads and writes through
// it when present. On error from fn the transaction is not committed. The
// store retries fn on write contention, so fn must be idempotent.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(withTx(ctx, tx))
	})
	if err != nil {
		return fmt.Errorf("run transaction: %w", err)
	}
	return nil
}

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx *firestore.Transaction) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// txFromCtx returns the transaction from context if present.
func txFromCtx(ctx context.Context) (*firestore.Transaction, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*firestore.Transaction)
	return tx, ok
}

// GetDoc reads a document, through the context transaction when present.
func GetDoc(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.Get(ref)
	}
	return ref.Get(ctx)
}

// SetDoc writes a document, through the context transaction when present.
func SetDoc(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.Set(ref, data)
	}
	_, err := ref.Set(ctx, data)
	return err
}

// UpdateDoc applies field updates, through the context transaction when
// present.
func UpdateDoc(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.Update(ref, updates)
	}
	_, err := ref.Update(ctx, updates)
	return err
}

// DeleteDoc deletes a document, through the context transaction when present.
func DeleteDoc(ctx context.Context, ref *firestore.DocumentRef) error {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.Delete(ref)
	}
	_, err := ref.Delete(ctx)
	return err
}

// Docs runs a query, through the context transaction when present.
func Docs(ctx context.Context, q firestore.Query) *firestore.DocumentIterator {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.Documents(q)
	}
	return q.Documents(ctx)
}
