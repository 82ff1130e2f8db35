package wordbook

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordbookRepo struct {
	CreateFunc      func(ctx context.Context, wb *domain.Wordbook) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Wordbook, error)
	UpdateFunc      func(ctx context.Context, wb *domain.Wordbook) error
	DeleteFunc      func(ctx context.Context, id string) error
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Wordbook, error)
	ListOrderedFunc func(ctx context.Context, sortBy string, desc bool) ([]*domain.Wordbook, error)

	Created []*domain.Wordbook
	Updated []*domain.Wordbook
	Deleted []string
}

func (m *mockWordbookRepo) Create(ctx context.Context, wb *domain.Wordbook) error {
	m.Created = append(m.Created, wb)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, wb)
	}
	return nil
}

func (m *mockWordbookRepo) GetByID(ctx context.Context, id string) (*domain.Wordbook, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordbookRepo) Update(ctx context.Context, wb *domain.Wordbook) error {
	m.Updated = append(m.Updated, wb)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, wb)
	}
	return nil
}

func (m *mockWordbookRepo) Delete(ctx context.Context, id string) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWordbookRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Wordbook, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockWordbookRepo) ListOrdered(ctx context.Context, sortBy string, desc bool) ([]*domain.Wordbook, error) {
	if m.ListOrderedFunc != nil {
		return m.ListOrderedFunc(ctx, sortBy, desc)
	}
	return nil, nil
}

type mockCardRepo struct {
	CreateFunc           func(ctx context.Context, card *domain.WordCard) error
	ListByWordbookFunc   func(ctx context.Context, wordbookID string) ([]*domain.WordCard, error)
	DeleteByWordbookFunc func(ctx context.Context, wordbookID string) (int, error)

	Created []*domain.WordCard
}

func (m *mockCardRepo) Create(ctx context.Context, card *domain.WordCard) error {
	m.Created = append(m.Created, card)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *mockCardRepo) ListByWordbook(ctx context.Context, wordbookID string) ([]*domain.WordCard, error) {
	if m.ListByWordbookFunc != nil {
		return m.ListByWordbookFunc(ctx, wordbookID)
	}
	return nil, nil
}

func (m *mockCardRepo) DeleteByWordbook(ctx context.Context, wordbookID string) (int, error) {
	if m.DeleteByWordbookFunc != nil {
		return m.DeleteByWordbookFunc(ctx, wordbookID)
	}
	return 0, nil
}

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
	Calls       int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

// ===========================================================================
// Helpers
// ===========================================================================

type deps struct {
	wordbooks *mockWordbookRepo
	cards     *mockCardRepo
	users     *mockUserRepo
	tx        *mockTxManager
}

func newTestService() (*Service, *deps) {
	d := &deps{
		wordbooks: &mockWordbookRepo{},
		cards:     &mockCardRepo{},
		users:     &mockUserRepo{},
		tx:        &mockTxManager{},
	}
	svc := NewService(slog.New(slog.DiscardHandler), d.wordbooks, d.cards, d.users, d.tx)
	return svc, d
}
