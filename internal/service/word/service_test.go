package word

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/provider"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockDictionaryRepo struct {
	GetByWordFunc func(ctx context.Context, word string) (*domain.DictionaryRecord, error)
}

func (m *mockDictionaryRepo) GetByWord(ctx context.Context, word string) (*domain.DictionaryRecord, error) {
	if m.GetByWordFunc != nil {
		return m.GetByWordFunc(ctx, word)
	}
	return nil, domain.ErrNotFound
}

type mockLiveDictionary struct {
	FetchEntryFunc func(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

func (m *mockLiveDictionary) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	if m.FetchEntryFunc != nil {
		return m.FetchEntryFunc(ctx, word)
	}
	return nil, nil
}

type mockTextGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Prompts      []string
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "{}", nil
}

type mockCardRepo struct {
	CreateFunc         func(ctx context.Context, card *domain.WordCard) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.WordCard, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ListByWordbookFunc func(ctx context.Context, wordbookID string) ([]*domain.WordCard, error)

	Created []*domain.WordCard
	Deleted []string
}

func (m *mockCardRepo) Create(ctx context.Context, card *domain.WordCard) error {
	m.Created = append(m.Created, card)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *mockCardRepo) GetByID(ctx context.Context, id string) (*domain.WordCard, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCardRepo) Delete(ctx context.Context, id string) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCardRepo) ListByWordbook(ctx context.Context, wordbookID string) ([]*domain.WordCard, error) {
	if m.ListByWordbookFunc != nil {
		return m.ListByWordbookFunc(ctx, wordbookID)
	}
	return nil, nil
}

type mockWordbookRepo struct {
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Wordbook, error)
	AdjustWordCountFunc func(ctx context.Context, id string, delta int) error

	Adjustments []int
}

func (m *mockWordbookRepo) GetByID(ctx context.Context, id string) (*domain.Wordbook, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordbookRepo) AdjustWordCount(ctx context.Context, id string, delta int) error {
	m.Adjustments = append(m.Adjustments, delta)
	if m.AdjustWordCountFunc != nil {
		return m.AdjustWordCountFunc(ctx, id, delta)
	}
	return nil
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
	dict      *mockDictionaryRepo
	live      *mockLiveDictionary
	generator *mockTextGenerator
	cards     *mockCardRepo
	wordbooks *mockWordbookRepo
	tx        *mockTxManager
}

func newTestService() (*Service, *deps) {
	d := &deps{
		dict:      &mockDictionaryRepo{},
		live:      &mockLiveDictionary{},
		generator: &mockTextGenerator{},
		cards:     &mockCardRepo{},
		wordbooks: &mockWordbookRepo{},
		tx:        &mockTxManager{},
	}
	svc := NewService(
		slog.New(slog.DiscardHandler),
		d.dict, d.live, d.generator, d.cards, d.wordbooks, d.tx,
	)
	return svc, d
}
