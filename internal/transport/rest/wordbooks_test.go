package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/service/wordbook"
)

type wordbookServiceMock struct {
	CreateFunc    func(ctx context.Context, userID string, in wordbook.CreateInput) (*domain.Wordbook, error)
	GetFunc       func(ctx context.Context, userID, id string) (*domain.Wordbook, error)
	ListMineFunc  func(ctx context.Context, userID string) ([]*domain.Wordbook, error)
	UpdateFunc    func(ctx context.Context, userID, id string, in wordbook.UpdateInput) (*domain.Wordbook, error)
	DeleteFunc    func(ctx context.Context, userID, id string) error
	SearchFunc    func(ctx context.Context, requesterID string, in wordbook.SearchInput) (*wordbook.SearchResult, error)
	DuplicateFunc func(ctx context.Context, userID, sourceID string) (*domain.Wordbook, error)
}

func (m *wordbookServiceMock) Create(ctx context.Context, userID string, in wordbook.CreateInput) (*domain.Wordbook, error) {
	return m.CreateFunc(ctx, userID, in)
}

func (m *wordbookServiceMock) Get(ctx context.Context, userID, id string) (*domain.Wordbook, error) {
	return m.GetFunc(ctx, userID, id)
}

func (m *wordbookServiceMock) ListMine(ctx context.Context, userID string) ([]*domain.Wordbook, error) {
	return m.ListMineFunc(ctx, userID)
}

func (m *wordbookServiceMock) Update(ctx context.Context, userID, id string, in wordbook.UpdateInput) (*domain.Wordbook, error) {
	return m.UpdateFunc(ctx, userID, id, in)
}

func (m *wordbookServiceMock) Delete(ctx context.Context, userID, id string) error {
	return m.DeleteFunc(ctx, userID, id)
}

func (m *wordbookServiceMock) Search(ctx context.Context, requesterID string, in wordbook.SearchInput) (*wordbook.SearchResult, error) {
	return m.SearchFunc(ctx, requesterID, in)
}

func (m *wordbookServiceMock) Duplicate(ctx context.Context, userID, sourceID string) (*domain.Wordbook, error) {
	return m.DuplicateFunc(ctx, userID, sourceID)
}

func TestWordbookHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a wordbook", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			CreateFunc: func(_ context.Context, userID string, in wordbook.CreateInput) (*domain.Wordbook, error) {
				assert.Equal(t, "uid-1", userID)
				assert.Equal(t, "TOEIC", in.Name)
				assert.True(t, in.IsPublic)
				return &domain.Wordbook{ID: "wb-1", Name: in.Name}, nil
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		body := `{"name":"TOEIC","description":"exam prep","is_public":true}`
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/wordbooks", strings.NewReader(body)), "uid-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp domain.Wordbook
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "wb-1", resp.ID)
	})

	t.Run("requires auth", func(t *testing.T) {
		t.Parallel()
		h := NewWordbookHandler(&wordbookServiceMock{}, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/wordbooks", strings.NewReader(`{"name":"x"}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			CreateFunc: func(_ context.Context, _ string, _ wordbook.CreateInput) (*domain.Wordbook, error) {
				return nil, domain.NewValidationError("name", "must not be empty")
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/wordbooks", strings.NewReader(`{"name":""}`)), "uid-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWordbookHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("partial update passes only provided fields", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			UpdateFunc: func(_ context.Context, userID, id string, in wordbook.UpdateInput) (*domain.Wordbook, error) {
				assert.Equal(t, "wb-1", id)
				require.NotNil(t, in.Name)
				assert.Equal(t, "Renamed", *in.Name)
				assert.Nil(t, in.Description)
				assert.Nil(t, in.IsPublic)
				return &domain.Wordbook{ID: id, Name: *in.Name}, nil
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := authed(httptest.NewRequest(http.MethodPatch, "/api/v1/wordbooks/wb-1", strings.NewReader(`{"name":"Renamed"}`)), "uid-1")
		req.SetPathValue("id", "wb-1")
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign wordbook maps to 403", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			UpdateFunc: func(_ context.Context, _, _ string, _ wordbook.UpdateInput) (*domain.Wordbook, error) {
				return nil, domain.ErrForbidden
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := authed(httptest.NewRequest(http.MethodPatch, "/api/v1/wordbooks/wb-1", strings.NewReader(`{"name":"x"}`)), "uid-2")
		req.SetPathValue("id", "wb-1")
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestWordbookHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses query parameters", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			SearchFunc: func(_ context.Context, requesterID string, in wordbook.SearchInput) (*wordbook.SearchResult, error) {
				assert.Equal(t, "uid-1", requesterID)
				assert.Equal(t, "toeic", in.Filter.Query)
				require.NotNil(t, in.Filter.IsPublic)
				assert.True(t, *in.Filter.IsPublic)
				require.NotNil(t, in.Filter.MinWords)
				assert.Equal(t, 10, *in.Filter.MinWords)
				assert.Equal(t, "num_words", in.SortBy)
				assert.True(t, in.SortDesc)
				assert.Equal(t, 2, in.Page)
				assert.Equal(t, 50, in.Limit)
				return &wordbook.SearchResult{Page: 2, TotalPages: 3, Query: "toeic"}, nil
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		url := "/api/v1/wordbooks/search?q=toeic&is_public=true&min_words=10&sort_by=num_words&order=desc&page=2&limit=50"
		req := authed(httptest.NewRequest(http.MethodGet, url, nil), "uid-1")
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp wordbook.SearchResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Page)
	})

	t.Run("anonymous search is allowed", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			SearchFunc: func(_ context.Context, requesterID string, _ wordbook.SearchInput) (*wordbook.SearchResult, error) {
				assert.Empty(t, requesterID)
				return &wordbook.SearchResult{TotalPages: 1}, nil
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wordbooks/search", nil)
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects non-boolean is_public", func(t *testing.T) {
		t.Parallel()
		h := NewWordbookHandler(&wordbookServiceMock{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wordbooks/search?is_public=maybe", nil)
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown sort field maps to 400", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			SearchFunc: func(_ context.Context, _ string, _ wordbook.SearchInput) (*wordbook.SearchResult, error) {
				return nil, domain.NewValidationError("sort_by", "unknown sort field")
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wordbooks/search?sort_by=owner_id", nil)
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWordbookHandler_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("duplicates a visible wordbook", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			DuplicateFunc: func(_ context.Context, userID, sourceID string) (*domain.Wordbook, error) {
				assert.Equal(t, "uid-1", userID)
				assert.Equal(t, "wb-src", sourceID)
				return &domain.Wordbook{ID: "wb-copy", OwnerID: userID}, nil
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/wordbooks/wb-src/duplicate", nil), "uid-1")
		req.SetPathValue("id", "wb-src")
		rec := httptest.NewRecorder()

		h.Duplicate(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "wb-copy")
	})

	t.Run("private source maps to 403", func(t *testing.T) {
		t.Parallel()
		svc := &wordbookServiceMock{
			DuplicateFunc: func(_ context.Context, _, _ string) (*domain.Wordbook, error) {
				return nil, domain.ErrForbidden
			},
		}
		h := NewWordbookHandler(svc, testLogger())

		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/wordbooks/wb-src/duplicate", nil), "uid-2")
		req.SetPathValue("id", "wb-src")
		rec := httptest.NewRecorder()

		h.Duplicate(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestWordbookHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := &wordbookServiceMock{
		DeleteFunc: func(_ context.Context, userID, id string) error {
			assert.Equal(t, "uid-1", userID)
			assert.Equal(t, "wb-1", id)
			return nil
		},
	}
	h := NewWordbookHandler(svc, testLogger())

	req := authed(httptest.NewRequest(http.MethodDelete, "/api/v1/wordbooks/wb-1", nil), "uid-1")
	req.SetPathValue("id", "wb-1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
