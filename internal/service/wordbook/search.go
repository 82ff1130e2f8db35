package wordbook

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// Pagination bounds.
const (
	defaultLimit = 20
	maxLimit     = 100
)

// SearchResult is the paged search envelope.
type SearchResult struct {
	Wordbooks  []*domain.Wordbook `json:"wordbooks"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	HasNext    bool               `json:"has_next"`
	HasPrev    bool               `json:"has_prev"`
	Query      string             `json:"query"`
}

// sortFields is the whitelist of server-side sort fields.
var sortFields = map[string]bool{
	domain.SortByCreatedAt: true,
	domain.SortByUpdatedAt: true,
	domain.SortByName:      true,
	domain.SortByNumWords:  true,
}

// Search fetches the full collection sorted server-side, then applies the
// filter pipeline in memory. The store cannot combine arbitrary predicates
// in one query, and the collection is small enough that a full scan per
// search is the simpler trade.
//
// The visibility rule (requester owns it or it is public) is applied first
// and unconditionally. It is a security boundary, not a filter the caller
// can toggle.
func (s *Service) Search(ctx context.Context, requesterID string, in SearchInput) (*SearchResult, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = domain.SortByCreatedAt
		in.SortDesc = true
	}
	if !sortFields[sortBy] {
		return nil, domain.NewValidationError("sort_by", "unsupported sort field")
	}

	page := max(in.Page, 1)
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	books, err := s.wordbooks.ListOrdered(ctx, sortBy, in.SortDesc)
	if err != nil {
		return nil, err
	}

	filtered := lo.Filter(books, func(wb *domain.Wordbook, _ int) bool {
		return matches(wb, requesterID, in.Filter)
	})

	total := len(filtered)
	totalPages := max((total+limit-1)/limit, 1)

	start := (page - 1) * limit
	end := min(start+limit, total)
	pageItems := []*domain.Wordbook{}
	if start < total {
		pageItems = filtered[start:end]
	}

	return &SearchResult{
		Wordbooks:  pageItems,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Query:      in.Filter.Query,
	}, nil
}

// matches runs the ordered filter pipeline for one candidate.
func matches(wb *domain.Wordbook, requesterID string, f domain.WordbookFilter) bool {
	// 1. Hard visibility boundary, always first.
	if !wb.VisibleTo(requesterID) {
		return false
	}

	// 2. Explicit is_public filter.
	if f.IsPublic != nil && wb.IsPublic != *f.IsPublic {
		return false
	}

	// 3. Explicit is_owned filter.
	if f.IsOwned != nil {
		owned := wb.OwnerID == requesterID
		if owned != *f.IsOwned {
			return false
		}
	}

	// 4. Minimum word count.
	if f.MinWords != nil && wb.NumWords < *f.MinWords {
		return false
	}

	// 5. Free-text substring over name, description and owner display name.
	if f.Query != "" {
		haystack := strings.ToLower(wb.Name + " " + wb.Description + " " + wb.OwnerName)
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}

	return true
}
