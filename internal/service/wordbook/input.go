package wordbook

import "github.com/heartmarshall/aivocab-backend/internal/domain"

// Name length limit matches what the clients enforce.
const maxNameLength = 100

// CreateInput carries the fields for creating a wordbook.
type CreateInput struct {
	Name        string
	Description string
	IsPublic    bool
}

// Validate checks required fields.
func (in CreateInput) Validate() error {
	var errs []domain.FieldError
	if in.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if len(in.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput carries a partial wordbook update. Nil fields stay unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// Validate checks the provided fields.
func (in UpdateInput) Validate() error {
	if in.Name != nil {
		if *in.Name == "" {
			return domain.NewValidationError("name", "must not be empty")
		}
		if len(*in.Name) > maxNameLength {
			return domain.NewValidationError("name", "too long")
		}
	}
	return nil
}

// SearchInput carries the user-supplied search parameters. Zero values get
// defaults in Search.
type SearchInput struct {
	Filter   domain.WordbookFilter
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}
