package domain

import "time"

// Wordbook is a named, owned collection of word cards with a visibility flag.
// NumWords is a denormalized counter kept equal to the live card count; every
// card mutation adjusts it in the same atomic unit.
type Wordbook struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	OwnerID     string    `json:"owner_id" firestore:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty" firestore:"owner_name"`
	IsPublic    bool      `json:"is_public" firestore:"is_public"`
	NumWords    int       `json:"num_words" firestore:"num_words"`
	Description string    `json:"description,omitempty" firestore:"description"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

// VisibleTo reports whether the wordbook can be read by the given user.
func (w Wordbook) VisibleTo(userID string) bool {
	return w.IsPublic || w.OwnerID == userID
}

// WordbookFilter contains the user-supplied search filters. The visibility
// rule (owner or public) is not part of the filter: it is applied
// unconditionally before any of these.
type WordbookFilter struct {
	Query    string
	IsPublic *bool
	IsOwned  *bool
	MinWords *int
}

// Sort fields accepted by the wordbook search.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByName      = "name"
	SortByNumWords  = "num_words"
)
