package domain

import "time"

// Bookmark marks one word card for one user. At most one bookmark exists per
// (user, card) pair.
type Bookmark struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"user_id"`
	CardID    string    `json:"card_id" firestore:"card_id"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}
