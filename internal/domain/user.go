package domain

import "time"

// User is a profile keyed by the identity provider UID.
type User struct {
	ID          string    `json:"id" firestore:"id"`
	DisplayName string    `json:"display_name" firestore:"display_name"`
	Email       string    `json:"email,omitempty" firestore:"email"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photo_url"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

// UserSettings holds per-user preferences.
type UserSettings struct {
	UserID        string    `json:"user_id" firestore:"user_id"`
	Theme         string    `json:"theme" firestore:"theme"`
	AutoPlayAudio bool      `json:"auto_play_audio" firestore:"auto_play_audio"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updated_at"`
}

// DefaultUserSettings returns the settings used before a user saves any.
func DefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		Theme:         "system",
		AutoPlayAudio: true,
	}
}
