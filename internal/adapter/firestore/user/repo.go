// Package user implements the user profile and settings repositories backed
// by Firestore. Profiles are keyed by the identity provider UID; settings
// live in their own collection under the same key.
package user

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	store "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

const (
	usersCollection    = "users"
	settingsCollection = "user_settings"
)

// Repo provides user profile persistence backed by Firestore.
type Repo struct {
	client *firestore.Client
}

// New creates a new user repository.
func New(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

// GetByID returns a user profile by UID.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := store.GetDoc(ctx, r.client.Collection(usersCollection).Doc(id))
	if err != nil {
		return nil, store.MapError(err, "user", id)
	}

	var u domain.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return &u, nil
}

// Save upserts a user profile.
func (r *Repo) Save(ctx context.Context, u *domain.User) error {
	if err := store.SetDoc(ctx, r.client.Collection(usersCollection).Doc(u.ID), u); err != nil {
		return store.MapError(err, "user", u.ID)
	}
	return nil
}

// GetSettings returns the user's saved settings, or domain.ErrNotFound when
// they have never been saved.
func (r *Repo) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	doc, err := store.GetDoc(ctx, r.client.Collection(settingsCollection).Doc(userID))
	if err != nil {
		return nil, store.MapError(err, "user settings", userID)
	}

	var s domain.UserSettings
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("decode user settings %s: %w", userID, err)
	}
	return &s, nil
}

// SaveSettings upserts the user's settings.
func (r *Repo) SaveSettings(ctx context.Context, s *domain.UserSettings) error {
	if err := store.SetDoc(ctx, r.client.Collection(settingsCollection).Doc(s.UserID), s); err != nil {
		return store.MapError(err, "user settings", s.UserID)
	}
	return nil
}
