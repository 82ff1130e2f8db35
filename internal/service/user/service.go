// Package user implements user profile and settings business logic.
// Profiles are created lazily on first access: the identity provider is the
// source of truth for who exists, the backend only stores what it is told.
package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	SaveSettings(ctx context.Context, s *domain.UserSettings) error
}

// Service implements the user business logic.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// GetProfile returns the user's profile, creating an empty one on first
// access.
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	u = &domain.User{ID: userID, CreatedAt: now, UpdatedAt: now}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile created", slog.String("user_id", userID))
	return u, nil
}

// UpdateProfile upserts the user's profile fields.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.DisplayName = in.DisplayName
	u.Email = in.Email
	u.PhotoURL = in.PhotoURL
	u.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetSettings returns the user's settings, falling back to defaults when
// they have never been saved.
func (s *Service) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.users.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultUserSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial update on top of the stored settings (or
// the defaults) and persists the result.
func (s *Service) UpdateSettings(ctx context.Context, userID string, in SettingsInput) (*domain.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Theme != nil {
		settings.Theme = *in.Theme
	}
	if in.AutoPlayAudio != nil {
		settings.AutoPlayAudio = *in.AutoPlayAudio
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.users.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
