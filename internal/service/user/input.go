package user

import "github.com/heartmarshall/aivocab-backend/internal/domain"

// ProfileInput carries the updatable profile fields.
type ProfileInput struct {
	DisplayName string
	Email       string
	PhotoURL    string
}

// Validate checks required fields.
func (in ProfileInput) Validate() error {
	if in.DisplayName == "" {
		return domain.NewValidationError("display_name", "must not be empty")
	}
	return nil
}

// SettingsInput carries a partial settings update. Nil fields stay
// unchanged.
type SettingsInput struct {
	Theme         *string
	AutoPlayAudio *bool
}

// validThemes are the client-supported theme names.
var validThemes = map[string]bool{"system": true, "light": true, "dark": true}

// Validate checks the provided fields.
func (in SettingsInput) Validate() error {
	if in.Theme != nil && !validThemes[*in.Theme] {
		return domain.NewValidationError("theme", "unsupported theme")
	}
	return nil
}
