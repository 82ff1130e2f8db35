// Package firebaseauth verifies Firebase ID tokens. The backend trusts
// Firebase for the whole identity story: no local credentials, no sessions,
// just bearer tokens resolved to a UID on every request.
package firebaseauth

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/heartmarshall/aivocab-backend/internal/config"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// Verifier validates Firebase ID tokens against the configured project.
type Verifier struct {
	client *auth.Client
	log    *slog.Logger
}

// NewVerifier creates a Verifier from FirestoreConfig. The same service
// account credentials back both the document store and token verification.
func NewVerifier(ctx context.Context, cfg config.FirestoreConfig, logger *slog.Logger) (*Verifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firebase auth client: %w", err)
	}

	return &Verifier{
		client: client,
		log:    logger.With("adapter", "firebaseauth"),
	}, nil
}

// ValidateToken verifies an ID token and returns its UID. Any verification
// failure (expired, malformed, wrong project) maps to domain.ErrUnauthorized;
// the underlying cause is logged, never sent to the client.
func (v *Verifier) ValidateToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.log.DebugContext(ctx, "id token rejected", slog.String("error", err.Error()))
		return "", fmt.Errorf("verify id token: %w", domain.ErrUnauthorized)
	}
	return token.UID, nil
}
