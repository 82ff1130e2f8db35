// Package firestore holds the document-store client plumbing shared by the
// entity repositories: client construction, transaction management, and the
// error mapping from gRPC status codes to domain errors.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/heartmarshall/aivocab-backend/internal/config"
)

// NewClient creates a Firestore client configured from FirestoreConfig.
// When CredentialsJSON is empty the client uses application default
// credentials, which is how the emulator and GCP runtimes authenticate.
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	return client, nil
}

// Pinger adapts a Firestore client to the health-check interface.
type Pinger struct {
	client *firestore.Client
}

// NewPinger creates a Pinger.
func NewPinger(client *firestore.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping issues a cheap read to verify connectivity. Listing collections on an
// empty project yields iterator.Done, which still proves the store answers.
func (p *Pinger) Ping(ctx context.Context) error {
	_, err := p.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("ping firestore: %w", err)
	}
	return nil
}
