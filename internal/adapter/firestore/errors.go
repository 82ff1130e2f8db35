package firestore

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// MapError converts Firestore/gRPC errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass
// through.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	case codes.PermissionDenied:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrForbidden)
	case codes.Unauthenticated:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrUnauthorized)
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
