// Package rest contains the HTTP handlers and JSON plumbing for the public
// API. Handlers depend on small consumer-defined service interfaces and map
// domain errors to HTTP status codes in one place.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError translates domain errors to HTTP responses. Unknown errors
// are logged and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrGeneration):
		log.ErrorContext(r.Context(), "generation unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "generation unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireUserOptional extracts the UID when present. Anonymous requests get
// an empty UID; visibility checks downstream handle the rest.
func requireUserOptional(r *http.Request) (string, bool) {
	return ctxutil.UserIDFromCtx(r.Context())
}

// requireUser extracts the authenticated UID or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return uid, true
}
