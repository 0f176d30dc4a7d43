// Package handlers exposes the composed view models over a small JSON API.
// Handlers hold a composer and a logger, register their own routes on the
// mux, and translate the error taxonomy to status codes. No view shaping
// happens here; that is the composers' job.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteComposerError maps a composition failure to the API contract:
// a required lookup that matched nothing is 404, a failed store read is 502
// (the UI offers retry on that one), anything else is 500.
func WriteComposerError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var upstream *apperrors.UpstreamError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "not_found", "Requested record does not exist")
	case errors.As(err, &upstream):
		_ = ErrorResponse(w, http.StatusBadGateway, "upstream_error", "Entity store read failed")
	default:
		logger.Error("Unhandled composition error", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal error")
	}
}
