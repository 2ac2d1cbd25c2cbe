// Package respond provides utilities for sending HTTP responses in JSON format.
// Errors are mapped to status codes from the domain sentinels and sanitised
// before they reach the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cahaya-digital/internal/domain/entity"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"article not found"`
	Field string `json:"field,omitempty" example:"title"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes err's message verbatim. Use only for messages built by the handler itself.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorResponse{Error: err.Error()})
}

var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

// SafeError returns validation-style messages as-is. Anything else, and every
// 5xx, is logged with secrets masked and replaced by "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	safe := false
	for _, s := range safeFragments {
		if strings.Contains(lower, s) {
			safe = true
			break
		}
	}
	if code >= 500 {
		safe = false
	}
	if safe {
		JSON(w, code, ErrorResponse{Error: msg})
		return
	}
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorResponse{Error: "internal server error"})
}

// Status maps a domain error to its HTTP status code.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DomainError writes the response for an error returned by a use case.
// resource names the entity in not-found and conflict messages ("article", "user").
func DomainError(w http.ResponseWriter, resource string, err error) {
	if err == nil {
		return
	}
	code := Status(err)
	switch code {
	case http.StatusNotFound:
		JSON(w, code, ErrorResponse{Error: resource + " not found"})
	case http.StatusConflict:
		JSON(w, code, ErrorResponse{Error: resource + " already exists"})
	case http.StatusBadRequest:
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			JSON(w, code, ErrorResponse{Error: ve.Field + " " + ve.Message, Field: ve.Field})
			return
		}
		SafeError(w, code, err)
	case http.StatusServiceUnavailable:
		slog.Default().Warn("storage unavailable",
			slog.String("resource", resource),
			slog.String("error", SanitizeError(err)))
		JSON(w, code, ErrorResponse{Error: "service temporarily unavailable"})
	default:
		SafeError(w, code, err)
	}
}
