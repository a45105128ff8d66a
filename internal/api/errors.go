package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/showroom-api/internal/service/auth"
	"github.com/phrazzld/showroom-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrAuthHeaderMissing),
		errors.Is(err, auth.ErrAuthHeaderMalformed),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrInvalidHeader),
		errors.Is(err, auth.ErrPermissionsMissing):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, auth.ErrPermissionDenied):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors. Constraint violations during writes are
	// surfaced as 400, losing the underlying cause detail.
	case errors.Is(err, store.ErrInvalidReference),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// FallbackMessage returns the generic message for a status family,
// used when no more specific message applies.
func FallbackMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "internal server error"
	}
}
