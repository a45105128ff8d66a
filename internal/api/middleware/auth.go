package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/showroom-api/internal/api/shared"
	"github.com/phrazzld/showroom-api/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the verified claims to the request context for authorized requests.
// Every verification failure surfaces as 401 with a descriptive message;
// nothing is retried or recovered locally.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractToken(r.Header.Get("Authorization"))
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, headerErrorMessage(err))
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission wraps a route with a required-permission check against
// the claims placed in the context by Authenticate. The check runs on
// every request; authorization decisions are never cached.
func (m *AuthMiddleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token claims not found")
				return
			}

			if err := auth.HasPermission(claims, permission); err != nil {
				if errors.Is(err, auth.ErrPermissionsMissing) {
					shared.RespondWithError(w, r, http.StatusUnauthorized,
						"Permissions not included in token")
					return
				}
				shared.RespondWithError(w, r, http.StatusForbidden, "Permission not found")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims extracts the verified claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// headerErrorMessage maps header-extraction failures to the messages
// surfaced to clients.
func headerErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrAuthHeaderMissing):
		return "Authorization header is expected"
	case errors.Is(err, auth.ErrAuthHeaderMalformed):
		return "Authorization header must be in the form 'Bearer token'"
	default:
		return "Invalid authorization header"
	}
}
