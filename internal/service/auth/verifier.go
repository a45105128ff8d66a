package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the verified payload of a bearer token.
// It extends standard JWT registered claims with the issuer's
// permissions array.
type Claims struct {
	// Permissions is the set of capability strings granted to the caller
	// (e.g. "post:autos"). Membership is checked, not hierarchy.
	Permissions []string `json:"permissions,omitempty"`

	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against the trusted issuer and
// extracts their claims.
type Verifier interface {
	// Verify decodes and validates the raw token string.
	// Returns the decoded claims if the token is valid, or one of
	// ErrTokenExpired, ErrInvalidClaims, ErrInvalidHeader.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// ExtractToken pulls the raw token out of an Authorization header value.
// Returns ErrAuthHeaderMissing if the header is empty and
// ErrAuthHeaderMalformed unless it is exactly two space-separated parts
// with a case-insensitive "Bearer" scheme.
func ExtractToken(header string) (string, error) {
	if header == "" {
		return "", ErrAuthHeaderMissing
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrAuthHeaderMalformed
	}

	return parts[1], nil
}

// HasPermission reports whether the claims grant the required permission.
// Returns ErrPermissionsMissing when the claims carry no permissions
// array, and ErrPermissionDenied when the permission is not present.
func HasPermission(claims *Claims, required string) error {
	if claims == nil || claims.Permissions == nil {
		return ErrPermissionsMissing
	}

	for _, p := range claims.Permissions {
		if p == required {
			return nil
		}
	}

	return ErrPermissionDenied
}
