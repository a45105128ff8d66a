package auth

import "errors"

// Common authentication and authorization errors
var (
	// ErrAuthHeaderMissing indicates the Authorization header was absent
	ErrAuthHeaderMissing = errors.New("authorization header is expected")

	// ErrAuthHeaderMalformed indicates the Authorization header was not a
	// well-formed "Bearer <token>" value
	ErrAuthHeaderMalformed = errors.New("authorization header must be a bearer token")

	// ErrTokenExpired indicates the token has expired
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidClaims indicates the token carries the wrong audience or issuer
	ErrInvalidClaims = errors.New("incorrect claims, check the audience and issuer")

	// ErrInvalidHeader indicates the token could not be parsed or no
	// matching signing key was found for its key ID
	ErrInvalidHeader = errors.New("unable to parse authentication token")

	// ErrPermissionsMissing indicates the verified claims carry no
	// permissions array at all
	ErrPermissionsMissing = errors.New("permissions not included in token")

	// ErrPermissionDenied indicates the claims lack the required permission
	ErrPermissionDenied = errors.New("permission not found")
)
