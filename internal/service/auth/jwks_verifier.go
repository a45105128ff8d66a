package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/phrazzld/showroom-api/internal/config"
)

// jwksMinRefreshInterval bounds how often the issuer's key set is re-fetched.
const jwksMinRefreshInterval = 15 * time.Minute

// JWKSVerifier implements the Verifier interface by validating RS256
// tokens against the issuer's published JSON Web Key Set. The key set
// is fetched from the issuer's well-known endpoint and cached with
// background refresh.
type JWKSVerifier struct {
	jwksURL  string
	issuer   string
	audience string
	cache    *jwk.Cache
	logger   *slog.Logger
}

// NewJWKSVerifier creates a verifier for the configured issuer and
// performs an initial key set fetch so misconfiguration fails at
// startup rather than on the first request.
// The provided context governs the lifetime of the background refresh.
// If logger is nil, a default logger will be used.
func NewJWKSVerifier(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (*JWKSVerifier, error) {
	return newJWKSVerifier(ctx, cfg.JWKSURL(), cfg.IssuerURL(), cfg.Audience, logger)
}

// newJWKSVerifier is the URL-level constructor behind NewJWKSVerifier.
func newJWKSVerifier(
	ctx context.Context,
	jwksURL, issuer, audience string,
	logger *slog.Logger,
) (*JWKSVerifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(jwksMinRefreshInterval)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS endpoint: %w", err)
	}

	if _, err := cache.Refresh(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", jwksURL, err)
	}

	return &JWKSVerifier{
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
		cache:    cache,
		logger:   logger.With(slog.String("component", "jwks_verifier")),
	}, nil
}

// Ensure JWKSVerifier implements the Verifier interface
var _ Verifier = (*JWKSVerifier)(nil)

// Verify implements Verifier.Verify
// It parses the token, resolves its signing key by key ID from the
// cached JWKS, and validates signature, expiry, audience and issuer.
func (v *JWKSVerifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, v.mapParseError(err)
	}

	return claims, nil
}

// keyFunc resolves the public key matching the token's kid header.
func (v *JWKSVerifier) keyFunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token header has no key ID")
		}

		set, err := v.cache.Get(ctx, v.jwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to get cached JWKS: %w", err)
		}

		key, found := set.LookupKeyID(kid)
		if !found {
			return nil, fmt.Errorf("no signing key found for key ID %q", kid)
		}

		var pubKey interface{}
		if err := key.Raw(&pubKey); err != nil {
			return nil, fmt.Errorf("failed to materialize signing key: %w", err)
		}

		return pubKey, nil
	}
}

// mapParseError translates golang-jwt parse failures into this package's
// sentinel errors so callers can surface distinct reasons.
func (v *JWKSVerifier) mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		v.logger.Debug("token rejected: expired")
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer):
		v.logger.Debug("token rejected: wrong audience or issuer")
		return ErrInvalidClaims
	default:
		v.logger.Debug("token rejected: unparseable or unknown key",
			slog.String("error", err.Error()))
		return ErrInvalidHeader
	}
}
