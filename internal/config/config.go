package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the settings needed to verify bearer tokens minted
// by the external identity provider.
type AuthConfig struct {
	// Domain is the token issuer's domain (e.g. "example.eu.auth0.com").
	// The JWKS endpoint and expected issuer URL are derived from it.
	Domain string `mapstructure:"domain" validate:"required,hostname"`

	// Audience is the API identifier tokens must be minted for.
	Audience string `mapstructure:"audience" validate:"required"`
}

// IssuerURL returns the expected "iss" claim value for tokens.
func (c AuthConfig) IssuerURL() string {
	return "https://" + c.Domain + "/"
}

// JWKSURL returns the well-known endpoint publishing the issuer's signing keys.
func (c AuthConfig) JWKSURL() string {
	return "https://" + c.Domain + "/.well-known/jwks.json"
}
