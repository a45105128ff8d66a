package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load configuration from environment variables, with a .env file as a
// best-effort fallback for local development. Environment variables take
// precedence over values from the .env file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Hydrate the process environment from .env if present. A missing
	// file is not an error; deployed environments set real variables.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	// Bind the environment variables each setting is read from.
	// BindEnv never fails when given at least one key.
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.log_level", "LOG_LEVEL")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("auth.domain", "AUTH_DOMAIN")
	_ = v.BindEnv("auth.audience", "AUTH_AUDIENCE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
