package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/showroom-api/internal/config"
	"github.com/phrazzld/showroom-api/internal/platform/postgres"
	"github.com/phrazzld/showroom-api/internal/service/auth"
	"github.com/phrazzld/showroom-api/internal/store"
)

// application holds the process-wide dependencies, constructed once at
// startup and passed into request handlers. There is no module-level
// shared state; everything flows through this struct.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	autoStore  store.AutoStore
	buyerStore store.BuyerStore
	verifier   auth.Verifier
}

// newApplication wires the application's dependencies. The context
// governs the token verifier's background JWKS refresh.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	verifier, err := auth.NewJWKSVerifier(ctx, cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		autoStore:  postgres.NewAutoStore(db, logger),
		buyerStore: postgres.NewBuyerStore(db, logger),
		verifier:   verifier,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}
