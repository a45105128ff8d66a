package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/showroom-api/internal/api"
	apiMiddleware "github.com/phrazzld/showroom-api/internal/api/middleware"
)

// protectedRoute declares one endpoint together with the permission a
// caller's token must carry to use it.
type protectedRoute struct {
	method     string
	pattern    string
	permission string
	handler    http.HandlerFunc
}

// setupRouter creates and configures the application router with all routes and middleware.
// Protected routes are declared as a table and composed with the
// authentication and per-route permission middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	autoHandler := api.NewAutoHandler(app.autoStore, app.buyerStore, app.logger)
	buyerHandler := api.NewBuyerHandler(app.buyerStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	routes := []protectedRoute{
		{http.MethodGet, "/autos", "view:autos", autoHandler.ListAutos},
		{http.MethodPost, "/autos", "post:autos", autoHandler.CreateAuto},
		{http.MethodDelete, "/autos/{id}", "delete:autos", autoHandler.DeleteAuto},
		{http.MethodPatch, "/autos/{id}", "update:autos", autoHandler.UpdateAuto},
		{http.MethodGet, "/buyers", "view:buyers", buyerHandler.ListBuyers},
		{http.MethodPost, "/buyers", "post:buyers", buyerHandler.CreateBuyer},
		{http.MethodDelete, "/buyers/{id}", "delete:buyers", buyerHandler.DeleteBuyer},
		{http.MethodPatch, "/buyers/{id}", "update:buyers", buyerHandler.UpdateBuyer},
	}

	for _, rt := range routes {
		r.With(authMiddleware.Authenticate, authMiddleware.RequirePermission(rt.permission)).
			Method(rt.method, rt.pattern, rt.handler)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
