package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/easter?start={year}&end={year}
//	GET /api/v1/easter/{year}
//	GET /api/v1/easter/{year}/feasts?tradition=western|eastern
//	GET /api/v1/julian/{year}/{month}/{day}
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		RecoveryMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/easter", handlers.GetEasterRange)
		r.Get("/easter/{year}", handlers.GetEaster)
		r.Get("/easter/{year}/feasts", handlers.GetFeasts)
		r.Get("/julian/{year}/{month}/{day}", handlers.ConvertJulian)
	})

	return r
}
