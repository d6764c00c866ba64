package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/tredeco-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/today
//	GET    /api/v1/convert/standard/{date}
//	GET    /api/v1/convert/tredeco/{year}/{month}/{day}
//	GET    /api/v1/years/{year}
//	GET    /api/v1/astronomy/{date}
//	GET    /api/v1/cities
//	GET    /api/v1/location   (API key)
//	PUT    /api/v1/location   (API key)
//	DELETE /api/v1/location   (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", handlers.GetToday)
		r.Get("/convert/standard/{date}", handlers.ConvertStandard)
		r.Get("/convert/tredeco/{year}/{month}/{day}", handlers.ConvertTredeco)
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/astronomy/{date}", handlers.GetAstronomy)
		r.Get("/cities", handlers.ListCities)

		// ======================================================================
		// Saved location (authenticated)
		// ======================================================================
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Get("/location", handlers.GetLocation)
			r.Put("/location", handlers.PutLocation)
			r.Delete("/location", handlers.DeleteLocation)
		})
	})

	return r
}
