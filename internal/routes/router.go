package routes

import (
	"net/http"
	"time"

	"skylog/flightdeck/internal/api"
	"skylog/flightdeck/internal/db"
	"skylog/flightdeck/internal/logging"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/middleware"
	"skylog/flightdeck/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the full router: middleware chain, dependency
// wiring, background workers, and all route groups.
func RegisterRoutes(upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	workers.InitWorkers(deps.Repo.Audit)

	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
