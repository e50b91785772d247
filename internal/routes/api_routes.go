package routes

import (
	"skylog/flightdeck/internal/api"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes. Auth endpoints are public;
// everything else requires a bearer token, with the audit trail behind the
// admin role.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		v1.Post("/auth/register", api.RegisterHandler(deps.Services.Auth))
		v1.Post("/auth/login", api.LoginHandler(deps.Services.Auth))

		v1.Group(func(member chi.Router) {
			member.Use(middleware.AuthMiddleware())

			member.Get("/flights", api.ListFlightsHandler(deps.Services.Flights))
			member.Post("/flights", api.CreateFlightHandler(deps.Services.Flights, deps.Services.Analytics))
			member.Post("/flights/import", api.ImportFlightsHandler(deps.Services.Import, deps.Services.Analytics))
			member.Get("/flights/{flight_id}", api.GetFlightHandler(deps.Services.Flights))
			member.Put("/flights/{flight_id}", api.UpdateFlightHandler(deps.Services.Flights, deps.Services.Analytics))
			member.Delete("/flights/{flight_id}", api.DeleteFlightHandler(deps.Services.Flights, deps.Services.Analytics))

			member.Get("/analytics", api.AnalyticsHandler(deps.Services.Analytics))
			member.Get("/routes/{route}/flights", api.RouteFlightsHandler(deps.Services.Routes))

			member.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())
				admin.Get("/admin/audit", api.AuditTrailHandler(deps.Repo.Audit))
			})
		})
	})
}
