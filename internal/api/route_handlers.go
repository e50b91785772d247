package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/providers"

	"github.com/go-chi/chi/v5"
)

// RouteLookupService is the surface of services.RoutesService the handler
// uses.
type RouteLookupService interface {
	Lookup(ctx context.Context, depIata, arrIata string) ([]dtos.AeroFlight, error)
}

// RouteFlightsHandler handles GET /api/v1/routes/{route}/flights where
// route is "DEP-ARR".
func RouteFlightsHandler(routesSvc RouteLookupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		route := chi.URLParam(r, "route")
		parts := strings.SplitN(route, "-", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			common.RespondError(w, initTime, nil, "Route must be DEP-ARR", http.StatusBadRequest)
			return
		}

		flights, err := routesSvc.Lookup(r.Context(), parts[0], parts[1])
		if err != nil {
			var provErr *providers.ProviderError
			if errors.As(err, &provErr) {
				common.RespondErrorCode(w, initTime, provErr.Code, provErr.Message, http.StatusBadGateway)
				return
			}
			common.RespondError(w, initTime, err, "Route lookup failed", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched route flights", flights)
	}
}
