package api

import (
	"context"
	"net/http"
	"time"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/models/dtos"
)

// AnalyticsProvider is the surface of services.AnalyticsService the handler
// uses.
type AnalyticsProvider interface {
	GetSummary(ctx context.Context, claims auth.UserClaims) (*dtos.AnalyticsResponse, error)
}

// AnalyticsHandler handles GET /api/v1/analytics. Pilots get a summary of
// their own flights; admins get the fleet-wide view.
func AnalyticsHandler(analyticsSvc AnalyticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		summary, err := analyticsSvc.GetSummary(r.Context(), claims)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute analytics", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Analytics computed", summary)
	}
}
