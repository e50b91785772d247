package api

import (
	"net/http"
	"strconv"
	"time"

	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/db/repositories"
	"skylog/flightdeck/internal/models/dtos"
)

// AuditTrailHandler handles GET /api/v1/admin/audit. Admin only; the route
// group enforces the role.
func AuditTrailHandler(auditRepo *repositories.AuditRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit := 100
		if qs := r.URL.Query().Get("limit"); qs != "" {
			if n, err := strconv.Atoi(qs); err == nil && n > 0 {
				limit = n
			}
		}

		events, err := auditRepo.ListRecent(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list audit events", http.StatusInternalServerError)
			return
		}

		result := make([]dtos.AuditEventDto, 0, len(events))
		for _, e := range events {
			result = append(result, dtos.AuditEventDto{
				ID:         e.ID,
				ActorID:    e.ActorID,
				Action:     e.Action,
				EntityType: e.EntityType,
				EntityID:   e.EntityID,
				Detail:     e.Detail,
				CreatedAt:  e.CreatedAt,
			})
		}

		common.RespondSuccess(w, initTime, "Fetched audit trail", result)
	}
}
