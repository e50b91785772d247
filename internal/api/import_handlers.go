package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/models/dtos"
)

// ScheduleImporter is the surface of services.ImportService the handler uses.
type ScheduleImporter interface {
	ImportCSV(ctx context.Context, claims auth.UserClaims, r io.Reader) (*dtos.ImportReport, error)
}

// ImportFlightsHandler handles POST /api/v1/flights/import. Accepts a
// multipart form with the CSV under the "schedule" field.
func ImportFlightsHandler(importSvc ScheduleImporter, invalidator AnalyticsInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			common.RespondError(w, initTime, nil, "Invalid multipart form", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("schedule")
		if err != nil {
			common.RespondError(w, initTime, nil, "Missing schedule file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		report, err := importSvc.ImportCSV(r.Context(), claims, file)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		invalidator.Invalidate(claims.UserID())
		common.RespondSuccess(w, initTime, "Schedule imported", report)
	}
}
