package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

// FlightService is the surface of services.FlightsService the handlers use.
type FlightService interface {
	Create(ctx context.Context, claims auth.UserClaims, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error)
	List(ctx context.Context, claims auth.UserClaims) ([]dtos.FlightDto, error)
	Get(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error)
	Update(ctx context.Context, claims auth.UserClaims, id string, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error)
	Delete(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error)
}

// AnalyticsInvalidator drops cached summaries after a mutation.
type AnalyticsInvalidator interface {
	Invalidate(userID string)
}

// CreateFlightHandler handles POST /api/v1/flights
func CreateFlightHandler(fltSvc FlightService, invalidator AnalyticsInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.FlightUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		dto, err := fltSvc.Create(r.Context(), claims, req)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		invalidator.Invalidate(claims.UserID())
		common.RespondSuccess(w, initTime, "Flight logged", dto, http.StatusCreated)
	}
}

// ListFlightsHandler handles GET /api/v1/flights
func ListFlightsHandler(fltSvc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		flights, err := fltSvc.List(r.Context(), claims)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched flights", flights)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{flight_id}
func GetFlightHandler(fltSvc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		flightID := chi.URLParam(r, "flight_id")
		if flightID == "" {
			common.RespondError(w, initTime, nil, "Missing flight id", http.StatusBadRequest)
			return
		}

		dto, err := fltSvc.Get(r.Context(), claims, flightID)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched flight", dto)
	}
}

// UpdateFlightHandler handles PUT /api/v1/flights/{flight_id}
func UpdateFlightHandler(fltSvc FlightService, invalidator AnalyticsInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		flightID := chi.URLParam(r, "flight_id")
		if flightID == "" {
			common.RespondError(w, initTime, nil, "Missing flight id", http.StatusBadRequest)
			return
		}

		var req dtos.FlightUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		dto, err := fltSvc.Update(r.Context(), claims, flightID, req)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		// The owner's cached summary is the stale one, not necessarily the
		// caller's (admins may edit any pilot's flight).
		invalidator.Invalidate(dto.UserID)
		common.RespondSuccess(w, initTime, "Flight updated", dto)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{flight_id}
func DeleteFlightHandler(fltSvc FlightService, invalidator AnalyticsInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		flightID := chi.URLParam(r, "flight_id")
		if flightID == "" {
			common.RespondError(w, initTime, nil, "Missing flight id", http.StatusBadRequest)
			return
		}

		dto, err := fltSvc.Delete(r.Context(), claims, flightID)
		if err != nil {
			respondFlightError(w, initTime, err)
			return
		}

		invalidator.Invalidate(dto.UserID)
		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

func respondFlightError(w http.ResponseWriter, initTime time.Time, err error) {
	var fltErr *services.FlightError
	if errors.As(err, &fltErr) {
		status := http.StatusInternalServerError
		switch fltErr.Code {
		case constants.ErrCodeFlightNotFound:
			status = http.StatusNotFound
		case constants.ErrCodeNotFlightOwner:
			status = http.StatusForbidden
		case constants.ErrCodeImportMalformed:
			status = http.StatusBadRequest
		}
		common.RespondErrorCode(w, initTime, fltErr.Code, fltErr.Message, status)
		return
	}
	common.RespondError(w, initTime, err, "Flight operation failed", http.StatusInternalServerError)
}
