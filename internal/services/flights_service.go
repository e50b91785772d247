package services

import (
	"context"
	"fmt"

	"skylog/flightdeck/internal/analytics"
	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/models/entities"
	"skylog/flightdeck/internal/workers"
)

// FlightError is an ownership or lookup failure with an API error code.
type FlightError struct {
	Code    string
	Message string
}

func (e *FlightError) Error() string {
	return e.Message
}

// FlightStore is the repository surface the flights and analytics services
// share.
type FlightStore interface {
	Insert(ctx context.Context, flight *entities.Flight) error
	GetByID(ctx context.Context, id string) (*entities.Flight, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Flight, error)
	ListAll(ctx context.Context) ([]entities.Flight, error)
	Update(ctx context.Context, flight *entities.Flight) error
	Delete(ctx context.Context, id string) error
}

type FlightsService struct {
	flights FlightStore
	metrics *metrics.MetricsRegistry
}

func NewFlightsService(flights FlightStore, reg *metrics.MetricsRegistry) *FlightsService {
	return &FlightsService{flights: flights, metrics: reg}
}

// Create inserts a flight owned by the calling user.
func (s *FlightsService) Create(ctx context.Context, claims auth.UserClaims, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
	flight := flightFromRequest(req)
	flight.UserID = claims.UserID()

	if err := s.flights.Insert(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.metrics.FlightsCreatedTotal.Inc()
	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    claims.UserID(),
		Action:     entities.AuditActionFlightCreate,
		EntityType: "flight",
		EntityID:   flight.ID,
		Detail:     flight.DepartureIata + "-" + flight.ArrivalIata,
	})

	dto := toFlightDto(flight)
	return &dto, nil
}

// List returns the caller's flights, newest first.
func (s *FlightsService) List(ctx context.Context, claims auth.UserClaims) ([]dtos.FlightDto, error) {
	flights, err := s.flights.ListByUser(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}

	result := make([]dtos.FlightDto, 0, len(flights))
	for i := range flights {
		result = append(result, toFlightDto(&flights[i]))
	}
	return result, nil
}

// Get fetches one flight, enforcing ownership for non-admins.
func (s *FlightsService) Get(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
	flight, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}
	dto := toFlightDto(flight)
	return &dto, nil
}

// Update rewrites a flight's mutable fields.
func (s *FlightsService) Update(ctx context.Context, claims auth.UserClaims, id string, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
	flight, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	updated := flightFromRequest(req)
	updated.ID = flight.ID
	updated.UserID = flight.UserID
	updated.CreatedAt = flight.CreatedAt

	if err := s.flights.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}

	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    claims.UserID(),
		Action:     entities.AuditActionFlightUpdate,
		EntityType: "flight",
		EntityID:   flight.ID,
	})

	dto := toFlightDto(updated)
	return &dto, nil
}

// Delete removes a flight after the ownership check and returns the deleted
// row so callers can see whose logbook changed.
func (s *FlightsService) Delete(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
	flight, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if err := s.flights.Delete(ctx, flight.ID); err != nil {
		return nil, fmt.Errorf("failed to delete flight: %w", err)
	}

	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    claims.UserID(),
		Action:     entities.AuditActionFlightDelete,
		EntityType: "flight",
		EntityID:   flight.ID,
	})

	dto := toFlightDto(flight)
	return &dto, nil
}

func (s *FlightsService) authorize(ctx context.Context, claims auth.UserClaims, id string) (*entities.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, &FlightError{
			Code:    constants.ErrCodeFlightNotFound,
			Message: constants.MsgFlightNotFound,
		}
	}
	if flight.UserID != claims.UserID() && !claims.IsAdmin() {
		return nil, &FlightError{
			Code:    constants.ErrCodeNotFlightOwner,
			Message: constants.MsgNotFlightOwner,
		}
	}
	return flight, nil
}

func flightFromRequest(req dtos.FlightUpsertRequest) *entities.Flight {
	flight := &entities.Flight{
		FlightNumber:  req.FlightNumber,
		DepartureIata: common.NormalizeIata(req.DepartureIata),
		ArrivalIata:   common.NormalizeIata(req.ArrivalIata),
		AirlineIata:   common.NormalizeIata(req.AirlineIata),
		Status:        req.Status,
		DurationHours: req.DurationHours,
		Remarks:       req.Remarks,
	}
	if req.FlightDate != "" {
		if t, err := analytics.ParseFlightDate(req.FlightDate); err == nil {
			flight.FlightDate = &t
		}
	}
	return flight
}

func toFlightDto(f *entities.Flight) dtos.FlightDto {
	return dtos.FlightDto{
		ID:            f.ID,
		UserID:        f.UserID,
		FlightDate:    f.FlightDate,
		FlightNumber:  f.FlightNumber,
		DepartureIata: f.DepartureIata,
		ArrivalIata:   f.ArrivalIata,
		AirlineIata:   f.AirlineIata,
		Status:        f.Status,
		DurationHours: f.DurationHours,
		Remarks:       f.Remarks,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
