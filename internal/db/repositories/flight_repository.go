package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/entities"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepository(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db}
}

// Insert writes a new flight. The caller supplies everything except the id
// and timestamps.
func (r *FlightRepository) Insert(ctx context.Context, flight *entities.Flight) error {
	if flight.ID == "" {
		flight.ID = uuid.New().String()
	}

	return r.db.QueryRowxContext(ctx, constants.InsertFlight,
		flight.ID,
		flight.UserID,
		flight.FlightDate,
		flight.FlightNumber,
		flight.DepartureIata,
		flight.ArrivalIata,
		flight.AirlineIata,
		flight.Status,
		flight.DurationHours,
		flight.Remarks,
	).Scan(&flight.CreatedAt, &flight.UpdatedAt)
}

func (r *FlightRepository) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	var flight entities.Flight
	err := r.db.GetContext(ctx, &flight, constants.GetFlightByID, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}
	return &flight, nil
}

// ListByUser returns the user's flights, newest flight date first. Rows with
// a null date sort last, matching the logbook view.
func (r *FlightRepository) ListByUser(ctx context.Context, userID string) ([]entities.Flight, error) {
	flights := []entities.Flight{}
	if err := r.db.SelectContext(ctx, &flights, constants.ListFlightsByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// ListAll returns every flight in the system. Admin analytics only.
func (r *FlightRepository) ListAll(ctx context.Context) ([]entities.Flight, error) {
	flights := []entities.Flight{}
	if err := r.db.SelectContext(ctx, &flights, constants.ListAllFlights); err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

func (r *FlightRepository) Update(ctx context.Context, flight *entities.Flight) error {
	return r.db.QueryRowxContext(ctx, constants.UpdateFlight,
		flight.ID,
		flight.FlightDate,
		flight.FlightNumber,
		flight.DepartureIata,
		flight.ArrivalIata,
		flight.AirlineIata,
		flight.Status,
		flight.DurationHours,
		flight.Remarks,
	).Scan(&flight.UpdatedAt)
}

func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, constants.DeleteFlight, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
