package entities

import (
	"time"

	"skylog/flightdeck/internal/analytics"
)

// Flight is a single logbook row, scanned with sqlx.
type Flight struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	FlightDate    *time.Time      `db:"flight_date"`
	FlightNumber  string          `db:"flight_number"`
	DepartureIata string          `db:"departure_iata"`
	ArrivalIata   string          `db:"arrival_iata"`
	AirlineIata   string          `db:"airline_iata"`
	Status        string          `db:"status"`
	DurationHours analytics.Hours `db:"duration_hours"`
	Remarks       string          `db:"remarks"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// ToRecord maps a stored flight onto the aggregator's input shape.
func (f *Flight) ToRecord() analytics.FlightRecord {
	return analytics.FlightRecord{
		FlightDate:    f.FlightDate,
		FlightStatus:  f.Status,
		DepartureIata: f.DepartureIata,
		ArrivalIata:   f.ArrivalIata,
		AirlineIata:   f.AirlineIata,
		DurationHours: f.DurationHours,
	}
}
