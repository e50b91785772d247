package dtos

import "skylog/flightdeck/internal/analytics"

// RegisterRequest creates a new pilot account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FlightUpsertRequest is the body for both create and update. Upstream
// clients are sloppy about the duration wire type, so the analytics.Hours
// field coerces numbers, numeric strings, and garbage alike.
type FlightUpsertRequest struct {
	FlightDate    string          `json:"flightDate"`
	FlightNumber  string          `json:"flightNumber"`
	DepartureIata string          `json:"departureIata"`
	ArrivalIata   string          `json:"arrivalIata"`
	AirlineIata   string          `json:"airlineIata"`
	Status        string          `json:"status"`
	DurationHours analytics.Hours `json:"durationHours"`
	Remarks       string          `json:"remarks"`
}
