package dtos

import (
	"time"

	"skylog/flightdeck/internal/analytics"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ErrorCode    string      `json:"errorCode,omitempty"`
	ResponseTime string      `json:"responseTime,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// AuthResponse carries the freshly issued bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FlightDto is the API view of a logbook row.
type FlightDto struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	FlightDate    *time.Time      `json:"flightDate"`
	FlightNumber  string          `json:"flightNumber"`
	DepartureIata string          `json:"departureIata"`
	ArrivalIata   string          `json:"arrivalIata"`
	AirlineIata   string          `json:"airlineIata"`
	Status        string          `json:"status"`
	DurationHours analytics.Hours `json:"durationHours"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// AnalyticsResponse wraps the aggregated summary with serving metadata so
// the client can tell a cached copy from a fresh one.
type AnalyticsResponse struct {
	Summary  analytics.Summary `json:"summary"`
	Metadata AnalyticsMetadata `json:"metadata"`
}

type AnalyticsMetadata struct {
	Scope      string `json:"scope"`
	Cached     bool   `json:"cached"`
	ComputedAt string `json:"computedAt"`
}

// ImportReport summarizes a CSV schedule upload.
type ImportReport struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

type ImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// AuditEventDto is the admin-facing audit trail row.
type AuditEventDto struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actorId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
