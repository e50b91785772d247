package analytics

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Hours is a flight duration in hours. Upstream sources (the live API, CSV
// imports, older mobile clients) are inconsistent about the wire type: the
// value may arrive as a JSON number, a numeric string, or be missing
// entirely. Anything that cannot be read as a number coerces to 0.
type Hours float64

func (h *Hours) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		*h = 0
		return nil
	}

	switch val := v.(type) {
	case float64:
		*h = Hours(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			*h = 0
			return nil
		}
		*h = Hours(f)
	default:
		*h = 0
	}
	return nil
}

// Scan implements sql.Scanner so Hours can be read straight off a sqlx row.
func (h *Hours) Scan(src interface{}) error {
	switch val := src.(type) {
	case nil:
		*h = 0
	case float64:
		*h = Hours(val)
	case int64:
		*h = Hours(val)
	case []byte:
		f, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			*h = 0
			return nil
		}
		*h = Hours(f)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			*h = 0
			return nil
		}
		*h = Hours(f)
	default:
		return fmt.Errorf("cannot scan %T into Hours", src)
	}
	return nil
}

func (h Hours) Value() (driver.Value, error) {
	return float64(h), nil
}

// Flight statuses recognized by the status distribution. Records carrying any
// other status still count toward totals but land in none of these buckets.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ParseFlightDate reads the date formats seen across upstream sources:
// bare dates ("2024-01-15") and RFC 3339 timestamps. Results are UTC.
func ParseFlightDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable flight date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FlightRecord is one row of logbook input to the aggregator. Fields mirror
// what the persistence layer and the aero-data API both hand back; missing
// airport codes render as "N/A" and a missing carrier as "Unknown".
type FlightRecord struct {
	FlightDate    *time.Time `json:"flightDate"`
	FlightStatus  string     `json:"flightStatus"`
	DepartureIata string     `json:"departureIata"`
	ArrivalIata   string     `json:"arrivalIata"`
	AirlineIata   string     `json:"airlineIata"`
	DurationHours Hours      `json:"durationHours"`
}
