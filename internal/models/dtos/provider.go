package dtos

import "skylog/flightdeck/internal/analytics"

// AeroFlightsResponse is one page of the aero-data API's flight search.
type AeroFlightsResponse struct {
	Pagination AeroPagination `json:"pagination"`
	Data       []AeroFlight   `json:"data"`
}

type AeroPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// AeroFlight mirrors the provider's flight object. Only the fields the
// aggregator and the import enricher read are mapped.
type AeroFlight struct {
	FlightDate   string        `json:"flight_date"`
	FlightStatus string        `json:"flight_status"`
	Departure    AeroEndpoint  `json:"departure"`
	Arrival      AeroEndpoint  `json:"arrival"`
	Airline      AeroAirline   `json:"airline"`
	Flight       AeroFlightNum `json:"flight"`
}

type AeroEndpoint struct {
	Airport string `json:"airport"`
	Iata    string `json:"iata"`
}

type AeroAirline struct {
	Name string `json:"name"`
	Iata string `json:"iata"`
}

type AeroFlightNum struct {
	Number string `json:"number"`
	Iata   string `json:"iata"`
}

// ToRecord maps a provider flight onto the aggregator's input shape. The
// provider carries no duration field, so DurationHours stays zero.
func (f AeroFlight) ToRecord() analytics.FlightRecord {
	rec := analytics.FlightRecord{
		FlightStatus:  f.FlightStatus,
		DepartureIata: f.Departure.Iata,
		ArrivalIata:   f.Arrival.Iata,
		AirlineIata:   f.Airline.Iata,
	}
	if t, err := analytics.ParseFlightDate(f.FlightDate); err == nil {
		rec.FlightDate = &t
	}
	return rec
}
