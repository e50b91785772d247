package analytics

// Summary is the full analytics payload for a set of flight records. Field
// names match what the dashboard charts bind to, so renaming anything here is
// a breaking change for the frontend.
type Summary struct {
	TotalFlights       int                `json:"totalFlights"`
	TotalHours         float64            `json:"totalHours"`
	AverageFlightTime  float64            `json:"averageFlightTime"`
	MostFrequentRoute  string             `json:"mostFrequentRoute"`
	MostUsedAircraft   string             `json:"mostUsedAircraft"`
	OnTimePercentage   float64            `json:"onTimePercentage"`
	MonthlyTrend       []MonthBucket      `json:"monthlyTrend"`
	AircraftBreakdown  []AircraftStat     `json:"aircraftBreakdown"`
	RouteAnalysis      []RouteStat        `json:"routeAnalysis"`
	StatusDistribution StatusDistribution `json:"statusDistribution"`
	TimeDistribution   TimeDistribution   `json:"timeDistribution"`
	AirlineAnalysis    []AirlineStat      `json:"airlineAnalysis"`
}

// MonthBucket is one calendar month of the trailing six-month trend.
type MonthBucket struct {
	Month   string  `json:"month"`
	Flights int     `json:"flights"`
	Hours   float64 `json:"hours"`
}

// AircraftStat groups flights by carrier code. The field is called "type"
// because the mobile client charts it as an aircraft-type breakdown; the
// input model carries no genuine airframe field, so the carrier code stands
// in for it.
type AircraftStat struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// RouteStat is one "DEP-ARR" route with its frequency and mean duration.
type RouteStat struct {
	Route       string  `json:"route"`
	Frequency   int     `json:"frequency"`
	AvgDuration float64 `json:"avgDuration"`
}

// StatusDistribution counts exact matches of the four recognized statuses.
type StatusDistribution struct {
	Scheduled int `json:"scheduled"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// TimeDistribution splits total hours by fixed heuristic ratios. The input
// rows carry no per-flight day/night/IFR markers, so these are placeholder
// fractions of the total rather than measured values.
type TimeDistribution struct {
	Day          int `json:"day"`
	Night        int `json:"night"`
	IFR          int `json:"ifr"`
	CrossCountry int `json:"crossCountry"`
}

// AirlineStat is the per-carrier view used by the airline comparison chart.
// Reliability is a synthetic score in [85, 100) drawn fresh on every call.
type AirlineStat struct {
	Airline     string  `json:"airline"`
	Flights     int     `json:"flights"`
	Reliability float64 `json:"reliability"`
}
