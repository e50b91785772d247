package analytics

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

const (
	topEntries  = 5
	trendMonths = 6

	// Heuristic fractions of total hours. The logbook rows carry no
	// per-flight phase data, so the time distribution is a fixed split
	// rather than a measured one.
	dayRatio          = 0.75
	nightRatio        = 0.25
	ifrRatio          = 0.40
	crossCountryRatio = 0.60

	placeholderRoute   = "N/A"
	unknownAirline     = "Unknown"
	reliabilityFloor   = 85.0
	reliabilitySpread  = 15.0
	monthKeyLayout     = "2006-01"
	monthDisplayLayout = "Jan"
)

// Aggregator derives a Summary from a slice of flight records. It holds no
// state between calls, so a single instance may serve concurrent requests;
// the struct exists so tests can pin the clock and seed the reliability
// score. The zero value is not usable, construct with New.
type Aggregator struct {
	now  func() time.Time
	rand *rand.Rand
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock overrides the wall clock used to anchor the monthly trend window.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithRand overrides the random source behind the synthetic reliability
// score. Injected sources are assumed to be confined to one goroutine;
// without one, scores come from the locked package-level source so a shared
// Aggregator stays race-free.
func WithRand(r *rand.Rand) Option {
	return func(a *Aggregator) {
		a.rand = r
	}
}

// New returns a ready Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate runs a default Aggregator over flights.
func Aggregate(flights []FlightRecord) Summary {
	return New().Aggregate(flights)
}

// routeGroup accumulates per-route frequency and duration. Insertion order is
// tracked separately so ties in the top-k sort resolve to the first route
// seen in the input.
type routeGroup struct {
	frequency     int
	totalDuration float64
}

type carrierGroup struct {
	count int
	hours float64
}

// Aggregate computes the analytics summary for the given records. It never
// fails: malformed fields have per-field fallbacks and an empty input yields
// a zeroed summary with a fully populated six-month trend. The input slice is
// never modified.
func (a *Aggregator) Aggregate(flights []FlightRecord) Summary {
	if len(flights) == 0 {
		return Summary{
			MostFrequentRoute:  placeholderRoute,
			MostUsedAircraft:   placeholderRoute,
			MonthlyTrend:       a.emptyTrend(),
			AircraftBreakdown:  []AircraftStat{},
			RouteAnalysis:      []RouteStat{},
			AirlineAnalysis:    []AirlineStat{},
			StatusDistribution: StatusDistribution{},
			TimeDistribution:   TimeDistribution{},
		}
	}

	total := len(flights)

	var totalHours float64
	for _, f := range flights {
		totalHours += float64(f.DurationHours)
	}

	routes := make(map[string]*routeGroup)
	routeOrder := make([]string, 0)
	carriers := make(map[string]*carrierGroup)
	carrierOrder := make([]string, 0)
	var status StatusDistribution

	trend, trendIndex := a.trendBuckets()

	for _, f := range flights {
		dep := f.DepartureIata
		if dep == "" {
			dep = placeholderRoute
		}
		arr := f.ArrivalIata
		if arr == "" {
			arr = placeholderRoute
		}
		routeKey := dep + "-" + arr

		rg, ok := routes[routeKey]
		if !ok {
			rg = &routeGroup{}
			routes[routeKey] = rg
			routeOrder = append(routeOrder, routeKey)
		}
		rg.frequency++
		rg.totalDuration += float64(f.DurationHours)

		airline := f.AirlineIata
		if airline == "" {
			airline = unknownAirline
		}
		cg, ok := carriers[airline]
		if !ok {
			cg = &carrierGroup{}
			carriers[airline] = cg
			carrierOrder = append(carrierOrder, airline)
		}
		cg.count++
		cg.hours += float64(f.DurationHours)

		switch f.FlightStatus {
		case StatusScheduled:
			status.Scheduled++
		case StatusActive:
			status.Active++
		case StatusCompleted:
			status.Completed++
		case StatusCancelled:
			status.Cancelled++
		}

		if f.FlightDate != nil {
			if idx, ok := trendIndex[f.FlightDate.Format(monthKeyLayout)]; ok {
				trend[idx].Flights++
				trend[idx].Hours += float64(f.DurationHours)
			}
		}
	}
	for i := range trend {
		trend[i].Hours = round1(trend[i].Hours)
	}

	// Stable sort keeps first-seen order on equal frequencies.
	sort.SliceStable(routeOrder, func(i, j int) bool {
		return routes[routeOrder[i]].frequency > routes[routeOrder[j]].frequency
	})
	sort.SliceStable(carrierOrder, func(i, j int) bool {
		return carriers[carrierOrder[i]].count > carriers[carrierOrder[j]].count
	})

	routeStats := make([]RouteStat, 0, topEntries)
	for _, key := range topN(routeOrder, topEntries) {
		rg := routes[key]
		routeStats = append(routeStats, RouteStat{
			Route:       key,
			Frequency:   rg.frequency,
			AvgDuration: round2(rg.totalDuration / float64(rg.frequency)),
		})
	}

	aircraft := make([]AircraftStat, 0, topEntries)
	airlines := make([]AirlineStat, 0, topEntries)
	for _, key := range topN(carrierOrder, topEntries) {
		cg := carriers[key]
		aircraft = append(aircraft, AircraftStat{
			Type:       key,
			Count:      cg.count,
			Hours:      round2(cg.hours),
			Percentage: round1(float64(cg.count) / float64(total) * 100),
		})
		airlines = append(airlines, AirlineStat{
			Airline:     key,
			Flights:     cg.count,
			Reliability: a.reliabilityScore(),
		})
	}

	mostFrequentRoute := placeholderRoute
	if len(routeOrder) > 0 {
		mostFrequentRoute = routeOrder[0]
	}
	mostUsedAircraft := placeholderRoute
	if len(carrierOrder) > 0 {
		mostUsedAircraft = carrierOrder[0]
	}

	onTime := float64(status.Completed+status.Active) / float64(total) * 100

	return Summary{
		TotalFlights:       total,
		TotalHours:         round2(totalHours),
		AverageFlightTime:  round2(totalHours / float64(total)),
		MostFrequentRoute:  mostFrequentRoute,
		MostUsedAircraft:   mostUsedAircraft,
		OnTimePercentage:   round1(onTime),
		MonthlyTrend:       trend,
		AircraftBreakdown:  aircraft,
		RouteAnalysis:      routeStats,
		StatusDistribution: status,
		TimeDistribution: TimeDistribution{
			Day:          int(math.Floor(totalHours * dayRatio)),
			Night:        int(math.Floor(totalHours * nightRatio)),
			IFR:          int(math.Floor(totalHours * ifrRatio)),
			CrossCountry: int(math.Floor(totalHours * crossCountryRatio)),
		},
		AirlineAnalysis: airlines,
	}
}

// trendBuckets builds the six calendar-month buckets ending at the current
// month, oldest first, plus an index from "YYYY-MM" keys to bucket position.
func (a *Aggregator) trendBuckets() ([]MonthBucket, map[string]int) {
	now := a.now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]MonthBucket, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := anchor.AddDate(0, i-(trendMonths-1), 0)
		buckets[i] = MonthBucket{Month: m.Format(monthDisplayLayout)}
		index[m.Format(monthKeyLayout)] = i
	}
	return buckets, index
}

func (a *Aggregator) emptyTrend() []MonthBucket {
	buckets, _ := a.trendBuckets()
	return buckets
}

// reliabilityScore draws a fresh synthetic score in [85, 100), one decimal.
func (a *Aggregator) reliabilityScore() float64 {
	r := rand.Float64()
	if a.rand != nil {
		r = a.rand.Float64()
	}
	return round1(reliabilityFloor + r*reliabilitySpread)
}

func topN(keys []string, n int) []string {
	if len(keys) < n {
		return keys
	}
	return keys[:n]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
