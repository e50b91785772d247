package services

import (
	"context"
	"time"

	"skylog/flightdeck/internal/analytics"
	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/dtos"
)

const analyticsCacheName = "analytics"

// AnalyticsService glues the pure aggregation engine to the flight store and
// a cache. The aggregator itself stays free of I/O; everything stateful
// lives here.
type AnalyticsService struct {
	flights    FlightStore
	cache      common.CacheInterface
	aggregator *analytics.Aggregator
	metrics    *metrics.MetricsRegistry
}

func NewAnalyticsService(flights FlightStore, cache common.CacheInterface, reg *metrics.MetricsRegistry) *AnalyticsService {
	return &AnalyticsService{
		flights:    flights,
		cache:      cache,
		aggregator: analytics.New(),
		metrics:    reg,
	}
}

// GetSummary aggregates the caller's flights, or every flight when the
// caller is an admin. Summaries are cached for 15 minutes per scope; a
// cached copy is flagged so the client can tell.
func (s *AnalyticsService) GetSummary(ctx context.Context, claims auth.UserClaims) (*dtos.AnalyticsResponse, error) {
	scope := claims.UserID()
	if claims.IsAdmin() {
		scope = "all"
	}
	cacheKey := string(constants.CachePrefixAnalytics) + scope

	if cached, found := s.cache.Get(cacheKey); found {
		var response dtos.AnalyticsResponse
		if err := common.RemarshalInto(cached, &response); err == nil {
			s.metrics.CacheHitsTotal.WithLabelValues(analyticsCacheName).Inc()
			response.Metadata.Cached = true
			return &response, nil
		}
		// Poisoned entry; fall through to recompute.
		s.cache.Delete(cacheKey)
	}
	s.metrics.CacheMissesTotal.WithLabelValues(analyticsCacheName).Inc()

	records, err := s.load(ctx, claims)
	if err != nil {
		return nil, err
	}

	summary := s.aggregator.Aggregate(records)
	s.metrics.AnalyticsComputedTotal.Inc()

	response := &dtos.AnalyticsResponse{
		Summary: summary,
		Metadata: dtos.AnalyticsMetadata{
			Scope:      scope,
			Cached:     false,
			ComputedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}

	s.cache.Set(cacheKey, response, constants.AnalyticsCacheTTLMinutes*time.Minute)
	return response, nil
}

// Invalidate drops the cached summary for a user and the admin-wide one.
// Called after any flight mutation.
func (s *AnalyticsService) Invalidate(userID string) {
	s.cache.Delete(string(constants.CachePrefixAnalytics) + userID)
	s.cache.Delete(string(constants.CachePrefixAnalytics) + "all")
}

func (s *AnalyticsService) load(ctx context.Context, claims auth.UserClaims) ([]analytics.FlightRecord, error) {
	var flights []analytics.FlightRecord

	if claims.IsAdmin() {
		rows, err := s.flights.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			flights = append(flights, rows[i].ToRecord())
		}
		return flights, nil
	}

	rows, err := s.flights.ListByUser(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}
	for i := range rows {
		flights = append(flights, rows[i].ToRecord())
	}
	return flights, nil
}
