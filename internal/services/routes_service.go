package services

import (
	"context"
	"time"

	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/dtos"
)

const routeCacheName = "route_search"

// RouteFetcher is the provider surface the routes service needs.
type RouteFetcher interface {
	FetchRouteFlights(ctx context.Context, depIata, arrIata string) ([]dtos.AeroFlight, error)
}

// RoutesService serves third-party flight lookups for a route, cached so a
// busy route does not hammer the provider's rate limit.
type RoutesService struct {
	provider RouteFetcher
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewRoutesService(provider RouteFetcher, cache common.CacheInterface, reg *metrics.MetricsRegistry) *RoutesService {
	return &RoutesService{provider: provider, cache: cache, metrics: reg}
}

// Lookup returns the provider's flights for a DEP-ARR pair.
func (s *RoutesService) Lookup(ctx context.Context, depIata, arrIata string) ([]dtos.AeroFlight, error) {
	dep := common.NormalizeIata(depIata)
	arr := common.NormalizeIata(arrIata)
	cacheKey := string(constants.CachePrefixRouteSearch) + dep + "-" + arr

	if cached, found := s.cache.Get(cacheKey); found {
		var flights []dtos.AeroFlight
		if err := common.RemarshalInto(cached, &flights); err == nil {
			s.metrics.CacheHitsTotal.WithLabelValues(routeCacheName).Inc()
			return flights, nil
		}
		s.cache.Delete(cacheKey)
	}
	s.metrics.CacheMissesTotal.WithLabelValues(routeCacheName).Inc()

	flights, err := s.provider.FetchRouteFlights(ctx, dep, arr)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, flights, 10*time.Minute)
	return flights, nil
}
