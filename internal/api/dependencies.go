package api

import (
	"os"
	"time"

	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/db"
	"skylog/flightdeck/internal/db/repositories"
	"skylog/flightdeck/internal/logging"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/providers"
	"skylog/flightdeck/internal/services"
)

type Repositories struct {
	Flights *repositories.FlightRepository
	Users   *repositories.UserRepository
	Audit   *repositories.AuditRepository
}

type Services struct {
	Auth      *services.AuthService
	Flights   *services.FlightsService
	Analytics *services.AnalyticsService
	Import    *services.ImportService
	Routes    *services.RoutesService
	Cache     common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires the repositories, cache and services. Redis backs
// the cache when REDIS_HOST is set, otherwise go-cache in memory.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Flights: repositories.NewFlightRepository(db.DB),
		Users:   repositories.NewUserRepository(db.PgDB),
		Audit:   repositories.NewAuditRepository(db.DB),
	}

	var cache common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cache = redisCache
		logging.Info("Cache backend: redis")
	} else {
		cache = common.NewCacheService(10*time.Minute, 10*time.Minute)
		logging.Info("Cache backend: in-memory")
	}

	aeroProvider := providers.NewAeroDataService()

	svcs := &Services{
		Auth:      services.NewAuthService(repos.Users, metricsReg),
		Flights:   services.NewFlightsService(repos.Flights, metricsReg),
		Analytics: services.NewAnalyticsService(repos.Flights, cache, metricsReg),
		Import:    services.NewImportService(repos.Flights, metricsReg),
		Routes:    services.NewRoutesService(aeroProvider, cache, metricsReg),
		Cache:     cache,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
