package services

import (
	"context"
	"database/sql"
	"sync"

	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/entities"

	"github.com/google/uuid"
)

// Prometheus collectors register globally, so the package shares one
// registry across tests.
var testMetrics = metrics.NewMetricsRegistry()

// fakeClaims satisfies auth.UserClaims without minting tokens.
type fakeClaims struct {
	id   string
	name string
	role constants.UserRole
}

func (c *fakeClaims) UserID() string           { return c.id }
func (c *fakeClaims) Username() string         { return c.name }
func (c *fakeClaims) Role() constants.UserRole { return c.role }
func (c *fakeClaims) IsAdmin() bool            { return c.role.IsAdmin() }

func pilotClaims(id string) *fakeClaims {
	return &fakeClaims{id: id, name: "pilot-" + id, role: constants.RolePilot}
}

func adminClaims(id string) *fakeClaims {
	return &fakeClaims{id: id, name: "admin-" + id, role: constants.RoleAdmin}
}

// fakeFlightStore is an in-memory FlightStore.
type fakeFlightStore struct {
	mu      sync.Mutex
	flights map[string]*entities.Flight
	order   []string
	fail    error
}

func newFakeFlightStore() *fakeFlightStore {
	return &fakeFlightStore{flights: map[string]*entities.Flight{}}
}

func (s *fakeFlightStore) Insert(ctx context.Context, flight *entities.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if flight.ID == "" {
		flight.ID = uuid.New().String()
	}
	cp := *flight
	s.flights[flight.ID] = &cp
	s.order = append(s.order, flight.ID)
	return nil
}

func (s *fakeFlightStore) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flight, ok := s.flights[id]
	if !ok {
		return nil, nil
	}
	cp := *flight
	return &cp, nil
}

func (s *fakeFlightStore) ListByUser(ctx context.Context, userID string) ([]entities.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entities.Flight
	for _, id := range s.order {
		if s.flights[id].UserID == userID {
			result = append(result, *s.flights[id])
		}
	}
	return result, nil
}

func (s *fakeFlightStore) ListAll(ctx context.Context) ([]entities.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entities.Flight
	for _, id := range s.order {
		result = append(result, *s.flights[id])
	}
	return result, nil
}

func (s *fakeFlightStore) Update(ctx context.Context, flight *entities.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[flight.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *flight
	s.flights[flight.ID] = &cp
	return nil
}

func (s *fakeFlightStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.flights, id)
	for i, fid := range s.order {
		if fid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
