package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

type mockFlightService struct {
	createFunc func(ctx context.Context, claims auth.UserClaims, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error)
	listFunc   func(ctx context.Context, claims auth.UserClaims) ([]dtos.FlightDto, error)
	getFunc    func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error)
	updateFunc func(ctx context.Context, claims auth.UserClaims, id string, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error)
	deleteFunc func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error)
}

func (m *mockFlightService) Create(ctx context.Context, claims auth.UserClaims, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
	return m.createFunc(ctx, claims, req)
}

func (m *mockFlightService) List(ctx context.Context, claims auth.UserClaims) ([]dtos.FlightDto, error) {
	return m.listFunc(ctx, claims)
}

func (m *mockFlightService) Get(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
	return m.getFunc(ctx, claims, id)
}

func (m *mockFlightService) Update(ctx context.Context, claims auth.UserClaims, id string, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
	return m.updateFunc(ctx, claims, id, req)
}

func (m *mockFlightService) Delete(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
	return m.deleteFunc(ctx, claims, id)
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateFlightHandler_Success(t *testing.T) {
	mockService := &mockFlightService{
		createFunc: func(ctx context.Context, claims auth.UserClaims, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
			return &dtos.FlightDto{
				ID:            "flight-1",
				DepartureIata: req.DepartureIata,
				ArrivalIata:   req.ArrivalIata,
			}, nil
		},
	}
	invalidator := &recordingInvalidator{}

	handler := CreateFlightHandler(mockService, invalidator)

	bodyBytes, _ := json.Marshal(dtos.FlightUpsertRequest{DepartureIata: "JFK", ArrivalIata: "LAX"})
	req := httptest.NewRequest("POST", "/api/v1/flights", bytes.NewReader(bodyBytes))
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if len(invalidator.invalidated) != 1 || invalidator.invalidated[0] != "user-1" {
		t.Errorf("Expected cache invalidation for user-1, got %v", invalidator.invalidated)
	}
}

func TestGetFlightHandler_NotFound(t *testing.T) {
	mockService := &mockFlightService{
		getFunc: func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
			return nil, &services.FlightError{
				Code:    constants.ErrCodeFlightNotFound,
				Message: constants.MsgFlightNotFound,
			}
		},
	}

	handler := GetFlightHandler(mockService)

	req := httptest.NewRequest("GET", "/api/v1/flights/missing", nil)
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})
	req = withURLParam(req, "flight_id", "missing")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.ErrorCode != constants.ErrCodeFlightNotFound {
		t.Errorf("Expected error code %s, got %s", constants.ErrCodeFlightNotFound, response.ErrorCode)
	}
}

func TestGetFlightHandler_Forbidden(t *testing.T) {
	mockService := &mockFlightService{
		getFunc: func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
			return nil, &services.FlightError{
				Code:    constants.ErrCodeNotFlightOwner,
				Message: constants.MsgNotFlightOwner,
			}
		},
	}

	handler := GetFlightHandler(mockService)

	req := httptest.NewRequest("GET", "/api/v1/flights/someone-elses", nil)
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})
	req = withURLParam(req, "flight_id", "someone-elses")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rr.Code)
	}
}

func TestListFlightsHandler_Success(t *testing.T) {
	mockService := &mockFlightService{
		listFunc: func(ctx context.Context, claims auth.UserClaims) ([]dtos.FlightDto, error) {
			return []dtos.FlightDto{{ID: "flight-1"}, {ID: "flight-2"}}, nil
		},
	}

	handler := ListFlightsHandler(mockService)

	req := httptest.NewRequest("GET", "/api/v1/flights", nil)
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	flights, ok := response.Data.([]interface{})
	if !ok {
		t.Fatalf("Expected data to be a list, got %T", response.Data)
	}
	if len(flights) != 2 {
		t.Errorf("Expected 2 flights, got %d", len(flights))
	}
}

func TestDeleteFlightHandler_InvalidatesCache(t *testing.T) {
	mockService := &mockFlightService{
		deleteFunc: func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
			return &dtos.FlightDto{ID: id, UserID: "user-1"}, nil
		},
	}
	invalidator := &recordingInvalidator{}

	handler := DeleteFlightHandler(mockService, invalidator)

	req := httptest.NewRequest("DELETE", "/api/v1/flights/flight-1", nil)
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})
	req = withURLParam(req, "flight_id", "flight-1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if len(invalidator.invalidated) != 1 {
		t.Errorf("Expected one invalidation, got %d", len(invalidator.invalidated))
	}
}

func TestUpdateFlightHandler_AdminInvalidatesOwnerScope(t *testing.T) {
	mockService := &mockFlightService{
		updateFunc: func(ctx context.Context, claims auth.UserClaims, id string, req dtos.FlightUpsertRequest) (*dtos.FlightDto, error) {
			return &dtos.FlightDto{ID: id, UserID: "pilot-7", DepartureIata: req.DepartureIata}, nil
		},
	}
	invalidator := &recordingInvalidator{}

	handler := UpdateFlightHandler(mockService, invalidator)

	bodyBytes, _ := json.Marshal(dtos.FlightUpsertRequest{DepartureIata: "JFK", ArrivalIata: "LAX"})
	req := httptest.NewRequest("PUT", "/api/v1/flights/flight-1", bytes.NewReader(bodyBytes))
	req = withClaims(req, &testClaims{id: "admin-1", role: constants.RoleAdmin})
	req = withURLParam(req, "flight_id", "flight-1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if len(invalidator.invalidated) != 1 || invalidator.invalidated[0] != "pilot-7" {
		t.Errorf("Expected invalidation for the flight owner, got %v", invalidator.invalidated)
	}
}

func TestDeleteFlightHandler_AdminInvalidatesOwnerScope(t *testing.T) {
	mockService := &mockFlightService{
		deleteFunc: func(ctx context.Context, claims auth.UserClaims, id string) (*dtos.FlightDto, error) {
			return &dtos.FlightDto{ID: id, UserID: "pilot-7"}, nil
		},
	}
	invalidator := &recordingInvalidator{}

	handler := DeleteFlightHandler(mockService, invalidator)

	req := httptest.NewRequest("DELETE", "/api/v1/flights/flight-1", nil)
	req = withClaims(req, &testClaims{id: "admin-1", role: constants.RoleAdmin})
	req = withURLParam(req, "flight_id", "flight-1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if len(invalidator.invalidated) != 1 || invalidator.invalidated[0] != "pilot-7" {
		t.Errorf("Expected invalidation for the flight owner, got %v", invalidator.invalidated)
	}
}

func TestUpdateFlightHandler_MissingID(t *testing.T) {
	handler := UpdateFlightHandler(&mockFlightService{}, &recordingInvalidator{})

	bodyBytes, _ := json.Marshal(dtos.FlightUpsertRequest{DepartureIata: "JFK", ArrivalIata: "LAX"})
	req := httptest.NewRequest("PUT", "/api/v1/flights/", bytes.NewReader(bodyBytes))
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})
	req = withURLParam(req, "flight_id", "")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
