package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/dtos"
)

type mockImportService struct {
	importFunc func(ctx context.Context, claims auth.UserClaims, r io.Reader) (*dtos.ImportReport, error)
}

func (m *mockImportService) ImportCSV(ctx context.Context, claims auth.UserClaims, r io.Reader) (*dtos.ImportReport, error) {
	return m.importFunc(ctx, claims, r)
}

func multipartSchedule(t *testing.T, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("schedule", "schedule.csv")
	if err != nil {
		t.Fatalf("Failed to build form: %v", err)
	}
	if _, err := part.Write([]byte(csv)); err != nil {
		t.Fatalf("Failed to write form: %v", err)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}

func TestImportFlightsHandler_Success(t *testing.T) {
	var received string
	mockService := &mockImportService{
		importFunc: func(ctx context.Context, claims auth.UserClaims, r io.Reader) (*dtos.ImportReport, error) {
			raw, _ := io.ReadAll(r)
			received = string(raw)
			return &dtos.ImportReport{Imported: 1}, nil
		},
	}
	invalidator := &recordingInvalidator{}

	handler := ImportFlightsHandler(mockService, invalidator)

	csv := "flight_date,flight_number,departure_iata,arrival_iata,airline_iata,status,duration_hours\n" +
		"2024-03-10,AA100,JFK,LAX,AA,completed,5.25\n"
	body, contentType := multipartSchedule(t, csv)

	req := httptest.NewRequest("POST", "/api/v1/flights/import", body)
	req.Header.Set("Content-Type", contentType)
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if received != csv {
		t.Errorf("Service did not receive the uploaded CSV")
	}
	if len(invalidator.invalidated) != 1 {
		t.Errorf("Expected one cache invalidation, got %d", len(invalidator.invalidated))
	}
}

func TestImportFlightsHandler_MissingFile(t *testing.T) {
	handler := ImportFlightsHandler(&mockImportService{}, &recordingInvalidator{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("note", "no file here")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/v1/flights/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = withClaims(req, &testClaims{id: "user-1", role: constants.RolePilot})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
