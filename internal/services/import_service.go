package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"skylog/flightdeck/internal/analytics"
	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/models/entities"
	"skylog/flightdeck/internal/workers"
)

// Expected CSV header, in order.
var importColumns = []string{
	"flight_date", "flight_number", "departure_iata",
	"arrival_iata", "airline_iata", "status", "duration_hours",
}

// ImportService turns an uploaded schedule CSV into flight rows. Bad rows
// never abort the upload; they are collected into the report and skipped,
// matching the coercion philosophy of the aggregator.
type ImportService struct {
	flights FlightStore
	metrics *metrics.MetricsRegistry
}

func NewImportService(flights FlightStore, reg *metrics.MetricsRegistry) *ImportService {
	return &ImportService{flights: flights, metrics: reg}
}

// ImportCSV reads the schedule, validates each row and inserts the good
// ones under the caller's account.
func (s *ImportService) ImportCSV(ctx context.Context, claims auth.UserClaims, r io.Reader) (*dtos.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	report := &dtos.ImportReport{Errors: []dtos.ImportRowError{}}
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++

		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dtos.ImportRowError{Line: line, Reason: err.Error()})
			continue
		}

		if report.Imported+report.Failed >= constants.ImportMaxRows {
			return nil, &FlightError{
				Code:    constants.ErrCodeImportMalformed,
				Message: constants.MsgImportTooLarge,
			}
		}

		flight, rowErr := flightFromRow(row)
		if rowErr != "" {
			report.Failed++
			s.metrics.ImportRowsRejectedTotal.Inc()
			report.Errors = append(report.Errors, dtos.ImportRowError{Line: line, Reason: rowErr})
			continue
		}

		flight.UserID = claims.UserID()
		if err := s.flights.Insert(ctx, flight); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dtos.ImportRowError{Line: line, Reason: "insert failed"})
			continue
		}

		report.Imported++
		s.metrics.FlightsImportedTotal.Inc()
	}

	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    claims.UserID(),
		Action:     entities.AuditActionImport,
		EntityType: "flight",
		Detail:     fmt.Sprintf("imported=%d failed=%d", report.Imported, report.Failed),
	})

	return report, nil
}

func validateHeader(header []string) error {
	if len(header) != len(importColumns) {
		return &FlightError{
			Code:    constants.ErrCodeImportMalformed,
			Message: fmt.Sprintf("expected %d columns, got %d", len(importColumns), len(header)),
		}
	}
	for i, col := range importColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return &FlightError{
				Code:    constants.ErrCodeImportMalformed,
				Message: fmt.Sprintf("column %d must be %q", i+1, col),
			}
		}
	}
	return nil
}

// flightFromRow validates one CSV row. Departure and arrival are required;
// everything else degrades to the aggregator's fallbacks.
func flightFromRow(row []string) (*entities.Flight, string) {
	dep := common.NormalizeIata(row[2])
	arr := common.NormalizeIata(row[3])
	if dep == "" || arr == "" {
		return nil, "departure and arrival IATA codes are required"
	}

	flight := &entities.Flight{
		FlightNumber:  strings.TrimSpace(row[1]),
		DepartureIata: dep,
		ArrivalIata:   arr,
		AirlineIata:   common.NormalizeIata(row[4]),
		Status:        strings.TrimSpace(strings.ToLower(row[5])),
	}

	if raw := strings.TrimSpace(row[0]); raw != "" {
		t, err := analytics.ParseFlightDate(raw)
		if err != nil {
			return nil, fmt.Sprintf("bad flight_date %q", raw)
		}
		flight.FlightDate = &t
	}

	// Duration coerces like everywhere else: garbage becomes 0.
	var hours analytics.Hours
	_ = hours.Scan(strings.TrimSpace(row[6]))
	flight.DurationHours = hours

	return flight, ""
}
