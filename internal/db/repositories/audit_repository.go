package repositories

import (
	"context"
	"fmt"

	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/entities"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *entities.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx, constants.InsertAuditEvent,
		event.ID,
		event.ActorID,
		event.Action,
		event.EntityType,
		event.EntityID,
		event.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first, capped at limit.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	events := []entities.AuditEvent{}
	if err := r.db.SelectContext(ctx, &events, constants.ListAuditEvents, limit); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}
