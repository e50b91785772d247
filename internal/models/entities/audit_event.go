package entities

import "time"

// AuditEvent records who did what to which entity. Rows are written by the
// audit worker, never updated.
type AuditEvent struct {
	ID         string    `db:"id"`
	ActorID    string    `db:"actor_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Detail     string    `db:"detail"`
	CreatedAt  time.Time `db:"created_at"`
}

// Audit actions.
const (
	AuditActionRegister     = "user.register"
	AuditActionLogin        = "user.login"
	AuditActionFlightCreate = "flight.create"
	AuditActionFlightUpdate = "flight.update"
	AuditActionFlightDelete = "flight.delete"
	AuditActionImport       = "flight.import"
)
