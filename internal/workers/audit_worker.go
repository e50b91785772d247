package workers

import (
	"context"
	"time"

	"skylog/flightdeck/internal/db/repositories"
	"skylog/flightdeck/internal/logging"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/entities"
)

// AuditQueue buffers audit events between request handlers and the writer
// goroutine. Handlers never block on the audit trail; when the buffer is
// full the event is dropped and counted.
var AuditQueue = make(chan entities.AuditEvent, 256)

// EnqueueAudit submits an event without blocking.
func EnqueueAudit(reg *metrics.MetricsRegistry, event entities.AuditEvent) {
	select {
	case AuditQueue <- event:
		if reg != nil {
			reg.AuditEventsTotal.Inc()
		}
	default:
		if reg != nil {
			reg.AuditEventsDroppedTotal.Inc()
		}
		logging.Warn("audit queue full, dropping event",
			"action", event.Action,
			"actor_id", event.ActorID,
		)
	}
}

// AuditWorker drains the queue into the audit_events table. Run as a
// goroutine at startup; it exits when the queue channel is closed.
func AuditWorker(repo *repositories.AuditRepository) {
	logging.Info("audit worker started")

	for event := range AuditQueue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := repo.Insert(ctx, &event); err != nil {
			logging.Error("audit write failed",
				"action", event.Action,
				"actor_id", event.ActorID,
				"error", err.Error(),
			)
		}
		cancel()
	}
}

// InitWorkers starts all background workers.
func InitWorkers(auditRepo *repositories.AuditRepository) {
	go AuditWorker(auditRepo)
}
