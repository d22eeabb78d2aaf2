package session

import (
	"log/slog"

	"court-booking/internal/pkg/metrics"
)

// MetricsListener counts session events.
func MetricsListener(ev Event) {
	metrics.IncAuthEvent(string(ev.Kind))
}

// AuditListener writes one log line per session event.
func AuditListener(logger *slog.Logger) Listener {
	return func(ev Event) {
		logger.Info("session event",
			"event", string(ev.Kind),
			"user_id", ev.UserID,
			"at", ev.At)
	}
}
