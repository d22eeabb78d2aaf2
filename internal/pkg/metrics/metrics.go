package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "court_booking",
			Name:      "booking_requests_total",
			Help:      "Count of booking requests by result.",
		},
		[]string{"result"},
	)

	cancellations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "court_booking",
			Name:      "cancellations_total",
			Help:      "Count of cancellation requests by result.",
		},
		[]string{"result"},
	)

	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "court_booking",
			Name:      "auth_events_total",
			Help:      "Count of session events published by the session accessor.",
		},
		[]string{"event"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingRequests, cancellations, authEvents)
	})
}

func IncBookingRequest(result string) {
	bookingRequests.WithLabelValues(result).Inc()
}

func IncCancellation(result string) {
	cancellations.WithLabelValues(result).Inc()
}

func IncAuthEvent(event string) {
	authEvents.WithLabelValues(event).Inc()
}
