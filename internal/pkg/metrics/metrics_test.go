//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingRequests.WithLabelValues("slot_taken"))
	IncBookingRequest("slot_taken")
	IncBookingRequest("slot_taken")
	assert.InDelta(t, before+2, testutil.ToFloat64(bookingRequests.WithLabelValues("slot_taken")), 0)

	before = testutil.ToFloat64(cancellations.WithLabelValues("forbidden"))
	IncCancellation("forbidden")
	assert.InDelta(t, before+1, testutil.ToFloat64(cancellations.WithLabelValues("forbidden")), 0)

	before = testutil.ToFloat64(authEvents.WithLabelValues("signed_out"))
	IncAuthEvent("signed_out")
	assert.InDelta(t, before+1, testutil.ToFloat64(authEvents.WithLabelValues("signed_out")), 0)
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NotPanics(t, func() {
		Register()
		Register()
	})

	err := prometheus.Register(bookingRequests)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
