//go:build unit

package uow

import (
	"testing"
	"time"

	"court-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, attempt: 0, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, attempt: 2, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "commit"), attempt: 1, want: true},
		{name: "unique violation is final", err: &pgconn.PgError{Code: "23505"}, attempt: 0, want: false},
		{name: "plain error", err: assert.AnError, attempt: 0, want: false},
		{name: "retries exhausted", err: &pgconn.PgError{Code: "40001"}, attempt: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRetry(tt.err, tt.attempt, 3))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
