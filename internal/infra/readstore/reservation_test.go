//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) ListReservations(ctx context.Context, db dbq.DBTX, arg dbq.ListReservationsParams) ([]dbq.Reservations, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]dbq.Reservations)
	return rows, args.Error(1)
}

func TestReservationQuery(t *testing.T) {
	date := reservation.MustParseDate("2025-06-02")
	userID := uuid.New()

	t.Run("date filter leaves other filters unset", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything, mock.MatchedBy(func(p dbq.ListReservationsParams) bool {
			return p.Date.Valid && p.Date.Time.Equal(date.Time()) && !p.ID.Valid && !p.UserID.Valid
		})).Return([]dbq.Reservations{}, nil)

		got, err := NewReservationReadStore(mockQueries, nil).Query(context.Background(), shared.ByDate(date))

		require.NoError(t, err)
		assert.Empty(t, got)
		mockQueries.AssertExpectations(t)
	})

	t.Run("user filter", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything, mock.MatchedBy(func(p dbq.ListReservationsParams) bool {
			return !p.Date.Valid && p.UserID.Valid && uuid.UUID(p.UserID.Bytes) == userID
		})).Return([]dbq.Reservations{}, nil)

		_, err := NewReservationReadStore(mockQueries, nil).Query(context.Background(), shared.ByUser(userID))

		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("start time with seconds is normalised", func(t *testing.T) {
		row := dbq.Reservations{
			ID:        uuid.New(),
			UserID:    userID,
			CourtID:   2,
			Date:      pgconv.DateToPgtype(date.Time()),
			StartTime: pgtype.Time{Microseconds: int64((14*time.Hour + 30*time.Second) / time.Microsecond), Valid: true},
			UserName:  "Ada",
			CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything, mock.Anything).Return([]dbq.Reservations{row}, nil)

		got, err := NewReservationReadStore(mockQueries, nil).Query(context.Background(), shared.ByDate(date))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, reservation.MustParseSlot("14:00:00"), got[0].StartTime())
		assert.Equal(t, date, got[0].Date())
		assert.Equal(t, 2, got[0].CourtID())
	})

	t.Run("store failure", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := NewReservationReadStore(mockQueries, nil).Query(context.Background(), shared.ByDate(date))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
