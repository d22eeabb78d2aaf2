//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability(t *testing.T, now time.Time) (queries.AvailabilityQueries, *fake.Store) {
	t.Helper()
	catalog, err := court.DefaultCatalog()
	require.NoError(t, err)
	store := fake.NewStore()
	return queries.NewAvailabilityQueries(store, catalog, clock.NewMockClock(now)), store
}

func TestAvailability_Catalogs(t *testing.T) {
	q, _ := newAvailability(t, time.Now())

	courts := q.Courts()
	require.Len(t, courts, 6)
	assert.Equal(t, queries.CourtView{ID: 1, Name: "Court 1", Category: "Indoor", Surface: "Dur"}, courts[0])
	assert.Equal(t, "Outdoor", courts[5].Category)

	slots := q.Slots()
	require.Len(t, slots, 15)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "22:00", slots[14])
}

func TestAvailability_Grid(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 15, 0, 0, time.UTC)
	viewer := builder.NewUserBuilder().BuildSession()

	t.Run("derives every cell from one read of the date", func(t *testing.T) {
		q, store := newAvailability(t, now)
		store.Seed(
			builder.NewReservationBuilder().WithUser(uuid.New(), "Bob Durand").
				WithCourt(2).WithDate("2025-06-02").WithStartTime("09:00").BuildDomain(),
			builder.NewReservationBuilder().WithUser(viewer.UserID(), "Test User").
				WithCourt(4).WithDate("2025-06-02").WithStartTime("18:00").BuildDomain(),
			builder.NewReservationBuilder().WithCourt(1).WithDate("2025-06-03").WithStartTime("18:00").BuildDomain(),
		)

		grid, err := q.Grid(ctx, viewer, "2025-06-02")
		require.NoError(t, err)

		assert.Equal(t, "2025-06-02", grid.Date)
		assert.Equal(t, "2025-06-01", grid.Previous)
		assert.Equal(t, "2025-06-03", grid.Next)
		assert.True(t, grid.BookedToday)
		require.Len(t, grid.Rows, 15)
		for _, row := range grid.Rows {
			require.Len(t, row.Cells, 6)
		}

		// 09:00 court 2: reserved in the past stays reserved
		assert.Equal(t, queries.CellView{CourtID: 2, Status: "reserved", Label: "Réservé", BookedBy: "Bob Durand"}, grid.Rows[1].Cells[1])
		// 09:00 court 1: past
		assert.Equal(t, "past", grid.Rows[1].Cells[0].Status)
		// 12:00 started at 12:00, now is 12:15
		assert.Equal(t, "past", grid.Rows[4].Cells[0].Status)
		// 13:00 available
		assert.Equal(t, queries.CellView{CourtID: 1, Status: "available", Label: "Disponible"}, grid.Rows[5].Cells[0])
		// 18:00 court 4 is the viewer's
		mine := grid.Rows[10].Cells[3]
		assert.Equal(t, "reserved", mine.Status)
		assert.True(t, mine.Mine)
		// another day's reservation does not leak
		assert.Equal(t, "available", grid.Rows[10].Cells[0].Status)
	})

	t.Run("empty date means today", func(t *testing.T) {
		q, _ := newAvailability(t, now)

		grid, err := q.Grid(ctx, nil, "")

		require.NoError(t, err)
		assert.Equal(t, "2025-06-02", grid.Date)
		assert.False(t, grid.BookedToday)
	})

	t.Run("future date is fully available", func(t *testing.T) {
		q, _ := newAvailability(t, now)

		grid, err := q.Grid(ctx, viewer, "2025-06-10")
		require.NoError(t, err)

		var statuses []string
		for _, row := range grid.Rows {
			for _, cell := range row.Cells {
				statuses = append(statuses, cell.Status)
			}
		}
		want := make([]string, 15*6)
		for i := range want {
			want[i] = "available"
		}
		if diff := cmp.Diff(want, statuses); diff != "" {
			t.Errorf("statuses mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		q, _ := newAvailability(t, now)

		_, err := q.Grid(ctx, viewer, "2025-13-01")

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("store unavailable", func(t *testing.T) {
		q, store := newAvailability(t, now)
		store.QueryErr = errors.New("timeout")

		_, err := q.Grid(ctx, viewer, "2025-06-02")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestAvailability_ListMine(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 15, 0, 0, time.UTC)
	viewer := builder.NewUserBuilder().BuildSession()

	t.Run("splits upcoming and past in chronological order", func(t *testing.T) {
		q, store := newAvailability(t, now)
		mk := func(courtID int, date, start string) *builder.ReservationBuilder {
			return builder.NewReservationBuilder().WithUser(viewer.UserID(), "Test User").
				WithCourt(courtID).WithDate(date).WithStartTime(start)
		}
		store.Seed(
			mk(3, "2025-06-05", "08:00").BuildDomain(),
			mk(1, "2025-05-30", "19:00").BuildDomain(),
			mk(6, "2025-06-02", "12:00").BuildDomain(),
			mk(2, "2025-06-02", "13:00").BuildDomain(),
			builder.NewReservationBuilder().WithCourt(5).WithDate("2025-06-05").BuildDomain(),
		)

		got, err := q.ListMine(ctx, viewer)
		require.NoError(t, err)

		type entry struct{ Date, Start, Court string }
		flatten := func(vs []queries.ReservationView) []entry {
			out := make([]entry, 0, len(vs))
			for _, v := range vs {
				out = append(out, entry{v.Date, v.StartTime, v.Court.Name})
			}
			return out
		}

		wantUpcoming := []entry{{"2025-06-02", "13:00", "Court 2"}, {"2025-06-05", "08:00", "Court 3"}}
		wantPast := []entry{{"2025-05-30", "19:00", "Court 1"}, {"2025-06-02", "12:00", "Court 6"}}
		if diff := cmp.Diff(wantUpcoming, flatten(got.Upcoming)); diff != "" {
			t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantPast, flatten(got.Past)); diff != "" {
			t.Errorf("past mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("enriches with court details", func(t *testing.T) {
		q, store := newAvailability(t, now)
		res := builder.NewReservationBuilder().WithUser(viewer.UserID(), "Test User").
			WithCourt(4).WithDate("2025-06-03").WithStartTime("20:00").BuildDomain()
		store.Seed(res)

		got, err := q.ListMine(ctx, viewer)
		require.NoError(t, err)

		want := []queries.ReservationView{{
			ID:        res.ID(),
			Court:     queries.CourtView{ID: 4, Name: "Court 4", Category: "Outdoor", Surface: "Béton Poreux"},
			Date:      "2025-06-03",
			StartTime: "20:00",
			UserName:  "Test User",
		}}
		if diff := cmp.Diff(want, got.Upcoming, cmpopts.IgnoreFields(queries.ReservationView{}, "CreatedAt")); diff != "" {
			t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, got.Past)
	})

	t.Run("no session", func(t *testing.T) {
		q, _ := newAvailability(t, now)

		_, err := q.ListMine(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})
}
