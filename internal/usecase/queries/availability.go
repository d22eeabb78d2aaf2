package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"

	"court-booking/internal/domain/auth"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	Courts() []CourtView
	Slots() []string
	Grid(ctx context.Context, s *auth.Session, date string) (*GridView, error)
	ListMine(ctx context.Context, s *auth.Session) (*MyReservationsView, error)
}

type availabilityQueriesImpl struct {
	reads   shared.ReservationReadStore
	catalog *court.Catalog
	clock   clock.Clock
}

func NewAvailabilityQueries(reads shared.ReservationReadStore, catalog *court.Catalog, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads:   reads,
		catalog: catalog,
		clock:   clk,
	}
}

func (q *availabilityQueriesImpl) Courts() []CourtView {
	courts := q.catalog.All()
	views := make([]CourtView, 0, len(courts))
	for _, c := range courts {
		views = append(views, courtView(c))
	}
	return views
}

func (q *availabilityQueriesImpl) Slots() []string {
	slots := reservation.Slots()
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

// Grid fetches the reservations of date once and derives every cell from them.
// An empty date means today in the club time zone.
func (q *availabilityQueriesImpl) Grid(ctx context.Context, s *auth.Session, date string) (*GridView, error) {
	now := q.clock.Now()

	day := reservation.DateOf(now)
	if date != "" {
		parsed, err := reservation.ParseDate(date)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		day = parsed
	}

	existing, err := q.reads.Query(ctx, shared.ByDate(day))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	owners := make(map[int]map[reservation.Slot]bool)
	view := &GridView{
		Date:     day.String(),
		Previous: day.AddDays(-1).String(),
		Next:     day.AddDays(1).String(),
		Courts:   q.Courts(),
	}
	if s != nil {
		for _, r := range existing {
			if r.IsOwnedBy(s.UserID()) {
				if owners[r.CourtID()] == nil {
					owners[r.CourtID()] = make(map[reservation.Slot]bool)
				}
				owners[r.CourtID()][r.StartTime()] = true
			}
		}
		view.BookedToday = reservation.HasBookingOn(s.UserID(), day, existing)
	}

	courts := q.catalog.All()
	for _, slot := range reservation.Slots() {
		row := GridRow{Slot: slot.String(), Cells: make([]CellView, 0, len(courts))}
		for _, c := range courts {
			cell := reservation.ComputeCellStatus(c.ID, slot, day, now, existing)
			row.Cells = append(row.Cells, CellView{
				CourtID:  c.ID,
				Status:   cell.Status.String(),
				Label:    cell.Status.Label(),
				BookedBy: cell.BookedBy,
				Mine:     cell.Status == reservation.StatusReserved && owners[c.ID][slot],
			})
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}

// ListMine splits the member's reservations into upcoming and past, both in chronological order.
func (q *availabilityQueriesImpl) ListMine(ctx context.Context, s *auth.Session) (*MyReservationsView, error) {
	if s == nil {
		return nil, errs.ErrAuthRequired
	}

	rs, err := q.reads.Query(ctx, shared.ByUser(s.UserID()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	now := q.clock.Now()
	view := &MyReservationsView{
		Upcoming: []ReservationView{},
		Past:     []ReservationView{},
	}
	for _, r := range rs {
		item := q.reservationView(r)
		if r.IsUpcoming(now) {
			view.Upcoming = append(view.Upcoming, item)
		} else {
			view.Past = append(view.Past, item)
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) reservationView(r *reservation.Reservation) ReservationView {
	c, ok := q.catalog.Get(r.CourtID())
	if !ok {
		c = court.Court{ID: r.CourtID()}
	}
	return ReservationView{
		ID:        r.ID(),
		Court:     courtView(c),
		Date:      r.Date().String(),
		StartTime: r.StartTime().String(),
		UserName:  r.UserName(),
		CreatedAt: r.CreatedAt(),
	}
}

func courtView(c court.Court) CourtView {
	return CourtView{
		ID:       c.ID,
		Name:     c.Name,
		Category: string(c.Category),
		Surface:  c.Surface,
	}
}
