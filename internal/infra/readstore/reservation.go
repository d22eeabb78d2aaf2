package readstore

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"
)

type ReservationViewQueries interface {
	ListReservations(ctx context.Context, db dbq.DBTX, arg dbq.ListReservationsParams) ([]dbq.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      dbq.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db dbq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// Query always hits the store; nothing is cached between calls.
func (r *ReservationReadStore) Query(ctx context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	params := dbq.ListReservationsParams{
		Date: converter.DateFilterToPgtype(filter.Date),
	}
	if filter.ID != nil {
		params.ID = pgconv.UUIDToPgtype(*filter.ID)
	}
	if filter.UserID != nil {
		params.UserID = pgconv.UUIDToPgtype(*filter.UserID)
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err, infra.KindDBFailure)
	}

	result, err := converter.ReservationsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservations", err, infra.KindDBFailure)
	}
	return result, nil
}

