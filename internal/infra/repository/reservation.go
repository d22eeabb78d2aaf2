package repository

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	InsertReservation(ctx context.Context, db dbq.DBTX, arg dbq.InsertReservationParams) (dbq.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Reservations, error)
	DeleteReservation(ctx context.Context, db dbq.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      dbq.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db dbq.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	params := converter.ReservationToInfra(res)

	row, err := r.queries.InsertReservation(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	stored, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert inserted reservation", err, infra.KindDBFailure)
	}
	return stored, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
