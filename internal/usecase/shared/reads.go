package shared

//go:generate mockgen -source=reads.go -destination=../../../tests/mock/shared/reads.go -package=sharedmock

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

// ReservationFilter narrows a reservation query. Nil fields do not filter.
type ReservationFilter struct {
	ID     *uuid.UUID
	Date   *reservation.Date
	UserID *uuid.UUID
}

func ByDate(d reservation.Date) ReservationFilter {
	return ReservationFilter{Date: &d}
}

func ByUser(id uuid.UUID) ReservationFilter {
	return ReservationFilter{UserID: &id}
}

// ReservationReadStore is the read side of the record store.
// Results are ordered by date, start time, then court.
type ReservationReadStore interface {
	Query(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*user.User, error)
}
