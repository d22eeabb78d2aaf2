package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	Reservations() ReservationRepository
	Users() UserRepository
	Notifications() NotificationRepository
}

// ReservationRepository is the write side of the record store.
// Insert returns the row as acknowledged by the store (id and created_at filled in).
// A uniqueness violation surfaces as an infra.RepositoryError of kind DUPLICATE_KEY.
type ReservationRepository interface {
	Insert(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	ConfirmEmail(ctx context.Context, userID uuid.UUID, at time.Time) error
	SetVerificationToken(ctx context.Context, userID uuid.UUID, token string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
