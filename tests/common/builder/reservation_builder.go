//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CourtID   int
	Date      string
	StartTime string
	UserName  string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CourtID:   1,
		Date:      "2025-06-02",
		StartTime: "10:00",
		UserName:  "Test User",
		CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// BuildDomain returns a stored reservation, as read back from the store.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID,
		b.UserID,
		b.CourtID,
		reservation.MustParseDate(b.Date),
		reservation.MustParseSlot(b.StartTime),
		b.UserName,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) WithUser(id uuid.UUID, name string) *ReservationBuilder {
	b.UserID = id
	b.UserName = name
	return b
}

func (b *ReservationBuilder) WithCourt(id int) *ReservationBuilder {
	b.CourtID = id
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithStartTime(start string) *ReservationBuilder {
	b.StartTime = start
	return b
}
