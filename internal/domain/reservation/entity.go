package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCourt    = errors.New("invalid court id")
	ErrMissingUser     = errors.New("user id is required")
	ErrMissingUserName = errors.New("display name is required")
)

// Reservation is one court booked for one hour on one day.
// id and createdAt are assigned by the store; a Reservation built by New is a draft until inserted.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	courtID   int
	date      Date
	startTime Slot
	userName  string
	createdAt time.Time
}

func New(userID uuid.UUID, courtID int, date Date, startTime Slot, userName string) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if courtID <= 0 {
		return nil, ErrInvalidCourt
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !startTime.IsOffered() {
		return nil, ErrInvalidSlot
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrMissingUserName
	}

	return &Reservation{
		userID:    userID,
		courtID:   courtID,
		date:      date,
		startTime: startTime,
		userName:  userName,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	courtID int,
	date Date,
	startTime Slot,
	userName string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		courtID:   courtID,
		date:      date,
		startTime: startTime,
		userName:  userName,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) CourtID() int         { return r.courtID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) StartTime() Slot      { return r.startTime }
func (r *Reservation) UserName() string     { return r.userName }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.date.At(r.startTime, loc)
}

// IsUpcoming reports whether the reservation starts strictly after now.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.StartsAt(now.Location()).After(now)
}
