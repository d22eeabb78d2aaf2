package reservation

import (
	"time"

	"github.com/google/uuid"
)

// ComputeCellStatus derives the state of (courtID, slot) on date.
// A matching reservation wins over the clock, so a booked slot stays Reserved after it starts.
// The date and slot are interpreted in now's location.
func ComputeCellStatus(courtID int, slot Slot, date Date, now time.Time, existing []*Reservation) Cell {
	for _, r := range existing {
		if r.courtID == courtID && r.startTime == slot && r.date == date {
			return Cell{Status: StatusReserved, BookedBy: r.userName}
		}
	}

	if date.At(slot, now.Location()).Before(now) {
		return Cell{Status: StatusPast}
	}

	return Cell{Status: StatusAvailable}
}

// HasBookingOn reports whether userID already holds one of the given reservations on date.
func HasBookingOn(userID uuid.UUID, date Date, existing []*Reservation) bool {
	for _, r := range existing {
		if r.userID == userID && r.date == date {
			return true
		}
	}
	return false
}
