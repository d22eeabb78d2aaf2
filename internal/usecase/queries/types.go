package queries

import (
	"time"

	"github.com/google/uuid"
)

// CourtView is one entry of the court catalog.
type CourtView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Surface  string `json:"surface"`
}

type CellView struct {
	CourtID  int    `json:"court_id"`
	Status   string `json:"status"`
	Label    string `json:"label"`
	BookedBy string `json:"booked_by,omitempty"`
	// Mine is set when the reservation holding the cell belongs to the viewer.
	Mine bool `json:"mine"`
}

type GridRow struct {
	Slot  string     `json:"slot"`
	Cells []CellView `json:"cells"`
}

// GridView is the booking grid of one date: one row per slot, one cell per court.
type GridView struct {
	Date     string      `json:"date"`
	Previous string      `json:"previous"`
	Next     string      `json:"next"`
	Courts   []CourtView `json:"courts"`
	Rows     []GridRow   `json:"rows"`
	// BookedToday is set when the viewer already holds a reservation on Date.
	BookedToday bool `json:"booked_today"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Court     CourtView `json:"court"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

type MyReservationsView struct {
	Upcoming []ReservationView `json:"upcoming"`
	Past     []ReservationView `json:"past"`
}

type CurrentUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone,omitempty"`
	Gender      string    `json:"gender"`
	DisplayName string    `json:"display_name"`
}
