package response

import (
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	MsgBookingConfirmed = "Réservation confirmée !"
	MsgBookingCancelled = "Réservation annulée avec succès !"
)

type ReservationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Court     queries.CourtView `json:"court"`
	Date      string            `json:"date"`
	StartTime string            `json:"start_time"`
	UserName  string            `json:"user_name"`
	CreatedAt time.Time         `json:"created_at"`
}

type BookingResponse struct {
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}

type MyReservationsResponse struct {
	Upcoming []ReservationResponse `json:"upcoming"`
	Past     []ReservationResponse `json:"past"`
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}

type CourtsResponse struct {
	Courts []queries.CourtView `json:"courts"`
}

func FromBooking(r *reservation.Reservation, c court.Court) *BookingResponse {
	return &BookingResponse{
		Message: MsgBookingConfirmed,
		Reservation: ReservationResponse{
			ID: r.ID(),
			Court: queries.CourtView{
				ID:       c.ID,
				Name:     c.Name,
				Category: string(c.Category),
				Surface:  c.Surface,
			},
			Date:      r.Date().String(),
			StartTime: r.StartTime().String(),
			UserName:  r.UserName(),
			CreatedAt: r.CreatedAt(),
		},
	}
}

func FromMyReservations(v *queries.MyReservationsView) (*MyReservationsResponse, error) {
	res := MyReservationsResponse{
		Upcoming: make([]ReservationResponse, 0, len(v.Upcoming)),
		Past:     make([]ReservationResponse, 0, len(v.Past)),
	}
	if err := copier.Copy(&res.Upcoming, v.Upcoming); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Past, v.Past); err != nil {
		return nil, err
	}
	return &res, nil
}
