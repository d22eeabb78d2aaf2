package request

import (
	"court-booking/internal/usecase/commands"
)

// BookingRequest names one cell of the grid. The time accepts "HH:MM" and "HH:MM:SS".
type BookingRequest struct {
	CourtID   int    `json:"courtId" binding:"required,min=1"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" binding:"required"`
}

func (r *BookingRequest) ToCommand() commands.BookingRequest {
	return commands.BookingRequest{
		CourtID:   r.CourtID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}
