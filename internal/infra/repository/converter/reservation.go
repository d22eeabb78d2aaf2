package converter

import (
	"fmt"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) dbq.InsertReservationParams {
	start := res.StartTime()
	return dbq.InsertReservationParams{
		UserID:    res.UserID(),
		CourtID:   int16(res.CourtID()), // #nosec G115 -- court ids are small catalog values
		Date:      pgconv.DateToPgtype(res.Date().Time()),
		StartTime: pgconv.ClockToPgtype(start.Hour(), start.Minute()),
		UserName:  res.UserName(),
	}
}

func ReservationToDomain(row dbq.Reservations) (*reservation.Reservation, error) {
	if !row.Date.Valid || !row.StartTime.Valid {
		return nil, fmt.Errorf("reservation %s: missing date or start time", row.ID)
	}

	hour, minute, _ := pgconv.ClockFromPgtype(row.StartTime)
	start, err := reservation.NewSlot(hour, minute)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.Reconstruct(
		row.ID,
		row.UserID,
		int(row.CourtID),
		reservation.DateOf(row.Date.Time),
		start,
		row.UserName,
		row.CreatedAt.Time,
	), nil
}

func ReservationsToDomain(rows []dbq.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func DateFilterToPgtype(d *reservation.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgconv.DateToPgtype(d.Time())
}
