package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, court_id, date, start_time, user_name, created_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CourtID,
		&i.Date,
		&i.StartTime,
		&i.UserName,
		&i.CreatedAt,
	)
	return i, err
}

const insertReservation = `-- name: InsertReservation :one
INSERT INTO reservations (user_id, court_id, date, start_time, user_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + reservationColumns

type InsertReservationParams struct {
	UserID    uuid.UUID   `json:"user_id"`
	CourtID   int16       `json:"court_id"`
	Date      pgtype.Date `json:"date"`
	StartTime pgtype.Time `json:"start_time"`
	UserName  string      `json:"user_name"`
}

func (q *Queries) InsertReservation(ctx context.Context, db DBTX, arg InsertReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, insertReservation,
		arg.UserID,
		arg.CourtID,
		arg.Date,
		arg.StartTime,
		arg.UserName,
	)
	return scanReservation(row)
}

const listReservations = `-- name: ListReservations :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($1::uuid IS NULL OR id = $1)
  AND ($2::date IS NULL OR date = $2)
  AND ($3::uuid IS NULL OR user_id = $3)
ORDER BY date, start_time, court_id`

// ListReservationsParams filters are optional; an invalid value disables the filter.
type ListReservationsParams struct {
	ID     pgtype.UUID `json:"id"`
	Date   pgtype.Date `json:"date"`
	UserID pgtype.UUID `json:"user_id"`
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservations, arg.ID, arg.Date, arg.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationForUpdate, id)
	return scanReservation(row)
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations
WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
