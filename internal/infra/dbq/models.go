package dbq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservations struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	CourtID   int16              `json:"court_id"`
	Date      pgtype.Date        `json:"date"`
	StartTime pgtype.Time        `json:"start_time"`
	UserName  string             `json:"user_name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID                uuid.UUID          `json:"id"`
	Email             string             `json:"email"`
	PasswordHash      string             `json:"password_hash"`
	FirstName         string             `json:"first_name"`
	LastName          string             `json:"last_name"`
	Phone             string             `json:"phone"`
	Gender            string             `json:"gender"`
	EmailVerifiedAt   pgtype.Timestamptz `json:"email_verified_at"`
	VerificationToken pgtype.Text        `json:"verification_token"`
	LastLogin         pgtype.Timestamptz `json:"last_login"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
