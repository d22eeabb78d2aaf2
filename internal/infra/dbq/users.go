package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, gender,
       email_verified_at, verification_token, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.FirstName,
		&i.LastName,
		&i.Phone,
		&i.Gender,
		&i.EmailVerifiedAt,
		&i.VerificationToken,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, email, password_hash, first_name, last_name, phone, gender, verification_token)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

type CreateUserParams struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"password_hash"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	Phone             string      `json:"phone"`
	Gender            string      `json:"gender"`
	VerificationToken pgtype.Text `json:"verification_token"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.FirstName,
		arg.LastName,
		arg.Phone,
		arg.Gender,
		arg.VerificationToken,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByVerificationToken = `-- name: FindUserByVerificationToken :one
SELECT ` + userColumns + `
FROM users
WHERE verification_token = $1`

func (q *Queries) FindUserByVerificationToken(ctx context.Context, db DBTX, token string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByVerificationToken, token))
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users
SET last_login = $2, updated_at = $2
WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}

const confirmUserEmail = `-- name: ConfirmUserEmail :execrows
UPDATE users
SET email_verified_at = $2, verification_token = NULL, updated_at = $2
WHERE id = $1`

func (q *Queries) ConfirmUserEmail(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, confirmUserEmail, id, at)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const setUserVerificationToken = `-- name: SetUserVerificationToken :execrows
UPDATE users
SET verification_token = $2, updated_at = now()
WHERE id = $1 AND email_verified_at IS NULL`

func (q *Queries) SetUserVerificationToken(ctx context.Context, db DBTX, id uuid.UUID, token string) (int64, error) {
	result, err := db.Exec(ctx, setUserVerificationToken, id, token)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
