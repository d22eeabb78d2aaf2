package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db dbq.DBTX, arg dbq.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db dbq.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
	ConfirmUserEmail(ctx context.Context, db dbq.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
	SetUserVerificationToken(ctx context.Context, db dbq.DBTX, id uuid.UUID, token string) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      dbq.DBTX
}

func NewUserRepository(queries UserWriteQueries, db dbq.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, converter.UserToInfra(u))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) ConfirmEmail(ctx context.Context, userID uuid.UUID, at time.Time) error {
	affected, err := r.queries.ConfirmUserEmail(ctx, r.db, userID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to confirm user email", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetVerificationToken only touches members who have not confirmed their email yet.
func (r *UserRepository) SetVerificationToken(ctx context.Context, userID uuid.UUID, token string) error {
	affected, err := r.queries.SetUserVerificationToken(ctx, r.db, userID, token)
	if err != nil {
		return infra.WrapRepoErr("failed to set verification token", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("unverified user not found", nil, infra.KindNotFound)
	}
	return nil
}
