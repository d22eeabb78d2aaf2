package readstore

import (
	"context"
	"strings"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Users, error)
	FindUserByEmail(ctx context.Context, db dbq.DBTX, email string) (dbq.Users, error)
	FindUserByVerificationToken(ctx context.Context, db dbq.DBTX, token string) (dbq.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      dbq.DBTX
}

func NewUserReadStore(queries UserReadQueries, db dbq.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row)
}

func (r *UserReadStore) FindByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	row, err := r.queries.FindUserByVerificationToken(ctx, r.db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by verification token", err)
	}
	return toUser(row)
}

func toUser(row dbq.Users) (*user.User, error) {
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
