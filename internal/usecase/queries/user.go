package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"court-booking/internal/domain/auth"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

type UserQueries interface {
	CurrentUser(ctx context.Context, s *auth.Session) (*CurrentUserView, error)
}

type userQueriesImpl struct {
	readStore shared.UserReadStore
}

func NewUserQueries(readStore shared.UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) CurrentUser(ctx context.Context, s *auth.Session) (*CurrentUserView, error) {
	if s == nil {
		return nil, errs.ErrAuthRequired
	}

	member, err := q.readStore.FindByID(ctx, s.UserID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuthRequired)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	profile := member.Profile()
	return &CurrentUserView{
		ID:          member.ID(),
		Email:       member.Email().Value(),
		FirstName:   profile.FirstName(),
		LastName:    profile.LastName(),
		Phone:       profile.Phone(),
		Gender:      profile.Gender().String(),
		DisplayName: member.DisplayName(),
	}, nil
}
