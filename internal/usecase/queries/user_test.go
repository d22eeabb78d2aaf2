//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_CurrentUser(t *testing.T) {
	ctx := context.Background()
	b := builder.NewUserBuilder().WithName("Camille", "Roux").WithGender("F")
	member := b.BuildSession()

	t.Run("returns the profile of the session member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockUserReadStore(ctrl)
		u, err := b.BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindByID(gomock.Any(), member.UserID()).Return(u, nil).Times(1)

		got, err := queries.NewUserQueries(store).CurrentUser(ctx, member)

		require.NoError(t, err)
		assert.Equal(t, &queries.CurrentUserView{
			ID:          member.UserID(),
			Email:       "test@example.com",
			FirstName:   "Camille",
			LastName:    "Roux",
			Phone:       "+33 6 00 00 00 00",
			Gender:      "F",
			DisplayName: "Camille Roux",
		}, got)
	})

	t.Run("deleted member is no longer authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to find user by id", pgx.ErrNoRows)).Times(1)

		_, err := queries.NewUserQueries(store).CurrentUser(ctx, member)

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to find user by id", errors.New("conn closed"))).Times(1)

		_, err := queries.NewUserQueries(store).CurrentUser(ctx, member)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("no session", func(t *testing.T) {
		_, err := queries.NewUserQueries(nil).CurrentUser(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})
}
