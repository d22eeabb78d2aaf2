//go:build unit

package readstore

import (
	"context"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/infra/dbq"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(dbq.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db dbq.DBTX, email string) (dbq.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(dbq.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByVerificationToken(ctx context.Context, db dbq.DBTX, token string) (dbq.Users, error) {
	args := m.Called(ctx, db, token)
	return args.Get(0).(dbq.Users), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	verified := builder.NewUserBuilder().BuildInfra()
	pending := builder.NewUserBuilder().WithEmail("pending@example.com").AsUnverified().BuildInfra()

	tests := []struct {
		name         string
		email        string
		lookup       string
		mockReturn   dbq.Users
		mockError    error
		wantVerified bool
		wantKind     infra.RepositoryErrorKind
	}{
		{
			name:         "verified member",
			email:        "  Test@Example.com ",
			lookup:       verified.Email,
			mockReturn:   verified,
			wantVerified: true,
		},
		{
			name:       "member awaiting confirmation",
			email:      pending.Email,
			lookup:     pending.Email,
			mockReturn: pending,
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			lookup:    "nobody@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     "x@example.com",
			lookup:    "x@example.com",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.lookup).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			u, err := store.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.mockReturn.ID, u.ID())
			assert.Equal(t, tt.wantVerified, u.IsEmailVerified())
			assert.Equal(t, "Test User", u.DisplayName())
			mockQueries.AssertExpectations(t)
		})
	}
}
