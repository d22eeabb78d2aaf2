//go:build unit

package identity_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/infra/identity"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/pkg/password"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/fake"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite
	store    *fake.Store
	redis    *miniredis.Miniredis
	clock    *clock.MockClock
	provider *identity.Provider
}

func (s *ProviderTestSuite) SetupTest() {
	mr, client := newRedis(s.T())
	s.redis = mr
	s.store = fake.NewStore()
	// Token expiry and Redis TTLs are compared against wall time by the libraries.
	s.clock = clock.NewMockClock(time.Now().Truncate(time.Second))
	tokens := jwt.NewService("test-secret-key-for-court-booking", time.Hour, 24*time.Hour, s.clock)
	s.provider = identity.NewProvider(
		s.store,
		s.store.UserReads(),
		tokens,
		identity.NewRedisRevocationStore(client, s.clock),
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) signUpInput() shared.SignUpInput {
	return shared.SignUpInput{
		Email:     "Jeanne.Petit@Example.com",
		Password:  "password123",
		FirstName: "Jeanne",
		LastName:  "Petit",
		Phone:     "06 12 34 56 78",
		Gender:    "F",
	}
}

// seedMember stores a verified member whose password is "password123".
func (s *ProviderTestSuite) seedMember() *builder.UserBuilder {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	b := builder.NewUserBuilder().WithPasswordHash(hash)
	u, err := b.BuildDomain()
	s.Require().NoError(err)
	s.store.SeedUsers(u)
	return b
}

func (s *ProviderTestSuite) verificationCode() string {
	jobs := s.store.Jobs()
	s.Require().NotEmpty(jobs)
	var payload struct {
		Code string `json:"code"`
	}
	s.Require().NoError(json.Unmarshal(jobs[len(jobs)-1].Payload, &payload))
	return payload.Code
}

func (s *ProviderTestSuite) TestSignUp() {
	ctx := context.Background()

	s.Run("success: stores an unverified member and queues the confirmation email", func() {
		s.SetupTest()

		id, err := s.provider.SignUp(ctx, s.signUpInput())

		s.Require().NoError(err)
		s.Equal("jeanne.petit@example.com", id.Email)
		s.Equal("Jeanne Petit", id.DisplayName())

		stored, ok := s.store.User(id.UserID)
		s.Require().True(ok)
		s.False(stored.IsEmailVerified())
		s.NoError(password.ComparePassword(stored.PasswordHash(), "password123"))

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(identity.JobKindEmailVerification, jobs[0].Kind)
		s.Equal(*stored.VerificationToken(), s.verificationCode())
	})

	s.Run("error: email already registered", func() {
		s.SetupTest()
		_, err := s.provider.SignUp(ctx, s.signUpInput())
		s.Require().NoError(err)

		in := s.signUpInput()
		in.Email = "jeanne.petit@example.com"
		_, err = s.provider.SignUp(ctx, in)

		s.ErrorIs(err, errs.ErrEmailTaken)
		s.Len(s.store.Jobs(), 1)
	})

	s.Run("error: invalid input", func() {
		testCases := []struct {
			name   string
			mutate func(*shared.SignUpInput)
		}{
			{name: "bad email", mutate: func(in *shared.SignUpInput) { in.Email = "jeanne" }},
			{name: "short password", mutate: func(in *shared.SignUpInput) { in.Password = "1234567" }},
			{name: "unknown gender", mutate: func(in *shared.SignUpInput) { in.Gender = "X" }},
			{name: "missing last name", mutate: func(in *shared.SignUpInput) { in.LastName = "  " }},
			{name: "bad phone", mutate: func(in *shared.SignUpInput) { in.Phone = "call me" }},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()
				in := s.signUpInput()
				tc.mutate(&in)

				_, err := s.provider.SignUp(ctx, in)

				s.ErrorIs(err, errs.ErrDomainValidation)
				s.Empty(s.store.Jobs())
			})
		}
	})
}

func (s *ProviderTestSuite) TestSignInWithPassword() {
	ctx := context.Background()

	s.Run("success: issues a session and records the login", func() {
		s.SetupTest()
		b := s.seedMember()

		sess, err := s.provider.SignInWithPassword(ctx, "TEST@example.com", "password123")

		s.Require().NoError(err)
		s.Equal(b.ID, sess.UserID())
		s.NotEmpty(sess.AccessToken)
		s.NotEmpty(sess.RefreshToken)
		s.NotEmpty(sess.TokenID)
		s.WithinDuration(s.clock.Now().Add(time.Hour), sess.ExpiresAt, time.Second)

		stored, _ := s.store.User(b.ID)
		s.Require().NotNil(stored.LastLogin())
		s.WithinDuration(s.clock.Now(), *stored.LastLogin(), 0)
	})

	s.Run("error: wrong password and unknown email look the same", func() {
		s.SetupTest()
		s.seedMember()

		_, err := s.provider.SignInWithPassword(ctx, "test@example.com", "wrong-password")
		s.ErrorIs(err, errs.ErrInvalidCredentials)

		_, err = s.provider.SignInWithPassword(ctx, "nobody@example.com", "password123")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("error: email not confirmed", func() {
		s.SetupTest()
		_, err := s.provider.SignUp(ctx, s.signUpInput())
		s.Require().NoError(err)

		_, err = s.provider.SignInWithPassword(ctx, "jeanne.petit@example.com", "password123")

		s.ErrorIs(err, errs.ErrEmailNotConfirmed)
	})
}

func (s *ProviderTestSuite) TestExchangeCode() {
	ctx := context.Background()

	s.Run("success: confirms the email and opens a session", func() {
		s.SetupTest()
		id, err := s.provider.SignUp(ctx, s.signUpInput())
		s.Require().NoError(err)

		sess, err := s.provider.ExchangeCode(ctx, s.verificationCode())

		s.Require().NoError(err)
		s.Equal(id.UserID, sess.UserID())
		stored, _ := s.store.User(id.UserID)
		s.True(stored.IsEmailVerified())

		_, err = s.provider.SignInWithPassword(ctx, "jeanne.petit@example.com", "password123")
		s.NoError(err)
	})

	s.Run("error: code can only be used once", func() {
		s.SetupTest()
		_, err := s.provider.SignUp(ctx, s.signUpInput())
		s.Require().NoError(err)
		code := s.verificationCode()
		_, err = s.provider.ExchangeCode(ctx, code)
		s.Require().NoError(err)

		_, err = s.provider.ExchangeCode(ctx, code)

		s.ErrorIs(err, errs.ErrInvalidCode)
	})

	s.Run("error: empty or unknown code", func() {
		s.SetupTest()

		_, err := s.provider.ExchangeCode(ctx, " ")
		s.ErrorIs(err, errs.ErrInvalidCode)

		_, err = s.provider.ExchangeCode(ctx, "does-not-exist")
		s.ErrorIs(err, errs.ErrInvalidCode)
	})
}

func (s *ProviderTestSuite) TestGetSessionAndSignOut() {
	ctx := context.Background()
	s.seedMember()

	sess, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
	s.Require().NoError(err)

	resolved, err := s.provider.GetSession(ctx, sess.AccessToken)
	s.Require().NoError(err)
	s.Equal(sess.UserID(), resolved.UserID())
	s.Equal(sess.TokenID, resolved.TokenID)

	s.Require().NoError(s.provider.SignOut(ctx, sess))

	_, err = s.provider.GetSession(ctx, sess.AccessToken)
	s.ErrorIs(err, errs.ErrAuthRequired)

	_, err = s.provider.Refresh(ctx, sess.RefreshToken)
	s.ErrorIs(err, errs.ErrAuthRequired)
}

// Logout signs out the session the middleware resolved, which carries no refresh token of its own.
func (s *ProviderTestSuite) TestSignOutResolvedSession() {
	ctx := context.Background()

	s.Run("resolved session does not know the refresh token", func() {
		s.SetupTest()
		s.seedMember()
		login, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
		s.Require().NoError(err)

		resolved, err := s.provider.GetSession(ctx, login.AccessToken)
		s.Require().NoError(err)
		s.Empty(resolved.RefreshToken)
	})

	s.Run("refresh token attached at logout is revoked too", func() {
		s.SetupTest()
		s.seedMember()
		login, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
		s.Require().NoError(err)

		resolved, err := s.provider.GetSession(ctx, login.AccessToken)
		s.Require().NoError(err)
		resolved.RefreshToken = login.RefreshToken

		s.Require().NoError(s.provider.SignOut(ctx, resolved))

		_, err = s.provider.GetSession(ctx, login.AccessToken)
		s.ErrorIs(err, errs.ErrAuthRequired)
		_, err = s.provider.Refresh(ctx, login.RefreshToken)
		s.ErrorIs(err, errs.ErrAuthRequired)
	})
}

func (s *ProviderTestSuite) TestGetSession() {
	ctx := context.Background()

	s.Run("error: garbage token", func() {
		_, err := s.provider.GetSession(ctx, "not-a-jwt")
		s.ErrorIs(err, errs.ErrAuthRequired)
	})

	s.Run("error: refresh token used as access token", func() {
		s.SetupTest()
		s.seedMember()
		sess, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
		s.Require().NoError(err)

		_, err = s.provider.GetSession(ctx, sess.RefreshToken)

		s.ErrorIs(err, errs.ErrAuthRequired)
	})

	s.Run("error: expired access token", func() {
		s.SetupTest()
		s.seedMember()
		sess, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
		s.Require().NoError(err)

		s.clock.Add(2 * time.Hour)
		_, err = s.provider.GetSession(ctx, sess.AccessToken)

		s.ErrorIs(err, errs.ErrAuthRequired)
	})

	s.Run("error: revocation store down", func() {
		s.SetupTest()
		s.seedMember()
		sess, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
		s.Require().NoError(err)
		s.redis.Close()

		_, err = s.provider.GetSession(ctx, sess.AccessToken)

		s.ErrorIs(err, errs.ErrStoreUnavailable)
	})
}

func (s *ProviderTestSuite) TestRefresh() {
	ctx := context.Background()
	s.seedMember()
	first, err := s.provider.SignInWithPassword(ctx, "test@example.com", "password123")
	s.Require().NoError(err)

	second, err := s.provider.Refresh(ctx, first.RefreshToken)
	s.Require().NoError(err)
	s.NotEqual(first.RefreshToken, second.RefreshToken)
	s.Equal(first.UserID(), second.UserID())

	_, err = s.provider.Refresh(ctx, first.RefreshToken)
	s.ErrorIs(err, errs.ErrAuthRequired)

	_, err = s.provider.Refresh(ctx, second.AccessToken)
	s.ErrorIs(err, errs.ErrAuthRequired)
}

func (s *ProviderTestSuite) TestResendVerification() {
	ctx := context.Background()

	s.Run("success: rotates the code for unverified members", func() {
		s.SetupTest()
		_, err := s.provider.SignUp(ctx, s.signUpInput())
		s.Require().NoError(err)
		oldCode := s.verificationCode()

		s.Require().NoError(s.provider.ResendVerification(ctx, "jeanne.petit@example.com"))

		s.Len(s.store.Jobs(), 2)
		newCode := s.verificationCode()
		s.NotEqual(oldCode, newCode)

		_, err = s.provider.ExchangeCode(ctx, oldCode)
		s.ErrorIs(err, errs.ErrInvalidCode)
		_, err = s.provider.ExchangeCode(ctx, newCode)
		s.NoError(err)
	})

	s.Run("success: silent for unknown and verified addresses", func() {
		s.SetupTest()
		s.seedMember()

		s.NoError(s.provider.ResendVerification(ctx, "nobody@example.com"))
		s.NoError(s.provider.ResendVerification(ctx, "test@example.com"))
		s.Empty(s.store.Jobs())
	})

	s.Run("error: malformed address", func() {
		s.SetupTest()

		err := s.provider.ResendVerification(ctx, "nope")

		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *ProviderTestSuite) TestSignOutWithoutSession() {
	s.NoError(s.provider.SignOut(context.Background(), nil))
	s.NoError(s.provider.SignOut(context.Background(), &auth.Session{}))
}
