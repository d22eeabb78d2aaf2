//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/session"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProvider *sharedmock.MockIdentityProvider
	accessor     *session.Accessor
	events       []session.Event
	commands     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = sharedmock.NewMockIdentityProvider(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	s.accessor = session.NewAccessor(s.mockProvider, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.events = nil
	s.accessor.Subscribe(func(ev session.Event) { s.events = append(s.events, ev) })
	s.commands = commands.NewAuthCommands(s.mockProvider, s.accessor)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) kinds() []session.EventKind {
	out := make([]session.EventKind, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	member := builder.NewUserBuilder().BuildSession()

	s.Run("success: publishes signed_in", func() {
		s.SetupTest()
		s.mockProvider.EXPECT().SignInWithPassword(gomock.Any(), "test@example.com", "password123").
			Return(member, nil).Times(1)

		got, err := s.commands.Login(ctx, "test@example.com", "password123")

		s.Require().NoError(err)
		s.Equal(member, got)
		s.Equal([]session.EventKind{session.EventSignedIn}, s.kinds())
		s.Equal(member.UserID(), s.events[0].UserID)
		s.False(s.events[0].At.IsZero())
	})

	s.Run("error: nothing is published on failure", func() {
		s.SetupTest()
		s.mockProvider.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		_, err := s.commands.Login(ctx, "test@example.com", "wrong-password")

		s.ErrorIs(err, errs.ErrInvalidCredentials)
		s.Empty(s.events)
	})
}

func (s *AuthCommandsTestSuite) TestSignUp() {
	identity := builder.NewUserBuilder().BuildIdentity()
	in := shared.SignUpInput{Email: identity.Email, Password: "password123", FirstName: "Test", LastName: "User", Gender: "F"}

	s.mockProvider.EXPECT().SignUp(gomock.Any(), in).Return(&identity, nil).Times(1)

	got, err := s.commands.SignUp(context.Background(), in)

	s.Require().NoError(err)
	s.Equal(identity.UserID, got.UserID)
	s.Equal([]session.EventKind{session.EventSignedUp}, s.kinds())
}

func (s *AuthCommandsTestSuite) TestLogout() {
	ctx := context.Background()

	s.Run("success: publishes signed_out", func() {
		s.SetupTest()
		member := builder.NewUserBuilder().BuildSession()
		s.mockProvider.EXPECT().SignOut(gomock.Any(), member).Return(nil).Times(1)

		s.Require().NoError(s.commands.Logout(ctx, member))
		s.Equal([]session.EventKind{session.EventSignedOut}, s.kinds())
	})

	s.Run("success: no session is a no-op", func() {
		s.SetupTest()

		s.NoError(s.commands.Logout(ctx, nil))
		s.Empty(s.events)
	})

	s.Run("error: revocation store down", func() {
		s.SetupTest()
		s.mockProvider.EXPECT().SignOut(gomock.Any(), gomock.Any()).Return(errs.ErrStoreUnavailable).Times(1)

		err := s.commands.Logout(ctx, builder.NewUserBuilder().BuildSession())

		s.ErrorIs(err, errs.ErrStoreUnavailable)
		s.Empty(s.events)
	})
}

func (s *AuthCommandsTestSuite) TestRefresh() {
	member := builder.NewUserBuilder().BuildSession()
	s.mockProvider.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(member, nil).Times(1)

	got, err := s.commands.Refresh(context.Background(), "refresh-token")

	s.Require().NoError(err)
	s.Equal(member, got)
	s.Equal([]session.EventKind{session.EventTokenRefreshed}, s.kinds())
}

func (s *AuthCommandsTestSuite) TestConfirmEmail() {
	ctx := context.Background()

	s.Run("success: confirms then signs in", func() {
		s.SetupTest()
		member := builder.NewUserBuilder().BuildSession()
		s.mockProvider.EXPECT().ExchangeCode(gomock.Any(), "abc").Return(member, nil).Times(1)

		_, err := s.commands.ConfirmEmail(ctx, "abc")

		s.Require().NoError(err)
		s.Equal([]session.EventKind{session.EventEmailConfirmed, session.EventSignedIn}, s.kinds())
	})

	s.Run("error: invalid code", func() {
		s.SetupTest()
		s.mockProvider.EXPECT().ExchangeCode(gomock.Any(), "nope").Return(nil, errs.ErrInvalidCode).Times(1)

		_, err := s.commands.ConfirmEmail(ctx, "nope")

		s.ErrorIs(err, errs.ErrInvalidCode)
		s.Empty(s.events)
	})
}

func (s *AuthCommandsTestSuite) TestResendVerification() {
	s.mockProvider.EXPECT().ResendVerification(gomock.Any(), "someone@example.com").Return(nil).Times(1)

	s.NoError(s.commands.ResendVerification(context.Background(), "someone@example.com"))
	s.Empty(s.events)
}
