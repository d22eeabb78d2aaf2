package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"

	"court-booking/internal/domain/auth"
	"court-booking/internal/usecase/session"
	"court-booking/internal/usecase/shared"
)

type AuthCommands interface {
	SignUp(ctx context.Context, in shared.SignUpInput) (*auth.Identity, error)
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Logout(ctx context.Context, s *auth.Session) error
	Refresh(ctx context.Context, refreshToken string) (*auth.Session, error)
	ResendVerification(ctx context.Context, email string) error
	ConfirmEmail(ctx context.Context, code string) (*auth.Session, error)
}

type authCommandsImpl struct {
	provider shared.IdentityProvider
	accessor *session.Accessor
}

func NewAuthCommands(provider shared.IdentityProvider, accessor *session.Accessor) AuthCommands {
	return &authCommandsImpl{
		provider: provider,
		accessor: accessor,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, in shared.SignUpInput) (*auth.Identity, error) {
	identity, err := a.provider.SignUp(ctx, in)
	if err != nil {
		return nil, err
	}
	a.accessor.Publish(session.Event{Kind: session.EventSignedUp, UserID: identity.UserID})
	return identity, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	s, err := a.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.accessor.Publish(session.Event{Kind: session.EventSignedIn, UserID: s.UserID()})
	return s, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, s *auth.Session) error {
	if s == nil {
		return nil
	}
	if err := a.provider.SignOut(ctx, s); err != nil {
		return err
	}
	a.accessor.Publish(session.Event{Kind: session.EventSignedOut, UserID: s.UserID()})
	return nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*auth.Session, error) {
	s, err := a.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	a.accessor.Publish(session.Event{Kind: session.EventTokenRefreshed, UserID: s.UserID()})
	return s, nil
}

func (a *authCommandsImpl) ResendVerification(ctx context.Context, email string) error {
	return a.provider.ResendVerification(ctx, email)
}

func (a *authCommandsImpl) ConfirmEmail(ctx context.Context, code string) (*auth.Session, error) {
	s, err := a.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	a.accessor.Publish(session.Event{Kind: session.EventEmailConfirmed, UserID: s.UserID()})
	a.accessor.Publish(session.Event{Kind: session.EventSignedIn, UserID: s.UserID()})
	return s, nil
}
