package shared

//go:generate mockgen -source=identity.go -destination=../../../tests/mock/shared/identity.go -package=sharedmock

import (
	"context"

	"court-booking/internal/domain/auth"
)

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    string
}

// IdentityProvider authenticates members and issues sessions.
// Failures are reported with the errs.ErrAuthRequired family of sentinels.
type IdentityProvider interface {
	GetSession(ctx context.Context, accessToken string) (*auth.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error)
	SignUp(ctx context.Context, in SignUpInput) (*auth.Identity, error)
	SignOut(ctx context.Context, session *auth.Session) error
	ResendVerification(ctx context.Context, email string) error
	ExchangeCode(ctx context.Context, code string) (*auth.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Session, error)
}
