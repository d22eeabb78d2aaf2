package auth

import (
	"strings"
	"time"

	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Identity is what the rest of the system knows about a signed-in member.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Gender    string
}

func (i Identity) DisplayName() string {
	return user.DisplayName(i.FirstName, i.LastName, i.Email)
}

// Session is an authenticated member plus the tokens proving it.
type Session struct {
	Identity     Identity
	AccessToken  string
	RefreshToken string
	TokenID      string
	ExpiresAt    time.Time
}

func (s *Session) UserID() uuid.UUID {
	return s.Identity.UserID
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
