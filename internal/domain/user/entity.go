package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a club member able to sign in and book courts.
type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	profile           Profile
	emailVerifiedAt   *time.Time
	verificationToken *string
	lastLogin         *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser creates an unverified member holding the given confirmation token.
func NewUser(email Email, passwordHash string, profile Profile, verificationToken string) *User {
	return &User{
		id:                uuid.New(),
		email:             email,
		passwordHash:      passwordHash,
		profile:           profile,
		verificationToken: &verificationToken,
	}
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash string,
	profile Profile,
	emailVerifiedAt *time.Time,
	verificationToken *string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                id,
		email:             email,
		passwordHash:      passwordHash,
		profile:           profile,
		emailVerifiedAt:   emailVerifiedAt,
		verificationToken: verificationToken,
		lastLogin:         lastLogin,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Profile() Profile            { return u.profile }
func (u *User) EmailVerifiedAt() *time.Time { return u.emailVerifiedAt }
func (u *User) VerificationToken() *string  { return u.verificationToken }
func (u *User) LastLogin() *time.Time       { return u.lastLogin }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
func (u *User) IsEmailVerified() bool       { return u.emailVerifiedAt != nil }

func (u *User) DisplayName() string {
	return DisplayName(u.profile.firstName, u.profile.lastName, u.email.value)
}

// ConfirmEmail marks the address verified and consumes the token.
func (u *User) ConfirmEmail(at time.Time) {
	u.emailVerifiedAt = &at
	u.verificationToken = nil
}

func (u *User) RotateVerificationToken(token string) {
	u.verificationToken = &token
}
