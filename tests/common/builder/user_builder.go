//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Gender       string
	Verified     bool
	Token        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
		Phone:        "+33 6 00 00 00 00",
		Gender:       "Autre",
		Verified:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	profile, err := user.NewProfile(u.FirstName, u.LastName, u.Phone, u.Gender)
	if err != nil {
		return nil, err
	}

	var verifiedAt *time.Time
	var token *string
	if u.Verified {
		now := time.Now()
		verifiedAt = &now
	} else {
		t := u.Token
		token = &t
	}

	now := time.Now()
	return user.Reconstruct(u.ID, email, u.PasswordHash, profile, verifiedAt, token, nil, now, now), nil
}

func (u *UserBuilder) BuildInfra() dbq.Users {
	now := time.Now()
	row := dbq.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Gender:       u.Gender,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
	if u.Verified {
		row.EmailVerifiedAt = pgtype.Timestamptz{Time: now, Valid: true}
	} else {
		row.VerificationToken = pgtype.Text{String: u.Token, Valid: true}
	}
	return row
}

func (u *UserBuilder) BuildIdentity() auth.Identity {
	return auth.Identity{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Gender:    u.Gender,
	}
}

func (u *UserBuilder) BuildSession() *auth.Session {
	return &auth.Session{
		Identity:    u.BuildIdentity(),
		AccessToken: "access-" + u.ID.String(),
		TokenID:     uuid.NewString(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithGender(gender string) *UserBuilder {
	u.Gender = gender
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsUnverified() *UserBuilder {
	u.Verified = false
	if u.Token == "" {
		u.Token = "verify-" + u.ID.String()
	}
	return u
}
