package converter

import (
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/dbq"
	"court-booking/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) dbq.CreateUserParams {
	p := u.Profile()
	return dbq.CreateUserParams{
		ID:                u.ID(),
		Email:             u.Email().Value(),
		PasswordHash:      u.PasswordHash(),
		FirstName:         p.FirstName(),
		LastName:          p.LastName(),
		Phone:             p.Phone(),
		Gender:            p.Gender().String(),
		VerificationToken: pgconv.StringPtrToPgtype(u.VerificationToken()),
	}
}

func UserToDomain(row dbq.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(
		row.ID,
		email,
		row.PasswordHash,
		user.ReconstructProfile(row.FirstName, row.LastName, row.Phone, user.Gender(row.Gender)),
		pgconv.TimePtrFromPgtype(row.EmailVerifiedAt),
		pgconv.StringPtrFromPgtype(row.VerificationToken),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
	), nil
}
