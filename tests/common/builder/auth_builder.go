//go:build unit || e2e

package builder

import (
	reqdto "court-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+33 6 00 00 00 00",
		Gender:    "Autre",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignUpDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Gender:    a.Gender,
	}
}
