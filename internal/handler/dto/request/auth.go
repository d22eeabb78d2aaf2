package request

import (
	"strings"

	"court-booking/internal/usecase/shared"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"max=30"`
	Gender    string `json:"gender" binding:"required,oneof=M F Autre"`
}

func (r *SignUpRequest) ToInput() shared.SignUpInput {
	return shared.SignUpInput{
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Phone:     strings.TrimSpace(r.Phone),
		Gender:    r.Gender,
	}
}

// RefreshRequest is optional: the refresh token cookie is used when the body omits it.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}
