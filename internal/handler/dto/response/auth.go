package response

import (
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone,omitempty"`
	Gender      string    `json:"gender"`
	DisplayName string    `json:"display_name"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type SignUpResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromCurrentUserView(v *queries.CurrentUserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

// FromIdentity copies the profile fields and the DisplayName method result.
func FromIdentity(identity auth.Identity) (UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, identity); err != nil {
		return UserResponse{}, err
	}
	res.ID = identity.UserID
	return res, nil
}

func FromSession(s *auth.Session) (*SessionResponse, error) {
	u, err := FromIdentity(s.Identity)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
		User:        u,
	}, nil
}
