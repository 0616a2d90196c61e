package response

import (
	"time"

	"accverse/internal/data/entity"
)

type RegisterResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// GoogleAuthResponse is returned by the federated sign-in endpoint. When
// RegistrationRequired is set, no account exists yet and the client must
// call the complete-registration endpoint with the missing profile fields.
type GoogleAuthResponse struct {
	RegistrationRequired bool   `json:"registration_required"`
	SubjectID            string `json:"subject_id,omitempty"`
	Email                string `json:"email,omitempty"`
	Name                 string `json:"name,omitempty"`

	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      UserToResponse(user),
	}
}
