package authController

import (
	"time"

	"coursehub/models"
	authService "coursehub/services/auth"
)

// UserDTO is the public view of an account, shared by the auth and catalog payloads.
type UserDTO struct {
	ID              uint    `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type AuthResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         UserDTO   `json:"user"`
}

func ToUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func toAuthResponse(res *authService.AuthResult) AuthResponse {
	return AuthResponse{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.ExpiresAt,
		User:         ToUserDTO(res.User),
	}
}
