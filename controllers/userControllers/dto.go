package userController

import (
	"time"

	"coursehub/models"
)

type ProfileDTO struct {
	ID              uint       `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	ProfileImageURL *string    `json:"profileImageUrl"`
	DateOfBirth     *string    `json:"dateOfBirth"`
	Bio             *string    `json:"bio"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

func toProfileDTO(u models.User) ProfileDTO {
	dto := ProfileDTO{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		Bio:             u.Bio,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if u.DateOfBirth != nil {
		dob := time.Time(*u.DateOfBirth).Format(dateLayout)
		dto.DateOfBirth = &dob
	}
	return dto
}
