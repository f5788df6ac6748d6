package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// User is a marketplace account. Accounts are deactivated, never hard-deleted.
type User struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Email           string          `json:"email" gorm:"size:256;uniqueIndex;not null"`
	PasswordHash    string          `json:"-" gorm:"not null"`
	FirstName       string          `json:"firstName" gorm:"size:50;not null"`
	LastName        string          `json:"lastName" gorm:"size:50;not null"`
	ProfileImageURL *string         `json:"profileImageUrl" gorm:"size:500"`
	DateOfBirth     *datatypes.Date `json:"dateOfBirth"`
	Bio             *string         `json:"bio" gorm:"size:1000"`
	IsActive        bool            `json:"isActive" gorm:"not null"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// DisplayName joins first and last name.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
