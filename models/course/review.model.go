package course

import (
	"time"

	"coursehub/models"
)

type CourseReview struct {
	ID        uint   `gorm:"primaryKey"`
	CourseID  uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1-5
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time

	User models.User
}
