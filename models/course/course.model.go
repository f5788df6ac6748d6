package course

import (
	"time"

	"coursehub/models"
)

// Course levels
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
	LevelAllLevels    = "ALL_LEVELS"
)

// Levels lists the known course levels in display order.
var Levels = []string{LevelAllLevels, LevelBeginner, LevelIntermediate, LevelAdvanced}

// Course represents a marketplace course. Only published courses are visible to clients.
type Course struct {
	ID               uint     `gorm:"primaryKey"`
	Title            string   `gorm:"size:200;index;not null"`
	Description      string   `gorm:"size:2000"`
	ShortDescription string   `gorm:"size:500"`
	ImageURL         *string  `gorm:"size:500"`
	VideoURL         *string  `gorm:"size:500"`
	Price            float64  `gorm:"type:decimal(18,2);not null"`
	DiscountPrice    *float64 `gorm:"type:decimal(18,2)"`
	Duration         int      // in minutes
	Level            string   `gorm:"size:20;index;not null"`
	Language         string   `gorm:"size:50;index;not null"`
	IsPublished      bool     `gorm:"index;not null"`
	IsFeatured       bool     `gorm:"index;not null"`
	Rating           float64
	ReviewCount      int
	EnrollmentCount  int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	CategoryID   uint `gorm:"index;not null"`
	Category     Category
	InstructorID *uint
	Instructor   *models.User

	Sections []CourseSection
	Reviews  []CourseReview
}
