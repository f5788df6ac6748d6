package course

// Category groups courses. Static reference data.
type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string  `json:"description" gorm:"size:500"`
	ImageURL    *string `json:"imageUrl" gorm:"size:500"`
	IsActive    bool    `json:"isActive" gorm:"not null"`
}
