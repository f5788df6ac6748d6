package course

// CourseSection is an ordered chapter of a course.
type CourseSection struct {
	ID          uint   `gorm:"primaryKey"`
	CourseID    uint   `gorm:"index;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	OrderIndex  int    `gorm:"not null"`

	Lessons []CourseLesson `gorm:"foreignKey:SectionID"`
}

// CourseLesson is an ordered unit within a section.
type CourseLesson struct {
	ID          uint    `gorm:"primaryKey"`
	SectionID   uint    `gorm:"index;not null"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"size:1000"`
	VideoURL    *string `gorm:"size:500"`
	Content     *string `gorm:"type:text"`
	Duration    int     // in minutes
	OrderIndex  int     `gorm:"not null"`
	IsFree      bool

	Resources []CourseResource `gorm:"foreignKey:LessonID"`
}

// CourseResource is a downloadable attachment of a lesson.
type CourseResource struct {
	ID          uint   `gorm:"primaryKey"`
	LessonID    uint   `gorm:"index;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	FileURL     string `gorm:"size:500;not null"`
	FileType    string `gorm:"size:50"`
	FileSize    int64
	IsFree      bool
}
