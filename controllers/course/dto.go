package courseController

import (
	"time"

	authController "coursehub/controllers/auth"
	"coursehub/models"
	"coursehub/models/course"
)

type CategoryDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type CourseDTO struct {
	ID               uint                    `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	ShortDescription string                  `json:"shortDescription"`
	ImageURL         *string                 `json:"imageUrl"`
	VideoURL         *string                 `json:"videoUrl"`
	Price            float64                 `json:"price"`
	DiscountPrice    *float64                `json:"discountPrice"`
	Duration         int                     `json:"duration"`
	Level            string                  `json:"level"`
	Language         string                  `json:"language"`
	IsFeatured       bool                    `json:"isFeatured"`
	Rating           float64                 `json:"rating"`
	ReviewCount      int                     `json:"reviewCount"`
	EnrollmentCount  int                     `json:"enrollmentCount"`
	CreatedAt        time.Time               `json:"createdAt"`
	Category         CategoryDTO             `json:"category"`
	Instructor       *authController.UserDTO `json:"instructor"`
}

type CourseDetailDTO struct {
	CourseDTO
	Sections []SectionDTO `json:"sections"`
	Reviews  []ReviewDTO  `json:"reviews"`
}

type SectionDTO struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Order       int         `json:"order"`
	Lessons     []LessonDTO `json:"lessons"`
}

type LessonDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	VideoURL    *string       `json:"videoUrl"`
	Content     *string       `json:"content"`
	Duration    int           `json:"duration"`
	Order       int           `json:"order"`
	IsFree      bool          `json:"isFree"`
	Resources   []ResourceDTO `json:"resources"`
}

type ResourceDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
	IsFree      bool   `json:"isFree"`
}

type ReviewDTO struct {
	ID        uint                   `json:"id"`
	Rating    int                    `json:"rating"`
	Comment   string                 `json:"comment"`
	CreatedAt time.Time              `json:"createdAt"`
	User      authController.UserDTO `json:"user"`
}

// PagedResponse is the listing payload; the derived fields are computed from the page.
type PagedResponse[T any] struct {
	Data            []T  `json:"data"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPagedResponse[T any](p models.Page[T]) PagedResponse[T] {
	data := p.Data
	if data == nil {
		data = []T{}
	}
	return PagedResponse[T]{
		Data:            data,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalCount:      p.TotalCount,
		TotalPages:      p.TotalPages(),
		HasNextPage:     p.HasNextPage(),
		HasPreviousPage: p.HasPreviousPage(),
	}
}

func ToCategoryDTO(c course.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description, ImageURL: c.ImageURL}
}

func ToCategoryDTOs(categories []course.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryDTO(c))
	}
	return out
}

func ToCourseDTO(c course.Course) CourseDTO {
	dto := CourseDTO{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		ImageURL:         c.ImageURL,
		VideoURL:         c.VideoURL,
		Price:            c.Price,
		DiscountPrice:    c.DiscountPrice,
		Duration:         c.Duration,
		Level:            c.Level,
		Language:         c.Language,
		IsFeatured:       c.IsFeatured,
		Rating:           c.Rating,
		ReviewCount:      c.ReviewCount,
		EnrollmentCount:  c.EnrollmentCount,
		CreatedAt:        c.CreatedAt,
		Category:         ToCategoryDTO(c.Category),
	}
	if c.Instructor != nil {
		instructor := authController.ToUserDTO(*c.Instructor)
		dto.Instructor = &instructor
	}
	return dto
}

func ToCourseDTOs(courses []course.Course) []CourseDTO {
	out := make([]CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, ToCourseDTO(c))
	}
	return out
}

func ToCourseDetailDTO(c course.Course) CourseDetailDTO {
	detail := CourseDetailDTO{
		CourseDTO: ToCourseDTO(c),
		Sections:  make([]SectionDTO, 0, len(c.Sections)),
		Reviews:   make([]ReviewDTO, 0, len(c.Reviews)),
	}
	for _, s := range c.Sections {
		section := SectionDTO{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Order:       s.OrderIndex,
			Lessons:     make([]LessonDTO, 0, len(s.Lessons)),
		}
		for _, l := range s.Lessons {
			lesson := LessonDTO{
				ID:          l.ID,
				Title:       l.Title,
				Description: l.Description,
				VideoURL:    l.VideoURL,
				Content:     l.Content,
				Duration:    l.Duration,
				Order:       l.OrderIndex,
				IsFree:      l.IsFree,
				Resources:   make([]ResourceDTO, 0, len(l.Resources)),
			}
			for _, r := range l.Resources {
				lesson.Resources = append(lesson.Resources, ResourceDTO{
					ID:          r.ID,
					Title:       r.Title,
					Description: r.Description,
					FileURL:     r.FileURL,
					FileType:    r.FileType,
					FileSize:    r.FileSize,
					IsFree:      r.IsFree,
				})
			}
			section.Lessons = append(section.Lessons, lesson)
		}
		detail.Sections = append(detail.Sections, section)
	}
	for _, r := range c.Reviews {
		detail.Reviews = append(detail.Reviews, ReviewDTO{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			User:      authController.ToUserDTO(r.User),
		})
	}
	return detail
}
