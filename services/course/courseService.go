package courseService

import (
	"context"

	"coursehub/apperror"
	"coursehub/models"
	"coursehub/models/course"
	courseRepository "coursehub/repository/course"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo courseRepository.Repo
	log  *logrus.Logger
}

func New(repo courseRepository.Repo, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetCourses runs the listing pipeline: base selection in the store, then the in-memory
// filters, a stable sort and pagination. TotalCount is taken after filtering.
func (s *Service) GetCourses(ctx context.Context, req CourseListRequest) (models.Page[course.Course], error) {
	spec := baseSpec(req)

	courses, err := s.repo.List(ctx, spec)
	if err != nil {
		return models.Page[course.Course]{}, apperror.NewUnexpected("Failed to fetch courses!", err)
	}

	courses = applyFilters(courses, req)
	sortCourses(courses, req.SortBy, req.SortDirection)

	page := max(0, req.Page)
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	s.log.WithFields(logrus.Fields{
		"spec":     spec.Kind,
		"matched":  len(courses),
		"page":     page,
		"pageSize": pageSize,
		"sortBy":   req.SortBy,
	}).Debug("courses listed")

	return models.Page[course.Course]{
		Data:       paginate(courses, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(courses),
	}, nil
}

// GetCourseByID returns a published course with sections, lessons, resources and reviews.
func (s *Service) GetCourseByID(ctx context.Context, id uint) (*course.Course, error) {
	c, err := s.repo.First(ctx, courseRepository.ByIDDetail(id))
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch course!", err)
	}
	if c == nil {
		return nil, apperror.NewNotFound("Course not found")
	}
	return c, nil
}

// GetFeaturedCourses lists published featured courses, newest first.
func (s *Service) GetFeaturedCourses(ctx context.Context) ([]course.Course, error) {
	courses, err := s.repo.List(ctx, courseRepository.Featured())
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch featured courses!", err)
	}
	return courses, nil
}

// GetCategories lists the active categories.
func (s *Service) GetCategories(ctx context.Context) ([]course.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch categories!", err)
	}
	active := make([]course.Category, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}
