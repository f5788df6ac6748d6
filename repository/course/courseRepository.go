package courseRepository

import (
	"context"
	"errors"
	"fmt"

	"coursehub/models/course"

	"gorm.io/gorm"
)

// Repo is the course store.
type Repo interface {
	List(ctx context.Context, spec Spec) ([]course.Course, error)
	First(ctx context.Context, spec Spec) (*course.Course, error)
	ListAll(ctx context.Context) ([]course.Course, error)
	ListCategories(ctx context.Context) ([]course.Category, error)
}

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, spec Spec) ([]course.Course, error) {
	var courses []course.Course
	if err := r.db.WithContext(ctx).Scopes(spec.Scope).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// First returns (nil, nil) when nothing matches.
func (r *repo) First(ctx context.Context, spec Spec) (*course.Course, error) {
	var c course.Course
	err := r.db.WithContext(ctx).Scopes(spec.Scope).Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return &c, nil
}

// ListAll reads every course row, published or not, without associations.
func (r *repo) ListAll(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := r.db.WithContext(ctx).Order("id asc").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list all courses: %w", err)
	}
	return courses, nil
}

func (r *repo) ListCategories(ctx context.Context) ([]course.Category, error) {
	var categories []course.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
