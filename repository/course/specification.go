package courseRepository

import (
	"strings"

	"coursehub/models/course"

	"gorm.io/gorm"
)

type SpecKind int

const (
	KindAll SpecKind = iota
	KindBySearch
	KindByCategory
	KindByLevel
	KindByIDDetail
	KindFeatured
)

// Spec is a composable description of a course query: predicate, includes and ordering.
// Every kind only ever selects published courses.
type Spec struct {
	Kind       SpecKind
	Search     string
	CategoryID uint
	Level      string
	ID         uint
}

func All() Spec                      { return Spec{Kind: KindAll} }
func BySearch(term string) Spec      { return Spec{Kind: KindBySearch, Search: term} }
func ByCategory(categoryID uint) Spec { return Spec{Kind: KindByCategory, CategoryID: categoryID} }
func ByLevel(level string) Spec      { return Spec{Kind: KindByLevel, Level: level} }
func ByIDDetail(id uint) Spec        { return Spec{Kind: KindByIDDetail, ID: id} }
func Featured() Spec                 { return Spec{Kind: KindFeatured} }

// Scope applies the spec to a gorm query.
func (s Spec) Scope(db *gorm.DB) *gorm.DB {
	q := db.Preload("Category").Preload("Instructor").Where("is_published = ?", true)

	switch s.Kind {
	case KindBySearch:
		like := "%" + escapeLike(strings.ToLower(s.Search)) + "%"
		q = q.Where(
			"(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(short_description) LIKE ? ESCAPE '!')",
			like, like, like,
		)
	case KindByCategory:
		q = q.Where("category_id = ?", s.CategoryID)
	case KindByLevel:
		q = q.Where("level = ?", s.Level)
	case KindByIDDetail:
		q = q.Where("id = ?", s.ID).
			Preload("Sections", orderBy("order_index asc, id asc")).
			Preload("Sections.Lessons", orderBy("order_index asc, id asc")).
			Preload("Sections.Lessons.Resources", orderBy("id asc")).
			Preload("Reviews", orderBy("created_at desc, id desc")).
			Preload("Reviews.User")
		return q
	case KindFeatured:
		return q.Where("is_featured = ?", true).Order("created_at desc").Order("id asc")
	}

	return q.Order("id asc")
}

// Matches is the in-memory form of the filter applied by Scope.
func (s Spec) Matches(c course.Course) bool {
	if !c.IsPublished {
		return false
	}

	switch s.Kind {
	case KindBySearch:
		term := strings.ToLower(s.Search)
		return strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			strings.Contains(strings.ToLower(c.ShortDescription), term)
	case KindByCategory:
		return c.CategoryID == s.CategoryID
	case KindByLevel:
		return c.Level == s.Level
	case KindByIDDetail:
		return c.ID == s.ID
	case KindFeatured:
		return c.IsFeatured
	}
	return true
}

func orderBy(order string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Order(order) }
}

// The search term is lowercased in Go and compared with LOWER(column). Postgres and MySQL
// fold non-ASCII letters in LOWER, SQLite's built-in LOWER folds ASCII only, so on SQLite a
// search for "éclairs" does not find "Éclairs" although Matches does.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string { return likeEscaper.Replace(s) }
