package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"coursehub/models"
	"coursehub/models/course"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type courseTemplate struct {
	title    string
	summary  string
	duration int // minutes
}

var seedCatalog = map[string][]courseTemplate{
	"Web Development": {
		{"Complete Web Development Bootcamp", "Full-stack web development from scratch", 1200},
		{"Advanced CSS and Sass", "Master modern CSS including Flexbox, Grid, Sass", 600},
		{"TypeScript Fundamentals", "Learn TypeScript for modern development", 45},
		{"Tailwind CSS Mastery", "Utility-first CSS framework course", 150},
		{"REST API Design Best Practices", "Design scalable RESTful APIs", 300},
	},
	"Programming": {
		{"Go Programming Language", "Modern systems programming with Go", 1800},
		{"Python Complete Course", "From basics to advanced Python", 240},
		{"Shell Scripting Mastery", "Bash and shell automation", 55},
		{"Rust Programming Course", "Safe and concurrent programming", 420},
	},
	"Mobile Development": {
		{"Flutter from Zero", "Cross-platform apps with Flutter", 360},
		{"SwiftUI Essentials", "Declarative iOS interfaces", 90},
	},
	"Data Science": {
		{"Data Analysis with Pandas", "Clean, reshape and explore data", 200},
		{"Machine Learning Foundations", "Supervised and unsupervised learning", 720},
	},
	"Business": {
		{"Product Management 101", "Ship products customers love", 60},
		{"Startup Finance Basics", "Runway, burn and unit economics", 120},
	},
}

// categoryOrder keeps seeding deterministic despite map iteration order.
var categoryOrder = []string{"Web Development", "Programming", "Mobile Development", "Data Science", "Business"}

// SeedData fills an empty catalog with sample categories, an instructor and courses.
// It is a no-op when any course already exists.
func SeedData(ctx context.Context, db *gorm.DB, saltRound int, log *logrus.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&course.Course{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if count > 0 {
		log.Info("Database already contains courses. Skipping seed.")
		return nil
	}

	log.Info("Seeding course data...")

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := ensureCategories(tx)
		if err != nil {
			return err
		}

		instructor, err := ensureInstructor(tx, saltRound)
		if err != nil {
			return err
		}

		courses := buildCourses(categories, instructor.ID)
		if err := tx.Create(&courses).Error; err != nil {
			return fmt.Errorf("failed to seed courses: %w", err)
		}

		log.WithField("count", len(courses)).Info("Successfully seeded courses")
		return nil
	})
}

func ensureCategories(tx *gorm.DB) (map[string]course.Category, error) {
	categories := make(map[string]course.Category, len(categoryOrder))
	for _, name := range categoryOrder {
		category := course.Category{Name: name, Description: name + " courses", IsActive: true}
		if err := tx.Where(course.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		categories[name] = category
	}
	return categories, nil
}

func ensureInstructor(tx *gorm.DB, saltRound int) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Instructor#2024"), saltRound)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash instructor password: %w", err)
	}

	instructor := models.User{
		Email:        "instructor@coursehub.local",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Instructor",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := tx.Where(models.User{Email: instructor.Email}).FirstOrCreate(&instructor).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to seed instructor: %w", err)
	}
	return instructor, nil
}

func buildCourses(categories map[string]course.Category, instructorID uint) []course.Course {
	rng := rand.New(rand.NewSource(42))
	languages := []string{"English", "English", "Spanish", "German"}
	created := time.Now().UTC().AddDate(0, -6, 0)

	var courses []course.Course
	for _, name := range categoryOrder {
		for i, tpl := range seedCatalog[name] {
			price := float64(rng.Intn(18)*10) + 9.99
			if rng.Intn(6) == 0 {
				price = 0
			}
			instructor := instructorID
			created = created.Add(time.Duration(rng.Intn(72)+1) * time.Hour)

			courses = append(courses, course.Course{
				Title:            tpl.title,
				Description:      tpl.summary + ". Hands-on lessons, quizzes and projects.",
				ShortDescription: tpl.summary,
				Price:            price,
				Duration:         tpl.duration,
				Level:            course.Levels[rng.Intn(len(course.Levels))],
				Language:         languages[rng.Intn(len(languages))],
				IsPublished:      rng.Intn(10) != 0,
				IsFeatured:       i == 0,
				Rating:           float64(30+rng.Intn(21)) / 10,
				ReviewCount:      rng.Intn(2000),
				EnrollmentCount:  rng.Intn(50000),
				CreatedAt:        created,
				CategoryID:       categories[name].ID,
				InstructorID:     &instructor,
				Sections:         buildSections(tpl),
			})
		}
	}
	return courses
}

func buildSections(tpl courseTemplate) []course.CourseSection {
	titles := []string{"Getting Started", "Core Concepts", "Final Project"}
	perSection := tpl.duration / len(titles)

	sections := make([]course.CourseSection, 0, len(titles))
	for i, title := range titles {
		sections = append(sections, course.CourseSection{
			Title:       title,
			Description: fmt.Sprintf("%s: %s", tpl.title, title),
			OrderIndex:  i + 1,
			Lessons: []course.CourseLesson{
				{
					Title:      title + " - Overview",
					Duration:   perSection / 2,
					OrderIndex: 1,
					IsFree:     i == 0,
				},
				{
					Title:      title + " - Walkthrough",
					Duration:   perSection - perSection/2,
					OrderIndex: 2,
					Resources: []course.CourseResource{
						{Title: "Slides", FileURL: "/static/slides.pdf", FileType: "pdf", FileSize: 1 << 20},
					},
				},
			},
		})
	}
	return sections
}
