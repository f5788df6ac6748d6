package courseRoutes

import (
	"coursehub/config"
	courseController "coursehub/controllers/course"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the public catalog routes.
func SetupCourseRoutes(app *fiber.App, cfg *config.Config, ctl *courseController.Controller) {
	courseGroup := app.Group("/api/v1/courses")

	courseGroup.Get("/", courseValidator.CourseList(cfg.DefaultPageSize, cfg.MaxPageSize), ctl.GetCourses)
	// static paths before /:id
	courseGroup.Get("/featured", ctl.GetFeaturedCourses)
	courseGroup.Get("/categories", ctl.GetCategories)
	courseGroup.Get("/filters", ctl.GetFilters)
	courseGroup.Get("/:id", courseValidator.CourseDetail(), ctl.GetCourseDetails)
}

// SetupCategoryRoutes registers the standalone category listing.
func SetupCategoryRoutes(app *fiber.App, ctl *courseController.Controller) {
	app.Group("/api/categories").Get("/", ctl.GetCategories)
}
