package courseController

import (
	"coursehub/middleware"
	"coursehub/models"
	courseService "coursehub/services/course"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	courses *courseService.Service
	log     *logrus.Logger
}

func New(courses *courseService.Service, log *logrus.Logger) *Controller {
	return &Controller{courses: courses, log: log}
}

// GetCourses lists published courses. Expects the query bound by courseValidator.CourseList.
func (ctl *Controller) GetCourses(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedCourseQuery").(courseService.CourseListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	page, err := ctl.courses.GetCourses(c.UserContext(), req)
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	dtoPage := models.MapPage(page, ToCourseDTO)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", NewPagedResponse(dtoPage))
}

func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	id, ok := c.Locals("validatedCourseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	detail, err := ctl.courses.GetCourseByID(c.UserContext(), id)
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", ToCourseDetailDTO(*detail))
}

func (ctl *Controller) GetFeaturedCourses(c *fiber.Ctx) error {
	courses, err := ctl.courses.GetFeaturedCourses(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully.", ToCourseDTOs(courses))
}

func (ctl *Controller) GetCategories(c *fiber.Ctx) error {
	categories, err := ctl.courses.GetCategories(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", ToCategoryDTOs(categories))
}

// GetFilters returns the facet metadata used by the course listing page.
func (ctl *Controller) GetFilters(c *fiber.Ctx) error {
	filters, err := ctl.courses.GetFilters(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Filters fetched successfully.", filters)
}
