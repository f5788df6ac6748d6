package courseValidator

import (
	"strconv"
	"strings"

	"coursehub/middleware"
	courseService "coursehub/services/course"

	"github.com/gofiber/fiber/v2"
)

// courseListQuery binds every scalar as text so a malformed value is dropped
// instead of failing the whole request.
type courseListQuery struct {
	Page          string   `query:"page"`
	PageSize      string   `query:"pageSize"`
	Search        string   `query:"search"`
	CategoryID    string   `query:"categoryId"`
	Level         string   `query:"level"`
	Language      string   `query:"language"`
	MinPrice      string   `query:"minPrice"`
	MaxPrice      string   `query:"maxPrice"`
	SortBy        string   `query:"sortBy"`
	SortDirection string   `query:"sortDirection"`
	Category      []string `query:"category"`
	Ratings       []string `query:"ratings"`
	Duration      []string `query:"duration"`
	LevelFilter   []string `query:"levelFilter"`
}

// CourseList binds the listing query into a courseService.CourseListRequest.
// Page sizes outside 1..maxPageSize fall back to defaultPageSize or are capped.
func CourseList(defaultPageSize, maxPageSize int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		req := courseService.CourseListRequest{
			Page:          max(0, parseInt(reqData.Page, 0)),
			PageSize:      parseInt(reqData.PageSize, defaultPageSize),
			Search:        strings.TrimSpace(reqData.Search),
			Level:         strings.TrimSpace(reqData.Level),
			Language:      strings.TrimSpace(reqData.Language),
			MinPrice:      parseFloat(reqData.MinPrice),
			MaxPrice:      parseFloat(reqData.MaxPrice),
			SortBy:        strings.TrimSpace(reqData.SortBy),
			SortDirection: strings.TrimSpace(reqData.SortDirection),
			Category:      compact(reqData.Category),
			Ratings:       compact(reqData.Ratings),
			Duration:      compact(reqData.Duration),
			LevelFilter:   compact(reqData.LevelFilter),
		}
		if req.PageSize < 1 {
			req.PageSize = defaultPageSize
		}
		if req.PageSize > maxPageSize {
			req.PageSize = maxPageSize
		}
		if id, err := strconv.ParseUint(strings.TrimSpace(reqData.CategoryID), 10, 64); err == nil && id > 0 {
			categoryID := uint(id)
			req.CategoryID = &categoryID
		}

		c.Locals("validatedCourseQuery", req)
		return c.Next()
	}
}

// CourseDetail validates the :id route parameter.
func CourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Course id must be a positive integer!"})
		}

		c.Locals("validatedCourseId", uint(id))
		return c.Next()
	}
}

func parseInt(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// compact trims entries and drops empty ones.
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
