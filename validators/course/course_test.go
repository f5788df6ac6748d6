package courseValidator

import (
	"net/http/httptest"
	"testing"

	courseService "coursehub/services/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, query string) courseService.CourseListRequest {
	t.Helper()

	var got courseService.CourseListRequest
	app := fiber.New(fiber.Config{EnableSplittingOnParsers: true})
	app.Get("/courses", CourseList(10, 50), func(c *fiber.Ctx) error {
		got = c.Locals("validatedCourseQuery").(courseService.CourseListRequest)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return got
}

func TestCourseList_Defaults(t *testing.T) {
	req := bind(t, "")

	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Nil(t, req.CategoryID)
	assert.Nil(t, req.MinPrice)
	assert.Empty(t, req.Category)
}

func TestCourseList_MalformedScalarsAreDropped(t *testing.T) {
	req := bind(t, "?page=-4&pageSize=zero&categoryId=web&minPrice=&maxPrice=10.5&language=%20%20")

	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Nil(t, req.CategoryID)
	assert.Nil(t, req.MinPrice)
	require.NotNil(t, req.MaxPrice)
	assert.Equal(t, 10.5, *req.MaxPrice)
	assert.Equal(t, "", req.Language)
}

func TestCourseList_PageSizeCapped(t *testing.T) {
	assert.Equal(t, 50, bind(t, "?pageSize=1000").PageSize)
	assert.Equal(t, 10, bind(t, "?pageSize=0").PageSize)
	assert.Equal(t, 7, bind(t, "?pageSize=7").PageSize)
}

func TestCourseList_MultiValues(t *testing.T) {
	req := bind(t, "?category=1,2&category=3&ratings=4.5&duration=short,%20long&levelFilter=BEGINNER&categoryId=4&sortBy=price&sortDirection=asc")

	assert.Equal(t, []string{"1", "2", "3"}, req.Category)
	assert.Equal(t, []string{"4.5"}, req.Ratings)
	assert.Equal(t, []string{"short", "long"}, req.Duration)
	assert.Equal(t, []string{"BEGINNER"}, req.LevelFilter)
	require.NotNil(t, req.CategoryID)
	assert.Equal(t, uint(4), *req.CategoryID)
	assert.Equal(t, "price", req.SortBy)
	assert.Equal(t, "asc", req.SortDirection)
}

func TestCourseDetail_RejectsBadIDs(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:id", CourseDetail(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for path, want := range map[string]int{
		"/courses/12":  fiber.StatusNoContent,
		"/courses/0":   fiber.StatusUnprocessableEntity,
		"/courses/-1":  fiber.StatusUnprocessableEntity,
		"/courses/abc": fiber.StatusUnprocessableEntity,
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
