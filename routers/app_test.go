package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type pagedCourses struct {
	Data []struct {
		ID              uint   `json:"id"`
		Title           string `json:"title"`
		Duration        int    `json:"duration"`
		EnrollmentCount int    `json:"enrollmentCount"`
		Category        struct {
			ID uint `json:"id"`
		} `json:"category"`
	} `json:"data"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.SeedData(context.Background(), db, bcrypt.MinCost, log))

	cfg := &config.Config{
		JWTKey:          "test-secret",
		JWTIssuer:       "coursehub",
		JWTAudience:     "coursehub-clients",
		TokenTTLDays:    7,
		SaltRound:       bcrypt.MinCost,
		DefaultPageSize: 10,
		MaxPageSize:     50,
	}
	return &testEnv{app: NewApp(cfg, db, log), db: db}
}

func (e *testEnv) do(t *testing.T, method, target string, body interface{}, token string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (e *testEnv) publishedCount(t *testing.T) int {
	var n int64
	require.NoError(t, e.db.Model(&course.Course{}).Where("is_published = ?", true).Count(&n).Error)
	return int(n)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListCourses_DefaultsAndPaging(t *testing.T) {
	env := newTestEnv(t)
	published := env.publishedCount(t)
	require.Greater(t, published, 10)

	status, body := env.do(t, http.MethodGet, "/api/v1/courses", nil, "")
	require.Equal(t, http.StatusOK, status)

	var page pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, published, page.TotalCount)
	assert.Len(t, page.Data, 10)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPreviousPage)
	for i := 1; i < len(page.Data); i++ {
		assert.GreaterOrEqual(t, page.Data[i-1].EnrollmentCount, page.Data[i].EnrollmentCount)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/courses?page=1&pageSize=10", nil, "")
	require.Equal(t, http.StatusOK, status)
	var second pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &second))
	assert.Len(t, second.Data, published-10)
	assert.False(t, second.HasNextPage)
	assert.True(t, second.HasPreviousPage)
}

func TestListCourses_LenientQuery(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/courses?page=abc&pageSize=500&minPrice=cheap", nil, "")
	require.Equal(t, http.StatusOK, status)

	var page pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 50, page.PageSize)
	assert.Equal(t, env.publishedCount(t), page.TotalCount)
}

func TestListCourses_MultiSelectFilters(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/courses?duration=short&pageSize=50", nil, "")
	require.Equal(t, http.StatusOK, status)
	var short pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &short))
	for _, c := range short.Data {
		assert.LessOrEqual(t, c.Duration, 60)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/courses?category=1,2&pageSize=50", nil, "")
	require.Equal(t, http.StatusOK, status)
	var split pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &split))

	status, body = env.do(t, http.MethodGet, "/api/v1/courses?category=1&category=2&pageSize=50", nil, "")
	require.Equal(t, http.StatusOK, status)
	var repeated pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &repeated))

	assert.Equal(t, repeated.TotalCount, split.TotalCount)
	require.NotEmpty(t, split.Data)
	for _, c := range split.Data {
		assert.Contains(t, []uint{1, 2}, c.Category.ID)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/courses?categoryId=1&category=2", nil, "")
	require.Equal(t, http.StatusOK, status)
	var disjoint pagedCourses
	require.NoError(t, json.Unmarshal(body.Data, &disjoint))
	assert.Empty(t, disjoint.Data)
	assert.Equal(t, 0, disjoint.TotalCount)
}

func TestCourseDetail(t *testing.T) {
	env := newTestEnv(t)

	var first course.Course
	require.NoError(t, env.db.Where("is_published = ?", true).Order("id").First(&first).Error)

	status, body := env.do(t, http.MethodGet, "/api/v1/courses/"+strconv.FormatUint(uint64(first.ID), 10), nil, "")
	require.Equal(t, http.StatusOK, status)

	var detail struct {
		ID       uint `json:"id"`
		Sections []struct {
			Order   int `json:"order"`
			Lessons []struct {
				Resources []json.RawMessage `json:"resources"`
			} `json:"lessons"`
		} `json:"sections"`
		Reviews []json.RawMessage `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, first.ID, detail.ID)
	require.Len(t, detail.Sections, 3)
	for i, s := range detail.Sections {
		assert.Equal(t, i+1, s.Order)
		assert.Len(t, s.Lessons, 2)
	}
	assert.NotNil(t, detail.Reviews)

	status, body = env.do(t, http.MethodGet, "/api/v1/courses/99999", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body.Message)

	status, _ = env.do(t, http.MethodGet, "/api/v1/courses/abc", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCatalogMetadataRoutes(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/v1/courses/featured", "/api/v1/courses/categories", "/api/categories", "/api/v1/courses/filters"} {
		status, body := env.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, status, path)
		assert.True(t, body.Status, path)
	}

	_, body := env.do(t, http.MethodGet, "/api/categories", nil, "")
	var categories []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	assert.Len(t, categories, 5)
}

func TestAuthAndProfileFlow(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"email": "learner@example.com", "password": "short1", "confirmPassword": "short1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password must be at least 8 characters long", body.Message)

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"email": "not-an-email", "password": "longenough", "confirmPassword": "longenough",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"email": "Learner@Example.com", "password": "longenough", "confirmPassword": "longenough",
		"firstName": "Lin", "lastName": "Park",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	var registered struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &registered))
	assert.NotEmpty(t, registered.Token)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "learner@example.com", registered.User.Email)

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"email": "learner@example.com", "password": "longenough", "confirmPassword": "longenough",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/login", fiber.Map{"email": "learner@example.com", "password": "wrong-pass"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body.Message)

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/login", fiber.Map{"email": "learner@example.com", "password": "longenough"}, "")
	require.Equal(t, http.StatusOK, status)
	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &loggedIn))

	status, _ = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, loggedIn.Token)
	assert.Equal(t, http.StatusOK, status)

	status, body = env.do(t, http.MethodPut, "/api/v1/profile", fiber.Map{
		"firstName": "Lin", "lastName": "Park-Lee", "dateOfBirth": "1994-07-21", "bio": "Curious",
	}, loggedIn.Token)
	require.Equal(t, http.StatusOK, status)

	status, body = env.do(t, http.MethodGet, "/api/v1/profile", nil, loggedIn.Token)
	require.Equal(t, http.StatusOK, status)
	var profile struct {
		LastName    string  `json:"lastName"`
		DateOfBirth *string `json:"dateOfBirth"`
		Bio         *string `json:"bio"`
		UpdatedAt   *string `json:"updatedAt"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &profile))
	assert.Equal(t, "Park-Lee", profile.LastName)
	require.NotNil(t, profile.DateOfBirth)
	assert.Equal(t, "1994-07-21", *profile.DateOfBirth)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "Curious", *profile.Bio)
	assert.NotNil(t, profile.UpdatedAt)

	status, body = env.do(t, http.MethodPut, "/api/v1/profile", fiber.Map{"dateOfBirth": "next tuesday"}, loggedIn.Token)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.True(t, strings.Contains(string(body.Data), "dateOfBirth"))
}
