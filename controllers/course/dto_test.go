package courseController

import (
	"encoding/json"
	"testing"
	"time"

	authController "coursehub/controllers/auth"
	"coursehub/models"
	"coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCourseDetailDTO_UsesAccountView(t *testing.T) {
	author := models.User{ID: 5, Email: "author@example.com", PasswordHash: "secret-hash", FirstName: "Alan", LastName: "Kay"}
	reviewer := models.User{ID: 9, Email: "reader@example.com", PasswordHash: "other-hash", FirstName: "Lin"}

	c := course.Course{
		ID:         1,
		Title:      "Go in Practice",
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:   course.Category{ID: 2, Name: "Programming"},
		Instructor: &author,
		Reviews:    []course.CourseReview{{ID: 3, Rating: 5, Comment: "Great", User: reviewer}},
	}

	dto := ToCourseDetailDTO(c)
	require.NotNil(t, dto.Instructor)
	assert.Equal(t, authController.ToUserDTO(author), *dto.Instructor)
	require.Len(t, dto.Reviews, 1)
	assert.Equal(t, authController.ToUserDTO(reviewer), dto.Reviews[0].User)
	assert.NotNil(t, dto.Sections)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.Contains(t, string(raw), `"instructor":{"id":5,"email":"author@example.com","firstName":"Alan","lastName":"Kay","profileImageUrl":null}`)
}

func TestToCourseDTO_WithoutInstructor(t *testing.T) {
	dto := ToCourseDTO(course.Course{ID: 1})
	assert.Nil(t, dto.Instructor)
}
