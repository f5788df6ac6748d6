package userValidator

import (
	"strings"
	"time"

	"coursehub/middleware"
	profileService "coursehub/services/profile"
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

type updateProfileBody struct {
	FirstName       string  `json:"firstName" validate:"max=50"`
	LastName        string  `json:"lastName" validate:"max=50"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url,max=500"`
	DateOfBirth     *string `json:"dateOfBirth"`
	Bio             *string `json:"bio" validate:"omitempty,max=1000"`
}

// dateParser only knows layouts with a date part, so time-only input such as "13:00"
// is rejected instead of landing on today's date.
var dateParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats:  []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05", "2006-01-02T15:04:05"},
}

// UpdateProfile validates the profile body. dateOfBirth accepts "2006-01-02", optionally
// followed by a time, and must not be in the future.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateProfileBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		req := profileService.UpdateProfileRequest{
			FirstName:       strings.TrimSpace(reqData.FirstName),
			LastName:        strings.TrimSpace(reqData.LastName),
			ProfileImageURL: reqData.ProfileImageURL,
			Bio:             reqData.Bio,
		}

		if reqData.DateOfBirth != nil && strings.TrimSpace(*reqData.DateOfBirth) != "" {
			dob, err := dateParser.Parse(strings.TrimSpace(*reqData.DateOfBirth))
			if err != nil {
				errors["dateOfBirth"] = "Invalid date of birth!"
			} else if dob.After(time.Now()) {
				errors["dateOfBirth"] = "Date of birth cannot be in the future!"
			} else {
				dob = now.With(dob).BeginningOfDay()
				req.DateOfBirth = &dob
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", req)
		return c.Next()
	}
}
