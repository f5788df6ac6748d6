package userController

import (
	"coursehub/middleware"
	profileService "coursehub/services/profile"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	profiles *profileService.Service
	log      *logrus.Logger
}

func New(profiles *profileService.Service, log *logrus.Logger) *Controller {
	return &Controller{profiles: profiles, log: log}
}

func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	user, err := ctl.profiles.GetProfile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", toProfileDTO(*user))
}

func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedProfile").(profileService.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctl.profiles.UpdateProfile(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", toProfileDTO(*user))
}
