package authController

import (
	"coursehub/middleware"
	authService "coursehub/services/auth"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	auth *authService.Service
	log  *logrus.Logger
}

func New(auth *authService.Service, log *logrus.Logger) *Controller {
	return &Controller{auth: auth, log: log}
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	res, err := ctl.auth.Login(c.UserContext(), reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", toAuthResponse(res))
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	res, err := ctl.auth.Register(c.UserContext(), authService.RegisterRequest{
		Email:           reqData.Email,
		Password:        reqData.Password,
		ConfirmPassword: reqData.ConfirmPassword,
		FirstName:       reqData.FirstName,
		LastName:        reqData.LastName,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", toAuthResponse(res))
}

// Me returns the account behind the bearer token.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	user, err := ctl.auth.GetCurrentUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err, ctl.log)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", ToUserDTO(*user))
}
