package userProfileRoutes

import (
	userController "coursehub/controllers/userControllers"
	"coursehub/middleware"
	"coursehub/utils"
	userValidator "coursehub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, issuer *utils.TokenIssuer, ctl *userController.Controller) {
	profileGroup := app.Group("/api/v1/profile", middleware.JWTMiddleware(issuer))

	profileGroup.Get("/", ctl.GetProfile)
	profileGroup.Put("/", userValidator.UpdateProfile(), ctl.UpdateProfile)
}
