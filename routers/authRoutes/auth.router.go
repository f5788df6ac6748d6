package authRoutes

import (
	authController "coursehub/controllers/auth"
	"coursehub/middleware"
	"coursehub/utils"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, issuer *utils.TokenIssuer, ctl *authController.Controller) {
	authGroup := app.Group("/api/v1/auth")

	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Post("/register", authValidator.Register(), ctl.Register)
	authGroup.Get("/me", middleware.JWTMiddleware(issuer), ctl.Me)
}
