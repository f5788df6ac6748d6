package routers

import (
	"time"

	"coursehub/config"
	authController "coursehub/controllers/auth"
	courseController "coursehub/controllers/course"
	userController "coursehub/controllers/userControllers"
	courseRepository "coursehub/repository/course"
	userRepository "coursehub/repository/user"
	authRoutes "coursehub/routers/authRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	userProfileRoutes "coursehub/routers/userRoutes"
	authService "coursehub/services/auth"
	courseService "coursehub/services/course"
	profileService "coursehub/services/profile"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and controllers onto a fiber app.
func NewApp(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *fiber.App {
	users := userRepository.New(db)
	courses := courseRepository.New(db)

	issuer := utils.NewTokenIssuer(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience, time.Duration(cfg.TokenTTLDays)*24*time.Hour)

	authSvc := authService.New(users, issuer, cfg.SaltRound, log)
	courseSvc := courseService.New(courses, log)
	profileSvc := profileService.New(users, log)

	app := fiber.New(fiber.Config{
		// category=1,2 binds like category=1&category=2
		EnableSplittingOnParsers: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${locals:requestid} ${method} ${path} ${status} ${latency}\n",
		Output: log.Writer(),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	courseCtl := courseController.New(courseSvc, log)
	authRoutes.SetupAuthRoutes(app, issuer, authController.New(authSvc, log))
	courseRoutes.SetupCourseRoutes(app, cfg, courseCtl)
	courseRoutes.SetupCategoryRoutes(app, courseCtl)
	userProfileRoutes.SetupUserRoutes(app, issuer, userController.New(profileSvc, log))

	return app
}
