package middleware

import (
	"strings"

	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTMiddleware checks for a valid bearer token and stores the account id under "userId".
func JWTMiddleware(issuer *utils.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the token from the Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}
		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		userID, err := claims.UserID()
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// UserID returns the account id stored by JWTMiddleware, or 0.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userId").(uint)
	return id
}
