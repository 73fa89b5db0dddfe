package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/modaalghoul/certifier/configs"
	"github.com/modaalghoul/certifier/database"
	"github.com/modaalghoul/certifier/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role := claims["role"].(string)

		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

// PasswordChangeRequired blocks students who still carry a pending
// mandatory credential reset. They can only hit the password-change
// endpoint until the flag clears.
func PasswordChangeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		userID := claims["user_id"].(string)

		var student models.Student
		if err := database.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
			// Not a student account, nothing to enforce.
			return c.Next()
		}

		if student.RequirePasswordChange {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Password change required before continuing",
			})
		}
		return c.Next()
	}
}
