package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaalghoul/certifier/handlers"
	"github.com/modaalghoul/certifier/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.LoginUser)
	// Deliberately not behind PasswordChangeRequired: this is the one
	// endpoint a student with a pending reset may reach.
	auth.Post("/change-password", middleware.Protected(), handlers.ChangePassword)
}
