package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaalghoul/certifier/handlers"
)

func PublicRoutes(app *fiber.App) {
	// The exact path encoded into every certificate's QR code.
	app.Get("/verify/", handlers.VerifyCertificate)

	api := app.Group("/api/v1")
	api.Get("/courses", handlers.ListCourses)
}
