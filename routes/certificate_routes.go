package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaalghoul/certifier/handlers"
	"github.com/modaalghoul/certifier/middleware"
)

func CertificateRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/dashboard/certificates",
		middleware.Protected(), middleware.PasswordChangeRequired(),
		handlers.GetMyCertificates)

	api.Get("/certificates/:certificateId/document",
		middleware.Protected(), middleware.PasswordChangeRequired(),
		handlers.ViewCertificateDocument)
}
