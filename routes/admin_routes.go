package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaalghoul/certifier/handlers"
	"github.com/modaalghoul/certifier/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	students := admin.Group("/students")
	students.Post("", handlers.CreateStudent)
	students.Get("", handlers.ListStudents)
	students.Post("/:studentId/reset-password", handlers.ResetStudentPassword)

	courses := admin.Group("/courses")
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)

	certificates := admin.Group("/certificates")
	certificates.Post("", handlers.IssueCertificate)
	certificates.Get("", handlers.ListCertificates)
	certificates.Post("/:certificateId/invalidate", handlers.InvalidateCertificate)
	certificates.Post("/:certificateId/revalidate", handlers.RevalidateCertificate)
}
