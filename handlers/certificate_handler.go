package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/modaalghoul/certifier/configs"
	"github.com/modaalghoul/certifier/database"
	"github.com/modaalghoul/certifier/models"
	"github.com/modaalghoul/certifier/services"
	"gorm.io/gorm"
)

// VerifyCertificate is the public lookup behind both the QR code on printed
// certificates and manual identifier entry. It only ever reveals status,
// never the document.
func VerifyCertificate(c *fiber.Ctx) error {
	result, err := services.VerifyCertificate(database.Certificates(), c.Query("certificate_id"))
	if err != nil {
		log.Printf("🔥 Certificate lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Verification is temporarily unavailable"})
	}
	return c.JSON(result)
}

// ViewCertificateDocument streams the rendered PDF to an authorized caller:
// an administrator or the certificate's own student, and only while the
// certificate is valid.
func ViewCertificateDocument(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role := claims["role"].(string)
	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := services.ParseCertificateID(c.Params("certificateId"))
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": services.ErrForbidden.Error()})
	}

	cert, err := database.Certificates().FindByCertificateID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := services.AuthorizeDocumentAccess(role, userID, cert); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	renderer := services.CertificateRenderer{
		TemplatePath: config.ConfigOr("CERTIFICATE_TEMPLATE", "assets/certificate_background.jpg"),
		PublicHost:   config.ConfigOr("PUBLIC_HOST", "https://certifier.onrender.com"),
	}
	pdf, err := renderer.GeneratePDF(*cert)
	if err != nil {
		if errors.Is(err, services.ErrTemplateMissing) {
			log.Printf("🔥 Certificate template missing: check CERTIFICATE_TEMPLATE")
		} else {
			log.Printf("🔥 Failed to render certificate %s: %v", cert.CertificateID, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate certificate document"})
	}

	filename := fmt.Sprintf("certificate_%s_%s.pdf", cert.Course.Name, cert.Student.User.Email)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

// GetMyCertificates lists the authenticated student's own certificates,
// newest first.
func GetMyCertificates(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var student models.Student
	if err := database.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student record not found"})
	}

	var certs []models.Certificate
	if err := database.DB.Preload("Course").
		Where("student_id = ?", student.ID).
		Order("issue_date DESC").Find(&certs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(certs)
}

func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Order("name").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(courses)
}
