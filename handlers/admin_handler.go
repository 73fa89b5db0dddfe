package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/modaalghoul/certifier/database"
	"github.com/modaalghoul/certifier/models"
	"github.com/modaalghoul/certifier/services"
	"github.com/modaalghoul/certifier/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateStudentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

// CreateStudent creates the account identity and the student record in one
// transaction. The temporary password is returned exactly once, in this
// response; the student must replace it on first login.
func CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tempPassword, err := utils.GenerateTempPassword()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate temporary password"})
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var newStudent models.Student
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		newUser := models.User{
			FullName: req.FirstName + " " + req.LastName,
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     "student",
		}
		if err := tx.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("email already exists")
			}
			return err
		}

		newStudent = models.Student{
			UserID:                newUser.ID,
			Phone:                 req.Phone,
			RequirePasswordChange: true,
		}
		if err := tx.Create(&newStudent).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("phone already exists")
			}
			return err
		}
		newStudent.User = newUser
		return nil
	})

	if err != nil {
		if err.Error() == "email already exists" || err.Error() == "phone already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	log.Printf("✅ Created student %s", newStudent.User.Email)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"student":       newStudent,
		"temp_password": tempPassword,
	})
}

func ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.DB.Preload("User").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

// ResetStudentPassword assigns a fresh temporary password and turns the
// mandatory-reset flag back on.
func ResetStudentPassword(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.Preload("User").Where("id = ?", studentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	tempPassword, err := utils.GenerateTempPassword()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate temporary password"})
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&student.User).Update("password", string(hashedPassword)).Error; err != nil {
			return err
		}
		return tx.Model(&student).Update("require_password_change", true).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset password"})
	}

	return c.JSON(fiber.Map{
		"message":       "Password reset successfully",
		"email":         student.User.Email,
		"temp_password": tempPassword,
	})
}

type CourseRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration_hours" validate:"required,min=1"`
}

func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Name:          req.Name,
		Description:   req.Description,
		DurationHours: req.DurationHours,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Params("courseId")).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	course.Name = req.Name
	course.Description = req.Description
	course.DurationHours = req.DurationHours
	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	var count int64
	if err := database.DB.Model(&models.Certificate{}).
		Where("course_id = ?", c.Params("courseId")).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course has issued certificates and cannot be deleted"})
	}

	result := database.DB.Where("id = ?", c.Params("courseId")).Delete(&models.Course{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}

type IssueCertificateRequest struct {
	StudentID string     `json:"student_id" validate:"required,uuid4"`
	CourseID  string     `json:"course_id" validate:"required,uuid4"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`
	Grade     *string    `json:"grade"`
}

// IssueCertificate creates a certificate record with a fresh identifier.
// This is the only place identifiers are generated.
func IssueCertificate(c *fiber.Ctx) error {
	var req IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.Student
	if err := database.DB.Where("id = ?", req.StudentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	var course models.Course
	if err := database.DB.Where("id = ?", req.CourseID).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	cert := models.Certificate{
		StudentID:     student.ID,
		CourseID:      course.ID,
		CertificateID: services.NewCertificateID(),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsValid:       true,
		Grade:         req.Grade,
	}
	if err := database.DB.Create(&cert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue certificate"})
	}

	log.Printf("✅ Issued certificate %s for course '%s'", cert.CertificateID, course.Name)
	return c.Status(fiber.StatusCreated).JSON(cert)
}

func ListCertificates(c *fiber.Ctx) error {
	var certs []models.Certificate
	if err := database.DB.Preload("Student.User").Preload("Course").
		Order("issue_date DESC").Find(&certs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(certs)
}

// InvalidateCertificate soft-revokes a certificate. The record stays; the
// public status flips and the document becomes unretrievable for everyone.
func InvalidateCertificate(c *fiber.Ctx) error {
	return setCertificateValidity(c, false, "Certificate marked as invalid")
}

func RevalidateCertificate(c *fiber.Ctx) error {
	return setCertificateValidity(c, true, "Certificate marked as valid")
}

func setCertificateValidity(c *fiber.Ctx, isValid bool, message string) error {
	id, err := services.ParseCertificateID(c.Params("certificateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID format"})
	}

	if err := database.Certificates().UpdateValidity(id, isValid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update certificate"})
	}
	return c.JSON(fiber.Map{"message": message})
}
