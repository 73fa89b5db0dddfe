package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is one issued credential. CertificateID is the public
// identifier printed on the document and embedded in the verification QR
// code; it is assigned once at issue time and never reused. Records are
// never deleted: an administrator flips IsValid instead.
type Certificate struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID     uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	CourseID      uuid.UUID  `gorm:"type:uuid;not null" json:"course_id"`
	CertificateID uuid.UUID  `gorm:"type:uuid;not null;unique" json:"certificate_id"`
	IssueDate     time.Time  `gorm:"autoCreateTime" json:"issue_date"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	IsValid       bool       `gorm:"not null;default:true" json:"is_valid"`
	Grade         *string    `gorm:"type:text" json:"grade"`

	Student Student `gorm:"foreignkey:StudentID" json:"student"`
	Course  Course  `gorm:"foreignkey:CourseID" json:"course"`
}
