package database

import (
	"github.com/google/uuid"
	"github.com/modaalghoul/certifier/models"
	"gorm.io/gorm"
)

// CertificateRepository is the GORM-backed implementation of
// services.CertificateStore.
type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Certificates returns a repository bound to the shared connection.
func Certificates() *CertificateRepository {
	return NewCertificateRepository(DB)
}

func (r *CertificateRepository) FindByCertificateID(id uuid.UUID) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.db.Preload("Student.User").Preload("Course").
		Where("certificate_id = ?", id).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// UpdateValidity flips the is_valid flag with a single-row update.
func (r *CertificateRepository) UpdateValidity(id uuid.UUID, isValid bool) error {
	result := r.db.Model(&models.Certificate{}).
		Where("certificate_id = ?", id).
		Update("is_valid", isValid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
