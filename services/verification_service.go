package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/modaalghoul/certifier/models"
	"gorm.io/gorm"
)

// CertificateStore is the data-access contract the verification and access
// logic depend on. The GORM implementation lives in the database package;
// tests substitute an in-memory one.
type CertificateStore interface {
	FindByCertificateID(id uuid.UUID) (*models.Certificate, error)
	UpdateValidity(id uuid.UUID, isValid bool) error
}

// Verification statuses, one per terminal outcome of a lookup.
const (
	StatusMissingID     = "missing_id"
	StatusInvalidFormat = "invalid_format"
	StatusNotFound      = "not_found"
	StatusInvalid       = "invalid"
	StatusValid         = "valid"
)

// VerificationResult is what a verification lookup reports back, whether it
// arrived through a scanned QR code or a manually entered identifier.
type VerificationResult struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Details       string `json:"details,omitempty"`
	HelpText      string `json:"help_text,omitempty"`
	CertificateID string `json:"certificate_id,omitempty"`
	IsValid       bool   `json:"is_valid"`
}

// VerifyCertificate classifies a raw identifier string into exactly one
// outcome. The checks run in order: missing input, malformed input, unknown
// identifier, invalidated certificate, valid certificate. Validity is read
// from the store on every call; nothing is cached. The result never carries
// document contents. A non-nil error means the store itself failed, which
// is a server fault rather than a verification outcome.
func VerifyCertificate(store CertificateStore, rawID string) (VerificationResult, error) {
	if rawID == "" {
		return VerificationResult{
			Status:   StatusMissingID,
			Message:  "No certificate ID was provided.",
			HelpText: "Please provide a valid certificate ID in the URL.",
		}, nil
	}

	id, err := ParseCertificateID(rawID)
	if err != nil {
		return VerificationResult{
			Status:        StatusInvalidFormat,
			Message:       "The provided certificate ID is not in the correct format.",
			HelpText:      "Certificate IDs should be in UUID format. Please check if you copied the complete ID.",
			CertificateID: rawID,
		}, nil
	}

	cert, err := store.FindByCertificateID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VerificationResult{
				Status:        StatusNotFound,
				Message:       "The requested certificate could not be found in our system.",
				HelpText:      "Please verify that you have entered the correct certificate ID. If you believe this is an error, contact the issuing authority.",
				CertificateID: rawID,
			}, nil
		}
		return VerificationResult{}, err
	}

	if !cert.IsValid {
		return VerificationResult{
			Status:        StatusInvalid,
			Message:       "This certificate has been invalidated by the issuing authority.",
			Details:       "Contact the issuing authority for more information.",
			CertificateID: rawID,
		}, nil
	}

	message := "This is a valid certificate"
	if cert.Grade != nil && *cert.Grade != "" {
		message += " with grade: " + *cert.Grade
	}

	endDate := "Ongoing"
	if cert.EndDate != nil {
		endDate = cert.EndDate.Format("January 2, 2006")
	}

	return VerificationResult{
		Status:        StatusValid,
		Message:       message,
		Details:       fmt.Sprintf("Course period: %s - %s", cert.StartDate.Format("January 2, 2006"), endDate),
		CertificateID: rawID,
		IsValid:       true,
	}, nil
}
