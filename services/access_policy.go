package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/modaalghoul/certifier/models"
)

// ErrForbidden is the single rejection for document retrieval. The message
// is deliberately generic: a caller who is refused learns nothing about
// whether the certificate exists or why access was denied.
var ErrForbidden = errors.New("you don't have permission to view this certificate")

// AuthorizeDocumentAccess decides whether an authenticated caller may
// retrieve the rendered document for a certificate. Only an administrator
// or the certificate's own student qualifies, and an invalidated
// certificate is not retrievable by anyone while the flag stays false.
// Public status verification is a separate, unauthenticated path and is not
// gated here.
func AuthorizeDocumentAccess(role string, userID uuid.UUID, cert *models.Certificate) error {
	if !cert.IsValid {
		return ErrForbidden
	}
	if role == "admin" {
		return nil
	}
	if cert.Student.UserID == userID {
		return nil
	}
	return ErrForbidden
}
