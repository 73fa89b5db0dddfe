package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/modaalghoul/certifier/models"
	"gorm.io/gorm"
)

type fakeStore struct {
	certs map[uuid.UUID]*models.Certificate
}

func newFakeStore(certs ...*models.Certificate) *fakeStore {
	s := &fakeStore{certs: make(map[uuid.UUID]*models.Certificate)}
	for _, c := range certs {
		s.certs[c.CertificateID] = c
	}
	return s
}

func (s *fakeStore) FindByCertificateID(id uuid.UUID) (*models.Certificate, error) {
	cert, ok := s.certs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cert, nil
}

func (s *fakeStore) UpdateValidity(id uuid.UUID, isValid bool) error {
	cert, ok := s.certs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cert.IsValid = isValid
	return nil
}

func testCertificate(isValid bool, grade *string, endDate *time.Time) *models.Certificate {
	return &models.Certificate{
		CertificateID: NewCertificateID(),
		StartDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       endDate,
		IsValid:       isValid,
		Grade:         grade,
		Student: models.Student{
			User: models.User{FullName: "Jane Smith", Email: "jane@example.com"},
		},
		Course: models.Course{Name: "Applied Welding", DurationHours: 40},
	}
}

func strPtr(s string) *string { return &s }

func mustVerify(t *testing.T, store CertificateStore, rawID string) VerificationResult {
	t.Helper()
	result, err := VerifyCertificate(store, rawID)
	if err != nil {
		t.Fatalf("VerifyCertificate(%q): %v", rawID, err)
	}
	return result
}

func TestVerifyMissingIdentifier(t *testing.T) {
	result := mustVerify(t, newFakeStore(), "")
	if result.Status != StatusMissingID {
		t.Fatalf("status = %s, want %s", result.Status, StatusMissingID)
	}
	if result.CertificateID != "" {
		t.Errorf("missing-input outcome should not echo an identifier, got %q", result.CertificateID)
	}
}

func TestVerifyMalformedIdentifier(t *testing.T) {
	result := mustVerify(t, newFakeStore(), "not-a-uuid")
	if result.Status != StatusInvalidFormat {
		t.Fatalf("status = %s, want %s", result.Status, StatusInvalidFormat)
	}
	if result.CertificateID != "not-a-uuid" {
		t.Errorf("echoed identifier = %q, want the raw input", result.CertificateID)
	}
}

func TestVerifyUnknownIdentifier(t *testing.T) {
	result := mustVerify(t, newFakeStore(), "11111111-1111-1111-1111-111111111111")
	if result.Status != StatusNotFound {
		t.Fatalf("status = %s, want %s", result.Status, StatusNotFound)
	}
}

func TestVerifyInvalidatedCertificate(t *testing.T) {
	cert := testCertificate(false, strPtr("Distinction"), nil)
	result := mustVerify(t, newFakeStore(cert), FormatCertificateID(cert.CertificateID))

	if result.Status != StatusInvalid {
		t.Fatalf("status = %s, want %s", result.Status, StatusInvalid)
	}
	if !strings.Contains(result.Message, "invalidated by the issuing authority") {
		t.Errorf("message %q should state the certificate was invalidated by the issuing authority", result.Message)
	}
	// No document contents: not even the grade or course leaks for an
	// invalidated certificate.
	combined := result.Message + result.Details
	if strings.Contains(combined, "Distinction") || strings.Contains(combined, "Welding") {
		t.Errorf("invalidated outcome leaks certificate contents: %q / %q", result.Message, result.Details)
	}
}

func TestVerifyValidCertificate(t *testing.T) {
	cert := testCertificate(true, strPtr("A"), nil)
	result := mustVerify(t, newFakeStore(cert), FormatCertificateID(cert.CertificateID))

	if result.Status != StatusValid {
		t.Fatalf("status = %s, want %s", result.Status, StatusValid)
	}
	if !result.IsValid {
		t.Error("is_valid should be true for a valid certificate")
	}
	if !strings.Contains(result.Message, "A") {
		t.Errorf("message %q should include the grade", result.Message)
	}
	if !strings.Contains(result.Details, "Ongoing") {
		t.Errorf("details %q should render a missing end date as Ongoing", result.Details)
	}
	if !strings.Contains(result.Details, "March 1, 2025") {
		t.Errorf("details %q should include the start date", result.Details)
	}
}

func TestVerifyValidCertificateWithoutGrade(t *testing.T) {
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	cert := testCertificate(true, nil, &end)
	result := mustVerify(t, newFakeStore(cert), FormatCertificateID(cert.CertificateID))

	if result.Status != StatusValid {
		t.Fatalf("status = %s, want %s", result.Status, StatusValid)
	}
	if strings.Contains(result.Message, "grade") {
		t.Errorf("message %q should not mention a grade when none is set", result.Message)
	}
	if !strings.Contains(result.Details, "June 30, 2025") {
		t.Errorf("details %q should include the end date", result.Details)
	}
}

// Classification follows the current flag: invalidating and revalidating a
// certificate changes the outcome of the very next lookup.
func TestVerifyTracksValidityFlag(t *testing.T) {
	cert := testCertificate(true, nil, nil)
	store := newFakeStore(cert)
	rawID := FormatCertificateID(cert.CertificateID)

	if result := mustVerify(t, store, rawID); result.Status != StatusValid {
		t.Fatalf("status = %s, want %s", result.Status, StatusValid)
	}

	if err := store.UpdateValidity(cert.CertificateID, false); err != nil {
		t.Fatal(err)
	}
	if result := mustVerify(t, store, rawID); result.Status != StatusInvalid {
		t.Fatalf("after invalidation status = %s, want %s", result.Status, StatusInvalid)
	}

	if err := store.UpdateValidity(cert.CertificateID, true); err != nil {
		t.Fatal(err)
	}
	if result := mustVerify(t, store, rawID); result.Status != StatusValid {
		t.Fatalf("after revalidation status = %s, want %s", result.Status, StatusValid)
	}
}
