package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedID is returned when an input string does not match the
// canonical certificate identifier grammar.
var ErrMalformedID = errors.New("malformed certificate identifier")

// NewCertificateID generates a fresh random identifier for a certificate.
// Only called at issue time; everything downstream treats identifiers as
// opaque values.
func NewCertificateID() uuid.UUID {
	return uuid.New()
}

// FormatCertificateID renders an identifier in its canonical form:
// lowercase hexadecimal in 8-4-4-4-12 hyphenated groups.
func FormatCertificateID(id uuid.UUID) string {
	return id.String()
}

// ParseCertificateID parses an input string into a certificate identifier.
// Only the canonical hyphenated form is accepted; the braced, URN and
// compact variants that uuid.Parse tolerates are rejected so that every
// identifier has exactly one accepted spelling.
func ParseCertificateID(input string) (uuid.UUID, error) {
	if !isCanonicalIDForm(input) {
		return uuid.Nil, ErrMalformedID
	}
	id, err := uuid.Parse(input)
	if err != nil {
		return uuid.Nil, ErrMalformedID
	}
	return id, nil
}

func isCanonicalIDForm(input string) bool {
	if len(input) != 36 {
		return false
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !strings.ContainsRune("0123456789abcdefABCDEF", rune(c)) {
				return false
			}
		}
	}
	return true
}
