package services

import (
	"errors"
	"testing"
)

func TestCertificateIDRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewCertificateID()
		formatted := FormatCertificateID(id)

		parsed, err := ParseCertificateID(formatted)
		if err != nil {
			t.Fatalf("ParseCertificateID(%q): %v", formatted, err)
		}
		if parsed != id {
			t.Fatalf("round trip changed identifier: %s != %s", parsed, id)
		}
		if FormatCertificateID(parsed) != formatted {
			t.Fatalf("re-rendering changed string form: %s != %s", FormatCertificateID(parsed), formatted)
		}
	}
}

func TestParseCertificateIDRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-uuid",
		"11111111-1111-1111-1111-11111111111",   // one hex digit short
		"11111111-1111-1111-1111-1111111111111", // one hex digit long
		"11111111x1111-1111-1111-111111111111",  // wrong separator
		"1111111111111111111111111111111111111", // no hyphens
		"gggggggg-1111-1111-1111-111111111111",  // non-hex
		"{11111111-1111-1111-1111-111111111111}",
		"urn:uuid:11111111-1111-1111-1111-111111111111",
		"11111111-1111-1111-1111-111111111111 ",
	}
	for _, input := range cases {
		if _, err := ParseCertificateID(input); !errors.Is(err, ErrMalformedID) {
			t.Errorf("ParseCertificateID(%q): expected ErrMalformedID, got %v", input, err)
		}
	}
}

func TestParseCertificateIDAcceptsCanonicalForm(t *testing.T) {
	const canonical = "11111111-1111-1111-1111-111111111111"
	id, err := ParseCertificateID(canonical)
	if err != nil {
		t.Fatalf("ParseCertificateID(%q): %v", canonical, err)
	}
	if FormatCertificateID(id) != canonical {
		t.Fatalf("formatted as %s, want %s", FormatCertificateID(id), canonical)
	}

	// Uppercase hex is still the canonical shape; it parses and
	// re-renders lowercase.
	id, err = ParseCertificateID("ABCDEF01-2345-6789-ABCD-EF0123456789")
	if err != nil {
		t.Fatalf("uppercase hex rejected: %v", err)
	}
	if FormatCertificateID(id) != "abcdef01-2345-6789-abcd-ef0123456789" {
		t.Fatalf("unexpected canonical form: %s", FormatCertificateID(id))
	}
}
