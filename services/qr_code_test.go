package services

import (
	"bytes"
	"image/png"
	"testing"
)

func TestVerificationURLFormat(t *testing.T) {
	url := VerificationURL("https://certifier.onrender.com", "11111111-1111-1111-1111-111111111111")
	want := "https://certifier.onrender.com/verify/?certificate_id=11111111-1111-1111-1111-111111111111"
	if url != want {
		t.Fatalf("VerificationURL = %q, want %q", url, want)
	}
}

func TestGenerateQRCode(t *testing.T) {
	url := VerificationURL("https://certifier.onrender.com", FormatCertificateID(NewCertificateID()))

	data, err := GenerateQRCode(url, 300)
	if err != nil {
		t.Fatalf("GenerateQRCode: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 300 {
		t.Fatalf("QR code is %dx%d, want 300x300", bounds.Dx(), bounds.Dy())
	}

	// The quiet border sits on the opaque white backing.
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("corner pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
}

func TestGenerateQRCodeIsDeterministic(t *testing.T) {
	url := VerificationURL("https://certifier.onrender.com", "11111111-1111-1111-1111-111111111111")

	first, err := GenerateQRCode(url, 200)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateQRCode(url, 200)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same URL produced different QR images")
	}
}
