package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// VerificationURL builds the exact URL embedded in a certificate's QR code.
// Scanning the code lands on the same public verification endpoint used for
// manual lookups.
func VerificationURL(publicHost string, certificateID string) string {
	return fmt.Sprintf("%s/verify/?certificate_id=%s", publicHost, certificateID)
}

// GenerateQRCode encodes the given URL as a PNG of sizePx by sizePx pixels.
// Recovery level Low tolerates about 7% symbol damage, enough for ordinary
// print and scan wear. The code is composited onto an opaque white backing
// so it stays legible however the document is printed.
func GenerateQRCode(url string, sizePx int) ([]byte, error) {
	qr, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	qrImage := qr.Image(sizePx)

	backing := imaging.New(sizePx, sizePx, color.White)
	composited := imaging.Overlay(backing, qrImage, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, composited, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode QR code image: %w", err)
	}
	return buf.Bytes(), nil
}
