package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/modaalghoul/certifier/models"
)

// ErrTemplateMissing means the background template asset is not where the
// configuration says it is. This is a deployment defect, not something a
// request can recover from.
var ErrTemplateMissing = errors.New("certificate background template not found")

// CertificateRenderer produces the printable PDF for issued certificates.
// TemplatePath points at the fixed-size background image; PublicHost is the
// base of the public verification endpoint encoded into each QR code.
type CertificateRenderer struct {
	TemplatePath string
	PublicHost   string
}

// GeneratePDF renders one certificate as a single-page PDF sized exactly to
// the background template's pixel dimensions. The output is returned as an
// in-memory buffer; nothing is written to disk. Rendering is pure: the same
// record and template always produce identical bytes.
func (r CertificateRenderer) GeneratePDF(cert models.Certificate) ([]byte, error) {
	width, height, imageType, err := templateDimensions(r.TemplatePath)
	if err != nil {
		return nil, err
	}
	layout := NewCertificateLayout(width, height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	// Pin the metadata clock so re-renders of the same record are
	// byte-identical.
	pdf.SetCreationDate(cert.IssueDate)
	pdf.AddPage()

	pdf.ImageOptions(r.TemplatePath, 0, 0, width, height, false,
		gofpdf.ImageOptions{ImageType: imageType}, 0, "")

	// The layout measures from the bottom-left corner; gofpdf draws from
	// the top-left.
	fromBottom := func(y float64) float64 { return height - y }

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", layout.NameFontSize)
	drawCentred(pdf, width, fromBottom(layout.NameY), cert.Student.User.DisplayName())

	pdf.SetFont("Helvetica", "B", layout.CourseFontSize)
	drawCentred(pdf, width, fromBottom(layout.CourseY), cert.Course.Name)

	pdf.SetFont("Helvetica", "", layout.RegularFontSize)
	pdf.Text(layout.DatesFromX, fromBottom(layout.DatesY), cert.StartDate.Format("02/01/2006"))
	endDate := "Ongoing"
	if cert.EndDate != nil {
		endDate = cert.EndDate.Format("02/01/2006")
	}
	pdf.Text(layout.DatesToX, fromBottom(layout.DatesY), endDate)

	if cert.Grade != nil && *cert.Grade != "" {
		pdf.Text(layout.DatesFromX, fromBottom(layout.GradeY), *cert.Grade)
	}
	pdf.Text(layout.DatesFromX, fromBottom(layout.DurationY),
		fmt.Sprintf("%d hours", cert.Course.DurationHours))

	certificateID := FormatCertificateID(cert.CertificateID)
	pdf.SetFont("Helvetica", "", layout.FooterFontSize)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(layout.FooterX, fromBottom(layout.FooterY),
		fmt.Sprintf("Certificate ID: %s", certificateID))

	qrPNG, err := GenerateQRCode(VerificationURL(r.PublicHost, certificateID), int(layout.QRSize))
	if err != nil {
		return nil, err
	}
	pdf.RegisterImageOptionsReader("verification-qr",
		gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verification-qr",
		layout.QRX, fromBottom(layout.QRY)-layout.QRSize,
		layout.QRSize, layout.QRSize, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// templateDimensions reads the template's pixel dimensions without decoding
// the full image. The page is sized to these exact dimensions.
func templateDimensions(path string) (width, height float64, imageType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", ErrTemplateMissing
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to read certificate template: %w", err)
	}

	switch format {
	case "jpeg":
		imageType = "JPG"
	case "png":
		imageType = "PNG"
	default:
		return 0, 0, "", fmt.Errorf("unsupported certificate template format: %s", format)
	}
	return float64(cfg.Width), float64(cfg.Height), imageType, nil
}

func drawCentred(pdf *gofpdf.Fpdf, pageWidth, y float64, text string) {
	pdf.Text((pageWidth-pdf.GetStringWidth(text))/2, y, text)
}
