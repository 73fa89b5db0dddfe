package services

// CertificateLayout holds every drawing coordinate and font size for one
// rendered certificate page. All values derive from the background
// template's pixel dimensions, so swapping in a higher-resolution template
// changes nothing here. Coordinates are measured from the bottom-left
// corner, matching the printable page.
type CertificateLayout struct {
	PageWidth  float64
	PageHeight float64

	NameY   float64
	CourseY float64

	DatesFromX float64
	DatesToX   float64
	DatesY     float64
	GradeY     float64
	DurationY  float64

	FooterX float64
	FooterY float64

	QRSize float64
	QRX    float64
	QRY    float64

	NameFontSize    float64
	CourseFontSize  float64
	RegularFontSize float64
	FooterFontSize  float64
}

// NewCertificateLayout computes the layout for a template of the given
// pixel dimensions. Pure: the same dimensions always produce the same
// layout, which is what keeps repeated renders byte-identical.
func NewCertificateLayout(width, height float64) CertificateLayout {
	datesY := height * 0.125
	qrSize := height * 0.15

	return CertificateLayout{
		PageWidth:  width,
		PageHeight: height,

		NameY:   height * 0.37,
		CourseY: height * 0.25,

		DatesFromX: width * 0.27,
		DatesToX:   width * 0.45,
		DatesY:     datesY,
		GradeY:     datesY - height*0.035,
		DurationY:  datesY - height*0.065,

		FooterX: width * 0.05,
		FooterY: height * 0.04,

		QRSize: qrSize,
		QRX:    width - qrSize*9,
		QRY:    height * 0.07,

		NameFontSize:    height * 0.04,
		CourseFontSize:  height * 0.035,
		RegularFontSize: height * 0.025,
		FooterFontSize:  height * 0.015,
	}
}
