package services

import "testing"

func TestLayoutFollowsTemplateDimensions(t *testing.T) {
	l := NewCertificateLayout(2000, 1000)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"NameY", l.NameY, 370},
		{"CourseY", l.CourseY, 250},
		{"DatesFromX", l.DatesFromX, 540},
		{"DatesToX", l.DatesToX, 900},
		{"DatesY", l.DatesY, 125},
		{"GradeY", l.GradeY, 90},
		{"DurationY", l.DurationY, 60},
		{"FooterX", l.FooterX, 100},
		{"FooterY", l.FooterY, 40},
		{"QRSize", l.QRSize, 150},
		{"QRX", l.QRX, 650},
		{"QRY", l.QRY, 70},
		{"NameFontSize", l.NameFontSize, 40},
		{"CourseFontSize", l.CourseFontSize, 35},
		{"RegularFontSize", l.RegularFontSize, 25},
		{"FooterFontSize", l.FooterFontSize, 15},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	a := NewCertificateLayout(2480, 1754)
	b := NewCertificateLayout(2480, 1754)
	if a != b {
		t.Fatalf("same dimensions produced different layouts: %+v != %+v", a, b)
	}
}

// Doubling the template resolution doubles every coordinate: positions are
// pure fractions of the template, never absolute pixels.
func TestLayoutScalesWithResolution(t *testing.T) {
	small := NewCertificateLayout(1000, 700)
	large := NewCertificateLayout(2000, 1400)

	pairs := [][2]float64{
		{small.NameY, large.NameY},
		{small.DatesFromX, large.DatesFromX},
		{small.QRSize, large.QRSize},
		{small.QRX, large.QRX},
		{small.FooterFontSize, large.FooterFontSize},
	}
	for i, p := range pairs {
		if p[0]*2 != p[1] {
			t.Errorf("pair %d: %v at 1000x700 vs %v at 2000x1400", i, p[0], p[1])
		}
	}
}
