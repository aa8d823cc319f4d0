package pubfig

import "github.com/jung-kurt/gofpdf"

// Pdf is the slice of a pdf renderer that proof sheets draw through.
// Coordinates are in inches, font sizes in pt.
type Pdf interface {
	SetLineWidth(width float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, styleStr string)
	SetFont(familyStr, styleStr string, size float64)
	Text(x, y float64, txtStr string)
}

var _ Pdf = (*gofpdf.Fpdf)(nil)

// dummyPdf fulfills the interface Pdf
type dummyPdf struct{}

var _ Pdf = dummyPdf{}

func (d dummyPdf) SetLineWidth(width float64)                       {}
func (d dummyPdf) Line(x1, y1, x2, y2 float64)                      {}
func (d dummyPdf) Rect(x, y, w, h float64, styleStr string)         {}
func (d dummyPdf) SetFont(familyStr, styleStr string, size float64) {}
func (d dummyPdf) Text(x, y float64, txtStr string)                 {}

// ApplyParams pushes the font settings into a renderer.
func ApplyParams(pdf Pdf, p RenderParams) {
	pdf.SetFont(p.FontFamily, "", p.BaseSize)
}
