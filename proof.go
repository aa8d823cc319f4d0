package pubfig

import "fmt"

// NOTE padding is only added on the right and bottom sides of each
// section so that it is never doubled

var (
	padding   = 0.25
	thinLW    = 0.01
	thinestLW = 0.001
)

type bounds struct {
	top    float64
	left   float64
	bottom float64
	right  float64
}

func (b bounds) Width() float64 {
	return b.right - b.left
}

func (b bounds) Height() float64 {
	return b.bottom - b.top
}

// ProofSheet is a calibration page for a destination: a grid at known
// physical spacing, inch ticks, and font samples at the destination's
// type scale. Import it into the destination editor and check that the
// squares measure what they claim; if they do, figures sized the same
// way will too.
type ProofSheet struct {
	Width  float64 // true physical width, inches
	Height float64 // true physical height, inches
	PPI    float64 // pixel density of the destination frame
	Dest   string
}

// PageSize returns the page dimensions (inches) to request from the
// renderer, density trick included for pixel-frame destinations.
func (ps ProofSheet) PageSize() (w, h float64) {
	rs := RequestSize(ps.Dest, ps.PPI, ps.Width, ps.Height)
	return rs[0], rs[1]
}

// emitFactor is the multiplier from true physical sizes to emitted
// sizes, the same arithmetic PageSize applies per dimension.
func (ps ProofSheet) emitFactor() float64 {
	return RequestSize(ps.Dest, ps.PPI, 1)[0]
}

// Print draws the proof sheet. The pdf page must be PageSize() large and
// use inch units.
func (ps ProofSheet) Print(pdf Pdf) {
	w, h := ps.PageSize()
	bnd := bounds{padding, padding, h - padding, w - padding}

	bnd = ps.printTitleBlock(pdf, bnd)
	bnd = ps.printFontSamples(pdf, bnd)
	ps.printGrid(pdf, bnd)
}

func (ps ProofSheet) printTitleBlock(pdf Pdf, bnd bounds) (reduced bounds) {
	boxHeight := 0.4 * ps.emitFactor()
	boxTextMargin := 0.06 * ps.emitFactor()

	conts := []string{
		"DEST: " + ps.Dest,
		fmt.Sprintf("PPI: %v", ps.PPI),
		fmt.Sprintf("FACTOR: %.4f", Factor(ps.Dest)),
	}
	if ps.Dest == DestFigma { // only pixel-frame destinations have a frame
		px := FramePx(ps.PPI, ps.Width, ps.Height)
		conts = append(conts, fmt.Sprintf("FRAME: %vx%vpx", px[0], px[1]))
	}

	fontPt := 10 * ps.emitFactor()
	pdf.SetFont("courier", "", fontPt)
	charH := getFontHeight(fontPt)
	charW := getCourierFontWidthFromHeight(charH)

	// evenly distribute the leftover width between entries
	numChars := 0
	for _, c := range conts {
		numChars += len(c)
	}
	usedWidth := charW * float64(numChars)

	xTextAreaStart := bnd.left + boxTextMargin
	xTextAreaEnd := bnd.right - boxTextMargin
	xTextIncr := 0.0
	freeWidthPerItem := (xTextAreaEnd - xTextAreaStart - usedWidth) / float64(len(conts))

	pdf.SetLineWidth(thinLW)
	pdf.Rect(bnd.left, bnd.top, bnd.Width(), boxHeight, "")
	for _, cont := range conts {
		pdf.Text(xTextAreaStart+xTextIncr, bnd.top+boxHeight-boxTextMargin, cont)
		xTextIncr += float64(len(cont))*charW + freeWidthPerItem
	}

	return bounds{bnd.top + boxHeight + padding, bnd.left, bnd.bottom, bnd.right}
}

// font samples at the destination type scale; each should measure its
// nominal pt size once imported
func (ps ProofSheet) printFontSamples(pdf Pdf, bnd bounds) (reduced bounds) {
	ef := ps.emitFactor()
	y := bnd.top
	for _, nominal := range []float64{tickSizePt, baseSizePt, titleSizePt} {
		emitted := nominal * ef
		y += getFontHeight(emitted) + padding/2
		pdf.SetFont("courier", "", emitted)
		pdf.Text(bnd.left, y, fmt.Sprintf("%vpt sample text", nominal))
	}
	return bounds{y + padding, bnd.left, bnd.bottom, bnd.right}
}

// printGrid fills the remaining bounds with quarter-inch squares and
// heavier lines on the whole inches.
func (ps ProofSheet) printGrid(pdf Pdf, bnd bounds) {
	ef := ps.emitFactor()
	spacing := 0.25 * ef
	inch := 1.0 * ef

	// horizontal lines
	i := 0
	for yStart := bnd.top; yStart <= bnd.bottom; yStart += spacing {
		pdf.SetLineWidth(thinestLW)
		if i%int(inch/spacing) == 0 {
			pdf.SetLineWidth(thinLW)
		}
		pdf.Line(bnd.left, yStart, bnd.right, yStart)
		i++
	}

	// vertical lines
	i = 0
	for xStart := bnd.left; xStart <= bnd.right; xStart += spacing {
		pdf.SetLineWidth(thinestLW)
		if i%int(inch/spacing) == 0 {
			pdf.SetLineWidth(thinLW)
		}
		pdf.Line(xStart, bnd.top, xStart, bnd.bottom)
		i++
	}
}
