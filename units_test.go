package pubfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	for _, rec := range []struct {
		in     string
		expect float64
	}{
		{"1in", 72},
		{"8.5in", 612},
		{"12pt", 12},
		{"36", 36}, // bare numbers are pt
		{"10mm", 10 * PtPerMm},
		{"2.54cm", 72},
		{"96px", 72},
		{" 1in ", 72},
		{"-0.5in", -36},
	} {
		pt, err := ParseLength(rec.in)
		require.NoError(t, err, "in=%q", rec.in)
		assert.InDelta(t, rec.expect, pt, 1e-9, "in=%q", rec.in)
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "banana", "3.5.5in", "in", "12 pts"} {
		_, err := ParseLength(in)
		assert.Error(t, err, "in=%q", in)
	}
}

func TestUnitRoundTrips(t *testing.T) {
	for _, v := range []float64{0.001, 1, 12, 96, 1000} {
		assert.InDelta(t, v, PtToMm(MmToPt(v)), 1e-9)
		assert.InDelta(t, v, PtToInch(InchToPt(v)), 1e-9)
		assert.InDelta(t, v, PtToPx(PxToPt(v)), 1e-9)
	}
}

func TestDensity(t *testing.T) {
	assert.Equal(t, 3.125, DensityScale(300)) // 300/96
	assert.Equal(t, 1.0, DensityScale(96))

	px := FramePx(300, 8.5, 11)
	assert.Equal(t, []float64{2550, 3300}, px)
}

func TestRequestSize(t *testing.T) {
	// figma: 2" at 300ppi must be requested at 6.25"
	assert.Equal(t, []float64{6.25}, RequestSize(DestFigma, 300, 2))
	// everyone else imports physical sizes directly
	assert.Equal(t, []float64{2}, RequestSize(DestAdobe, 300, 2))
	assert.Equal(t, []float64{2}, RequestSize("", 300, 2))
}
