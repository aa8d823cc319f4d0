package pubfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleOutsideContext(t *testing.T) {
	for _, x := range []float64{0, 1, -3.5, 8.5, 1e6, 1e-9} {
		assert.Equal(t, x, ScaleValue(x))
	}
	assert.Equal(t, []float64{1, 2, 3}, Scale(1, 2, 3))
}

func TestScaleInFigmaContext(t *testing.T) {
	defer Use(DestFigma)()

	got := Scale(3, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 4.0, got[0])
	assert.InDelta(t, 2.6666666667, got[1], 1e-9)

	w, h := ScaleSize(3, 2)
	assert.Equal(t, 4.0, w)
	assert.InDelta(t, 2.6666666667, h, 1e-9)
}

func TestScaleArityAndOrder(t *testing.T) {
	defer Use(DestFigma)()

	got := Scale(1, 2, 3)
	require.Len(t, got, 3)
	for i, in := range []float64{1, 2, 3} {
		assert.InDelta(t, in*FigmaFactor, got[i], 1e-12)
	}
}

func TestScaleBy(t *testing.T) {
	// explicit factor wins over ambient context
	defer Use(DestFigma)()
	assert.Equal(t, []float64{5, 10}, ScaleBy(5, 1, 2))
}

func TestScaleLength(t *testing.T) {
	defer Use(DestFigma)()

	pt, err := ScaleLength("2in")
	require.NoError(t, err)
	assert.InDelta(t, 192.0, pt, 1e-9) // 144pt inflated by 96/72

	_, err = ScaleLength("2banana")
	assert.Error(t, err)
	assert.Equal(t, FigmaFactor, CurrentFactor()) // error didn't disturb context
}

// the documented round trip: an 8.5x11" figure for a 300ppi frame is
// requested at 8.5*300/96 x 11*300/96 inches; the pt sizes the renderer
// then emits scale, under the figma factor, to exactly the frame pixels
func TestFrameRoundTrip(t *testing.T) {
	defer Use(DestFigma)()

	req := RequestSize(DestFigma, 300, 8.5, 11)
	require.Len(t, req, 2)
	assert.InDelta(t, 8.5*300/96, req[0], 1e-12)
	assert.InDelta(t, 11.0*300/96, req[1], 1e-12)

	px := Scale(InchToPt(req[0]), InchToPt(req[1]))
	assert.InDelta(t, 8.5*300, px[0], 1e-9) // 2550
	assert.InDelta(t, 11*300, px[1], 1e-9)  // 3300
}
