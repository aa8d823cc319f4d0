package pubfig

// The registry factor only corrects for a destination's reinterpretation
// of the point unit. Raster-density arithmetic (sizing for a pixel frame
// at some ppi) is deliberately left to the caller; these helpers encode
// the arithmetic the README walks through.

// DensityScale is the factor to apply to physical inches when sizing a
// figure for a ppi pixel frame in a px-per-inch=96 editor. A 2" figure
// destined for a 300ppi figma frame must be requested from the renderer
// at 2 * DensityScale(300) = 6.25".
func DensityScale(ppi float64) float64 {
	return ppi / PxPerInch
}

// FramePx returns the pixel dimensions of the destination frame for the
// given physical sizes in inches: 8.5x11 at 300ppi is a 2550x3300 frame.
func FramePx(ppi float64, inches ...float64) []float64 {
	out := make([]float64, len(inches))
	for i, in := range inches {
		out[i] = in * ppi
	}
	return out
}

// RequestSize returns the dimensions (inches) to request from the
// renderer so the figure lands at the given true physical sizes once
// imported. Pixel-frame destinations (figma) need the density trick;
// everywhere else the request is the physical size itself.
func RequestSize(dest string, ppi float64, inches ...float64) []float64 {
	out := make([]float64, len(inches))
	ds := 1.0
	if dest == DestFigma {
		ds = DensityScale(ppi)
	}
	for i, in := range inches {
		out[i] = in * ds
	}
	return out
}
