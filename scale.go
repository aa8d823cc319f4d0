package pubfig

// Scale multiplies each value by the active scale factor, preserving
// order and arity. It only reads the ambient context, never writes it.
func Scale(values ...float64) []float64 {
	return ScaleBy(activeFactor, values...)
}

// ScaleBy is Scale with an explicit factor, bypassing the ambient
// context.
func ScaleBy(factor float64, values ...float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}

// ScaleValue scales a single value by the active factor.
func ScaleValue(v float64) float64 {
	return v * activeFactor
}

// ScaleSize scales a width/height pair, the common figure-size case.
func ScaleSize(w, h float64) (float64, float64) {
	return w * activeFactor, h * activeFactor
}

// ScaleLength parses a measurement string (see ParseLength) and scales
// the resulting points by the active factor.
func ScaleLength(s string) (pt float64, err error) {
	pt, err = ParseLength(s)
	if err != nil {
		return 0, err
	}
	return pt * activeFactor, nil
}
