package pubfig

// destinations are the vector graphics applications a figure will be
// imported into. Only figma reinterprets the point unit; the rest are
// listed for documentation and CLI completion.
const (
	DestFigma    = "figma"
	DestAdobe    = "adobe"
	DestAffinity = "affinity"
	DestInkscape = "inkscape"
	DestDefault  = "default"
)

// FigmaFactor undoes figma's import-time inflation of pt values
// (figma: 1pt = 1 CSS pixel = 1/96", print: 1pt = 1/72").
const FigmaFactor = PxPerInch / PtPerInch // 96/72, kept exact

// Factor resolves a destination name to its scale factor. Unrecognized
// names are not an error and get no special scaling - users frequently
// don't know (or need to care about) their destination yet. Matching is
// exact, "Figma" is not "figma".
func Factor(dest string) float64 {
	switch dest {
	case DestFigma:
		return FigmaFactor
	default:
		return 1.0
	}
}
