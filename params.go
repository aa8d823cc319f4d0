package pubfig

// Scaler scales values by a factor fixed at creation time, regardless of
// the ambient context.
type Scaler func(values ...float64) []float64

// RenderParams are the renderer settings a publication figure needs:
// journal-friendly font, type scale, and densities, pre-scaled for a
// destination. The caller pushes these into its plotting library; pubfig
// never touches the renderer itself.
type RenderParams struct {
	FontFamily string

	// type scale in pt, destination-corrected
	BaseSize  float64 // body text, axis labels, legend
	TickSize  float64 // tick labels
	TitleSize float64 // figure title

	DisplayDPI float64 // on-screen preview density
	SaveDPI    float64 // raster export density
	TextAsText bool    // keep SVG text as text elements, not outlines
}

const ( // journal type scale, pt
	baseSizePt  = 6
	tickSizePt  = 5
	titleSizePt = 7

	displayDPI = 150
	saveDPI    = 300
)

// Params returns the render parameters and a Scaler for a destination.
// The Scaler applies the destination's factor no matter what ambient
// context is active, for callers that pass values around rather than
// wrapping their script in Use/With.
func Params(dest string) (RenderParams, Scaler) {
	f := Factor(dest)
	p := RenderParams{
		FontFamily: "Arial",
		BaseSize:   baseSizePt * f,
		TickSize:   tickSizePt * f,
		TitleSize:  titleSizePt * f,
		DisplayDPI: displayDPI / f, // keeps the on-screen size constant
		SaveDPI:    saveDPI,
		TextAsText: true,
	}
	scaler := func(values ...float64) []float64 {
		return ScaleBy(f, values...)
	}
	return p, scaler
}
