// Package pubfig computes the dimensions and font sizes a figure needs
// so that it imports into a downstream vector-graphics editor at its
// intended physical size.
//
// Nearly everywhere, 1pt = 1/72 inch. Figma instead treats a point as a
// CSS pixel (1/96 inch) and compensates by inflating all pt-denominated
// values by 96/72 on import: an SVG saved with a 5pt font imports with a
// 6.67pt font, and a figure saved 144pt wide imports 192 "pt" (pixels)
// wide. Factor returns this 96/72 correction for the "figma" destination
// and 1.0 for every other destination name, recognized or not.
//
// The factor is held in ambient context entered with Use or With and read
// by Scale and friends:
//
//	defer pubfig.Use(pubfig.DestFigma)()
//	dims := pubfig.Scale(3, 2) // 4, 2.667
//
// The library never drives a renderer itself. It hands back numbers (and
// render parameters, see Params) for the caller to feed into whatever
// produces the actual SVG or PDF. Raster-density arithmetic for pixel
// frames stays caller-side too; see DensityScale and RequestSize.
//
// The ambient factor is process-wide state intended for sequential figure
// scripts. Entering contexts with differing destinations from concurrent
// goroutines is unsupported.
package pubfig
