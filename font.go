package pubfig

const ( // empirically determined for courier
	ptToHeight    = 100
	widthToHeight = 0.82
)

func getFontHeight(fontPt float64) (heightInches float64) {
	return fontPt / ptToHeight
}

func getCourierFontWidthFromHeight(height float64) float64 {
	return widthToHeight * height
}
