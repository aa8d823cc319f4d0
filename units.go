package pubfig

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	PtPerInch = 72.0 // print point
	PxPerInch = 96.0 // CSS pixel, what figma calls a pt
	MmPerInch = 25.4

	PtPerMm = PtPerInch / MmPerInch
	MmPerPt = MmPerInch / PtPerInch
)

func InchToPt(in float64) float64 { return in * PtPerInch }
func PtToInch(pt float64) float64 { return pt / PtPerInch }
func MmToPt(mm float64) float64   { return mm * PtPerMm }
func PtToMm(pt float64) float64   { return pt * MmPerPt }
func PxToPt(px float64) float64   { return px * PtPerInch / PxPerInch }
func PtToPx(pt float64) float64   { return pt * PxPerInch / PtPerInch }

// ParseLength parses a measurement string ("8.5in", "12pt", "10mm",
// "2.54cm", "96px", or a bare number taken as points) into points.
func ParseLength(s string) (pt float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty measurement")
	}

	unit := "pt"
	valStr := s
	for _, u := range []string{"in", "mm", "cm", "pt", "px"} {
		if strings.HasSuffix(s, u) {
			unit = u
			valStr = strings.TrimSpace(s[:len(s)-len(u)])
			break
		}
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("bad measurement %q: %v", s, err)
	}

	switch unit {
	case "in":
		return val * PtPerInch, nil
	case "mm":
		return val * PtPerMm, nil
	case "cm":
		return val * 10 * PtPerMm, nil
	case "px":
		return PxToPt(val), nil
	default: // pt
		return val, nil
	}
}
