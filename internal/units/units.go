// Package units converts semantic measurements (millimeters, points,
// character widths) into the native units of WordprocessingML: twips
// (twentieths of a point) for lengths and half-points for font sizes.
package units

import "math"

// Conversion ratios between semantic and native units.
const (
	// TwipsPerMm is the fixed ratio between millimeters and twips.
	// 1 inch = 25.4 mm = 1440 twips, so 1 mm = 56.7 twips (rounded).
	TwipsPerMm = 56.7

	// TwipsPerPt converts points to twips (1 pt = 20 twips).
	TwipsPerPt = 20

	// HalfPointsPerPt converts points to the native font size unit.
	HalfPointsPerPt = 2

	// LinePerMultiple converts a line spacing multiplier to the native
	// w:line value (240ths of a single line).
	LinePerMultiple = 240

	// HundredthsPerChar converts character-unit indents to the native
	// w:firstLineChars value (hundredths of a character width).
	HundredthsPerChar = 100
)

// MmToTwips converts millimeters to twips, rounded to nearest.
func MmToTwips(mm float64) int {
	return int(math.Round(mm * TwipsPerMm))
}

// TwipsToMm converts twips back to millimeters.
func TwipsToMm(twips int) float64 {
	return float64(twips) / TwipsPerMm
}

// PtToTwips converts points to twips, rounded to nearest.
func PtToTwips(pt float64) int {
	return int(math.Round(pt * TwipsPerPt))
}

// PtToHalfPoints converts a font size in points to half-points,
// rounded to nearest.
func PtToHalfPoints(pt float64) int {
	return int(math.Round(pt * HalfPointsPerPt))
}

// HalfPointsToPt converts half-points back to points.
func HalfPointsToPt(hp int) float64 {
	return float64(hp) / HalfPointsPerPt
}

// MultipleToLine converts a line spacing multiplier (e.g. 1.5) to the
// native w:line value, rounded to nearest.
func MultipleToLine(multiple float64) int {
	return int(math.Round(multiple * LinePerMultiple))
}

// CharsToFirstLineChars converts a first-line indent expressed in
// character widths to the native w:firstLineChars value.
func CharsToFirstLineChars(chars float64) int {
	return int(math.Round(chars * HundredthsPerChar))
}
