// Package xlsx converts between SocialCalc sheets and Excel workbooks.
package xlsx

import "math"

// Excel measures column widths in characters of the default font. At the
// default 11pt Calibri a character is 7 pixels wide and a column carries
// 5 pixels of padding.
const (
	CharWidthPixels  = 7
	ColPaddingPixels = 5
)

// Row heights are points in Excel and pixels in SocialCalc.
// 1 point = 1/72 inch, and at 96 DPI 1 inch = 96 pixels, so 1px = 0.75pt.
const PointsPerPixel = 0.75

// PixelsToColWidth converts a SocialCalc column width to Excel characters.
func PixelsToColWidth(px int) float64 {
	if px <= ColPaddingPixels {
		return 0
	}
	w := float64(px-ColPaddingPixels) / CharWidthPixels
	return math.Round(w*100) / 100
}

// ColWidthToPixels converts an Excel column width to pixels.
func ColWidthToPixels(width float64) int {
	if width <= 0 {
		return 0
	}
	return int(math.Round(width*CharWidthPixels)) + ColPaddingPixels
}

// PixelsToPoints converts a row height in pixels to points.
func PixelsToPoints(px int) float64 {
	return float64(px) * PointsPerPixel
}

// PointsToPixels converts a row height in points to pixels.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt / PointsPerPixel))
}
