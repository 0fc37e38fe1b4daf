package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the font face used for all text. The framework ships a single
// fixed-size face so that layout is deterministic across hosts.
var Face font.Face = basicfont.Face7x13

// TextStyle describes how a run of text is painted.
type TextStyle struct {
	Color Color
	// Bold paints the run twice, one pixel apart.
	Bold bool
}

// MeasureText returns the size of a single line of text in Face.
func MeasureText(text string) Size {
	metrics := Face.Metrics()
	width := font.MeasureString(Face, text)
	return Size{
		Width:  float64(width.Ceil()),
		Height: float64(metrics.Height.Ceil()),
	}
}

// LineHeight returns the height of one line of text.
func LineHeight() float64 {
	return float64(Face.Metrics().Height.Ceil())
}

// ascent returns the distance from the top of a line to its baseline.
func ascent() int {
	return Face.Metrics().Ascent.Ceil()
}
