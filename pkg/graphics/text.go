package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16

	// basicFaceHeight is the design size of the bundled measuring face.
	basicFaceHeight = 13
)

// TextStyle describes how a run of text is measured and painted.
type TextStyle struct {
	// FontFamily selects the face by name. Empty uses the bundled face.
	FontFamily string
	// FontSize is the size in logical pixels.
	FontSize float64
	// Color is the fill color.
	Color Color
}

// Measurer resolves the pixel extent of a string in a given style.
// Render backends with access to real font metrics provide their own;
// the default scales the bundled fixed-size face.
type Measurer interface {
	Measure(text string, style TextStyle) Size
}

// FaceMeasurer measures with an x/image font.Face, scaling from the
// face's design height to the requested font size.
type FaceMeasurer struct {
	Face font.Face
	// DesignHeight is the pixel height the face was designed at.
	DesignHeight float64
}

// Measure returns the advance width and line height of text at style's size.
func (m FaceMeasurer) Measure(text string, style TextStyle) Size {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	scale := 1.0
	if m.DesignHeight > 0 {
		scale = size / m.DesignHeight
	}
	advance := font.MeasureString(m.Face, text)
	metrics := m.Face.Metrics()
	height := float64(metrics.Ascent+metrics.Descent) / 64
	return Size{
		Width:  float64(advance) / 64 * scale,
		Height: height * scale,
	}
}

// DefaultMeasurer returns a measurer backed by the bundled basicfont face.
func DefaultMeasurer() Measurer {
	return FaceMeasurer{Face: basicfont.Face7x13, DesignHeight: basicFaceHeight}
}

// MeasureString measures text with the default measurer.
func MeasureString(text string, style TextStyle) Size {
	return DefaultMeasurer().Measure(text, style)
}
