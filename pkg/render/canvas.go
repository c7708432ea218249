// Package render defines the drawing-surface abstraction widgets paint
// into, a recording canvas for headless use, and a raster canvas.
package render

import "github.com/go-drift/surface/pkg/graphics"

// Canvas is the 2D drawing surface a widget renders into. Coordinates
// are local to the canvas; the host decides where the canvas appears
// in the document.
type Canvas interface {
	// Size returns the canvas extent in logical pixels.
	Size() graphics.Size
	// Clear fills the whole canvas with a color.
	Clear(color graphics.Color)
	// FillRect fills a rectangle.
	FillRect(rect graphics.Rect, color graphics.Color)
	// StrokeRect outlines a rectangle with the given stroke width.
	StrokeRect(rect graphics.Rect, color graphics.Color, width float64)
	// FillCircle fills a circle.
	FillCircle(center graphics.Offset, radius float64, color graphics.Color)
	// DrawText draws a single line of text with its baseline-left
	// origin at the given position.
	DrawText(text string, origin graphics.Offset, style graphics.TextStyle)
}
