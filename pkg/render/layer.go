package render

import "github.com/go-drift/surface/pkg/graphics"

// Layer is a separately-owned drawing surface the host composites
// above the document, used for drop-down overlays. Its on-screen
// bounds are set by the owning widget each time it is shown.
type Layer interface {
	Canvas
	// SetVisible shows or hides the layer.
	SetVisible(visible bool)
	// Visible reports whether the layer is shown.
	Visible() bool
	// SetBounds positions the layer in document coordinates.
	SetBounds(bounds graphics.Rect)
	// Bounds returns the layer's document-coordinate position, or an
	// empty rect while hidden.
	Bounds() graphics.Rect
}

// LayerFactory creates overlay layers of a requested pixel size.
// The host supplies one; tests use display-list backed layers.
type LayerFactory func(size graphics.Size) Layer

// BasicLayer wraps any Canvas with visibility and placement, which is
// all a headless or raster host needs.
type BasicLayer struct {
	Canvas
	visible bool
	bounds  graphics.Rect
}

// NewBasicLayer returns a hidden layer drawing into canvas.
func NewBasicLayer(canvas Canvas) *BasicLayer {
	return &BasicLayer{Canvas: canvas}
}

func (l *BasicLayer) SetVisible(visible bool) { l.visible = visible }

func (l *BasicLayer) Visible() bool { return l.visible }

func (l *BasicLayer) SetBounds(bounds graphics.Rect) { l.bounds = bounds }

// Bounds returns the placement while visible and an empty rect while
// hidden, so hidden layers fall out of hit testing.
func (l *BasicLayer) Bounds() graphics.Rect {
	if !l.visible {
		return graphics.Rect{}
	}
	return l.bounds
}
