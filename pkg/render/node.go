package render

import "github.com/go-drift/surface/pkg/graphics"

// Node is one element of a widget's render tree. A node holds no state
// of its own: its attribute funcs derive everything from the owning
// widget's state, options and dims, so repainting a node is always
// just re-evaluating them.
type Node interface {
	Paint(canvas Canvas)
}

// RectNode paints a filled, optionally stroked rectangle.
type RectNode struct {
	Rect   func() graphics.Rect
	Fill   func() graphics.Color
	Stroke func() graphics.Color
	// StrokeWidth is only consulted when Stroke is set.
	StrokeWidth float64
}

func (n *RectNode) Paint(canvas Canvas) {
	rect := n.Rect()
	if n.Fill != nil {
		canvas.FillRect(rect, n.Fill())
	}
	if n.Stroke != nil {
		canvas.StrokeRect(rect, n.Stroke(), n.StrokeWidth)
	}
}

// CircleNode paints a filled circle.
type CircleNode struct {
	Center func() graphics.Offset
	Radius func() float64
	Fill   func() graphics.Color
}

func (n *CircleNode) Paint(canvas Canvas) {
	canvas.FillCircle(n.Center(), n.Radius(), n.Fill())
}

// TextNode paints one line of text.
type TextNode struct {
	Text   func() string
	Origin func() graphics.Offset
	Style  func() graphics.TextStyle
}

func (n *TextNode) Paint(canvas Canvas) {
	canvas.DrawText(n.Text(), n.Origin(), n.Style())
}

// Tree is an ordered list of nodes painted back to front.
type Tree []Node

// Paint clears the canvas and paints every node in order.
func (t Tree) Paint(canvas Canvas, background graphics.Color) {
	canvas.Clear(background)
	for _, n := range t {
		n.Paint(canvas)
	}
}
