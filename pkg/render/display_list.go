package render

import "github.com/go-drift/surface/pkg/graphics"

// Op is one recorded drawing operation.
type Op interface {
	// Replay executes the operation onto another canvas.
	Replay(canvas Canvas)
}

// ClearOp records a Clear call.
type ClearOp struct {
	Color graphics.Color
}

func (o ClearOp) Replay(c Canvas) { c.Clear(o.Color) }

// FillRectOp records a FillRect call.
type FillRectOp struct {
	Rect  graphics.Rect
	Color graphics.Color
}

func (o FillRectOp) Replay(c Canvas) { c.FillRect(o.Rect, o.Color) }

// StrokeRectOp records a StrokeRect call.
type StrokeRectOp struct {
	Rect  graphics.Rect
	Color graphics.Color
	Width float64
}

func (o StrokeRectOp) Replay(c Canvas) { c.StrokeRect(o.Rect, o.Color, o.Width) }

// FillCircleOp records a FillCircle call.
type FillCircleOp struct {
	Center graphics.Offset
	Radius float64
	Color  graphics.Color
}

func (o FillCircleOp) Replay(c Canvas) { c.FillCircle(o.Center, o.Radius, o.Color) }

// DrawTextOp records a DrawText call.
type DrawTextOp struct {
	Text   string
	Origin graphics.Offset
	Style  graphics.TextStyle
}

func (o DrawTextOp) Replay(c Canvas) { c.DrawText(o.Text, o.Origin, o.Style) }

// DisplayList is a Canvas that records its drawing operations instead
// of rasterizing them. It backs headless widget testing and can be
// replayed onto a real canvas.
type DisplayList struct {
	size graphics.Size
	ops  []Op
}

// NewDisplayList returns an empty recording canvas of the given size.
func NewDisplayList(size graphics.Size) *DisplayList {
	return &DisplayList{size: size}
}

func (d *DisplayList) Size() graphics.Size { return d.size }

// Clear drops previously recorded operations; a widget's render pass
// repaints its surface in full, so anything before the clear is dead.
func (d *DisplayList) Clear(color graphics.Color) {
	d.ops = d.ops[:0]
	d.ops = append(d.ops, ClearOp{Color: color})
}

func (d *DisplayList) FillRect(rect graphics.Rect, color graphics.Color) {
	d.ops = append(d.ops, FillRectOp{Rect: rect, Color: color})
}

func (d *DisplayList) StrokeRect(rect graphics.Rect, color graphics.Color, width float64) {
	d.ops = append(d.ops, StrokeRectOp{Rect: rect, Color: color, Width: width})
}

func (d *DisplayList) FillCircle(center graphics.Offset, radius float64, color graphics.Color) {
	d.ops = append(d.ops, FillCircleOp{Center: center, Radius: radius, Color: color})
}

func (d *DisplayList) DrawText(text string, origin graphics.Offset, style graphics.TextStyle) {
	d.ops = append(d.ops, DrawTextOp{Text: text, Origin: origin, Style: style})
}

// Ops returns the recorded operations since the last Clear.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Replay executes the recorded operations onto canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.Replay(canvas)
	}
}

// FilledRects returns the rectangles of all recorded FillRect calls,
// in draw order.
func (d *DisplayList) FilledRects() []FillRectOp {
	var rects []FillRectOp
	for _, op := range d.ops {
		if r, ok := op.(FillRectOp); ok {
			rects = append(rects, r)
		}
	}
	return rects
}

// DrawnText returns the text of all recorded DrawText calls, in draw
// order.
func (d *DisplayList) DrawnText() []DrawTextOp {
	var texts []DrawTextOp
	for _, op := range d.ops {
		if t, ok := op.(DrawTextOp); ok {
			texts = append(texts, t)
		}
	}
	return texts
}
