// Package surfacetest provides a headless host environment for
// exercising controls without a real display: a pointer dispatcher fed
// by synthetic events, display-list canvases, and display-list backed
// overlay layers.
package surfacetest

import (
	"testing"

	"github.com/go-drift/surface/pkg/events"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/render"
	"github.com/go-drift/surface/pkg/widget"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// ControlTester is an isolated headless document: it owns the pointer
// dispatcher and fabricates the host environment controls render into.
type ControlTester struct {
	// Events is the document-level dispatcher controls attach to.
	Events *events.Dispatcher

	layers []*render.BasicLayer
}

// NewControlTester returns an empty headless document.
func NewControlTester(t *testing.T) *ControlTester {
	t.Helper()
	return &ControlTester{Events: events.NewDispatcher()}
}

// NewEnv places a control at bounds and returns its environment along
// with the display list it paints into. The returned bounds pointer
// can be reassigned to simulate layout moving the control.
func (ct *ControlTester) NewEnv(bounds graphics.Rect) (widget.Env, *render.DisplayList, *graphics.Rect) {
	canvas := render.NewDisplayList(bounds.Size())
	current := new(graphics.Rect)
	*current = bounds
	env := widget.Env{
		Events: ct.Events,
		Canvas: canvas,
		Bounds: func() graphics.Rect { return *current },
		Layers: ct.newLayer,
	}
	return env, canvas, current
}

func (ct *ControlTester) newLayer(size graphics.Size) render.Layer {
	layer := render.NewBasicLayer(render.NewDisplayList(size))
	ct.layers = append(ct.layers, layer)
	return layer
}

// Layers returns every overlay layer created through this tester.
func (ct *ControlTester) Layers() []*render.BasicLayer {
	return ct.layers
}

// ListenerCount returns the dispatcher's document-level listener
// count, for listener-balance assertions.
func (ct *ControlTester) ListenerCount() int {
	return ct.Events.ListenerCount()
}

// SendPointerDown dispatches a pointer-down at pos and returns the
// allocated pointer ID for the rest of the gesture.
func (ct *ControlTester) SendPointerDown(pos graphics.Offset) int64 {
	id := allocPointerID()
	ct.Events.Dispatch(events.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     events.PointerPhaseDown,
	})
	return id
}

// SendPointerMove dispatches a pointer-move at pos.
func (ct *ControlTester) SendPointerMove(id int64, pos graphics.Offset) {
	ct.Events.Dispatch(events.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     events.PointerPhaseMove,
	})
}

// SendPointerUp dispatches a pointer-up at pos.
func (ct *ControlTester) SendPointerUp(id int64, pos graphics.Offset) {
	ct.Events.Dispatch(events.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     events.PointerPhaseUp,
	})
}

// SendPointerCancel dispatches a pointer-cancel at pos.
func (ct *ControlTester) SendPointerCancel(id int64, pos graphics.Offset) {
	ct.Events.Dispatch(events.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     events.PointerPhaseCancel,
	})
}

// TapAt dispatches a full down/up pair at pos.
func (ct *ControlTester) TapAt(pos graphics.Offset) {
	id := ct.SendPointerDown(pos)
	ct.SendPointerUp(id, pos)
}

// DragFrom dispatches a drag from start by delta in the given number
// of move steps, then releases at the end position.
func (ct *ControlTester) DragFrom(start, delta graphics.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	id := ct.SendPointerDown(start)
	end := start
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		end = graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		ct.SendPointerMove(id, end)
	}
	ct.SendPointerUp(id, end)
}
