package widgets

import (
	"github.com/go-drift/surface/pkg/constraint"
	"github.com/go-drift/surface/pkg/errors"
	"github.com/go-drift/surface/pkg/events"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/render"
	"github.com/go-drift/surface/pkg/widget"
)

// sliderDims is the fixed geometry computed once at construction.
type sliderDims struct {
	// body is the track rect in local coordinates. Its bottom edge
	// maps to MinVal, its top edge to MaxVal.
	body graphics.Rect
	// handle size; the handle is centered on the value's pixel.
	handleW, handleH float64
}

// Slider is a vertical drag-to-set control. Pressing the track jumps
// the value to the touched position before the drag begins; pressing
// the handle drags relative to the grab point, scaled by
// MouseSensitivity. Observers are notified on every move, not just on
// release.
type Slider struct {
	core *widget.Core
	env  widget.Env
	o    SliderOptions
	dims sliderDims
	tree render.Tree

	drag *sliderDrag

	bodyRegion   *events.Region
	handleRegion *events.Region
}

// sliderDrag is the state of one Idle→Dragging episode.
type sliderDrag struct {
	*episode
	// relative drags scale pixel deltas; absolute drags recompute the
	// value from the pointer position.
	relative bool
	startVal float64
	startY   float64
	// pointerID pins the episode to the pointer that started it.
	pointerID int64
}

// NewSlider builds a slider into env. It returns an error when the
// resolved options are contradictory (MinVal above MaxVal).
func NewSlider(env widget.Env, opts SliderOptions) (*Slider, error) {
	s := &Slider{env: env}

	// initOptions
	s.o = opts.withDefaults()
	if s.o.MinVal > s.o.MaxVal {
		err := errors.New("widgets.NewSlider", errors.KindConstruct,
			"minVal %v > maxVal %v", s.o.MinVal, s.o.MaxVal)
		errors.Report(err)
		return nil, err
	}

	// initConstraints
	s.core = widget.NewCore(constraint.NewSpec(map[string]constraint.Constraint{
		"val": {
			Min:       s.o.MinVal,
			Max:       s.o.MaxVal,
			Transform: constraint.FixedDecimals(s.o.Decimals),
		},
	}), "val")

	// initState
	initial := s.o.Val
	if initial < s.o.MinVal {
		initial = s.o.MinVal
	}
	s.core.Configure(map[string]float64{"val": initial})

	// buildRenderTree
	s.dims = computeSliderDims(s.o)
	s.tree = s.buildRenderTree()
	s.core.MarkRendered(s.paint)

	// attachHandlers
	s.attachHandlers()
	s.core.MarkInteractive()

	// first render
	s.Render()
	return s, nil
}

func computeSliderDims(o SliderOptions) sliderDims {
	trackW := o.Width / 3
	return sliderDims{
		body:    graphics.RectFromLTWH((o.Width-trackW)/2, 0, trackW, o.Height),
		handleW: o.Width,
		handleH: DefaultHandleHeight,
	}
}

func (s *Slider) buildRenderTree() render.Tree {
	return render.Tree{
		&render.RectNode{
			Rect: func() graphics.Rect { return s.dims.body },
			Fill: func() graphics.Color { return s.o.SliderBodyColor },
		},
		&render.RectNode{
			Rect: func() graphics.Rect { return s.handleRect() },
			Fill: func() graphics.Color { return s.o.SliderHandleColor },
		},
	}
}

// handleRect derives the handle's local rect from the current value.
func (s *Slider) handleRect() graphics.Rect {
	y := s.localPixelForVal(s.core.Val())
	return graphics.RectFromLTWH(0, y-s.dims.handleH/2, s.dims.handleW, s.dims.handleH)
}

func (s *Slider) attachHandlers() {
	// The whole control is an invisible hit overlay for track
	// touches; the handle region sits on top of it.
	s.bodyRegion = &events.Region{
		Target:  s,
		Bounds:  s.env.Bounds,
		Handler: s.onBodyPointer,
	}
	s.handleRegion = &events.Region{
		Target:  s,
		Bounds:  s.documentHandleRect,
		Handler: s.onHandlePointer,
	}
	s.env.Events.AddRegion(s.bodyRegion)
	s.env.Events.AddRegion(s.handleRegion)
	s.drag = &sliderDrag{episode: newEpisode(s.env.Events)}
}

func (s *Slider) documentHandleRect() graphics.Rect {
	bounds := s.env.Bounds()
	return s.handleRect().Translate(bounds.Left, bounds.Top)
}

// onBodyPointer starts an absolute drag: the value jumps to the
// touched position before Dragging is entered.
func (s *Slider) onBodyPointer(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseDown || s.drag.active() {
		return
	}
	s.SetState(map[string]float64{"val": s.TouchVal(ev.Position.Y)})
	s.beginDrag(false, ev)
}

// onHandlePointer starts a relative drag from the grab point.
func (s *Slider) onHandlePointer(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseDown || s.drag.active() {
		return
	}
	s.beginDrag(true, ev)
}

// beginDrag enters Dragging: move and release listeners go on the
// document, not the widget, so the gesture tracks the pointer outside
// the control's bounds.
func (s *Slider) beginDrag(relative bool, ev events.PointerEvent) {
	s.drag.relative = relative
	s.drag.startVal = s.core.Val()
	s.drag.startY = ev.Position.Y
	s.drag.pointerID = ev.PointerID
	s.drag.begin(s.onDragMove, s.onDragRelease)
}

func (s *Slider) onDragMove(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseMove || ev.PointerID != s.drag.pointerID {
		return
	}
	var val float64
	if s.drag.relative {
		travel := s.dims.body.Height()
		perPixel := (s.o.MaxVal - s.o.MinVal) / travel * s.o.MouseSensitivity
		val = s.drag.startVal + (s.drag.startY-ev.Position.Y)*perPixel
	} else {
		val = s.TouchVal(ev.Position.Y)
	}
	// Drag-originated, so observers hear every move.
	s.SetState(map[string]float64{"val": val})
}

// onDragRelease exits Dragging on release or cancel anywhere in the
// document. Every exit path runs through drag.end; a missed detach
// here would leak a listener onto unrelated pointer traffic.
func (s *Slider) onDragRelease(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseUp && ev.Phase != events.PointerPhaseCancel {
		return
	}
	if ev.PointerID != s.drag.pointerID {
		return
	}
	s.drag.end()
}

// TouchVal converts a document-coordinate vertical position into a raw
// value by inverse geometry: pixel 0 of the track's top maps to
// MaxVal. The result is unclamped; commit it through SetState.
func (s *Slider) TouchVal(docY float64) float64 {
	bounds := s.env.Bounds()
	localY := docY - bounds.Top
	frac := (s.dims.body.Bottom - localY) / s.dims.body.Height()
	return s.o.MinVal + frac*(s.o.MaxVal-s.o.MinVal)
}

// PixelForVal is TouchVal's inverse: the document-coordinate vertical
// position whose touch would produce val.
func (s *Slider) PixelForVal(val float64) float64 {
	bounds := s.env.Bounds()
	return bounds.Top + s.localPixelForVal(val)
}

func (s *Slider) localPixelForVal(val float64) float64 {
	frac := (val - s.o.MinVal) / (s.o.MaxVal - s.o.MinVal)
	return s.dims.body.Bottom - frac*s.dims.body.Height()
}

// Dragging reports whether a drag episode is in progress.
func (s *Slider) Dragging() bool {
	return s.drag.active()
}

// Dispose detaches the slider's hit regions and any in-flight drag
// listeners.
func (s *Slider) Dispose() {
	s.drag.end()
	s.env.Events.RemoveRegion(s.handleRegion)
	s.env.Events.RemoveRegion(s.bodyRegion)
}

// Val returns the current value.
func (s *Slider) Val() float64 { return s.core.Val() }

// SetState commits a user- or externally-driven change and notifies
// observers.
func (s *Slider) SetState(delta map[string]float64) { s.core.SetState(delta) }

// SetInternalState reflects a model-originated value without
// notifying, preventing the model→UI→model echo.
func (s *Slider) SetInternalState(delta map[string]float64) { s.core.SetInternalState(delta) }

// Subscribe registers an observer of committed values.
func (s *Slider) Subscribe(ctx any, fn widget.Observer) { s.core.Subscribe(ctx, fn) }

// Unsubscribe removes a subscription by identity.
func (s *Slider) Unsubscribe(ctx any, fn widget.Observer) { s.core.Unsubscribe(ctx, fn) }

// Render repaints the full render tree.
func (s *Slider) Render() { s.paint() }

func (s *Slider) paint() {
	s.tree.Paint(s.env.Canvas, graphics.ColorTransparent)
}

var _ widget.Control = (*Slider)(nil)
