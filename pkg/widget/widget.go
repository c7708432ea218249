// Package widget defines the base control abstraction: lifecycle
// phases, the host environment, and the dual internal/external
// mutation protocol shared by every concrete control.
package widget

import (
	"github.com/go-drift/surface/pkg/events"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/render"
)

// Phase tracks where a control is in its lifecycle. Mutations are only
// legal once the render tree exists.
type Phase int

const (
	// PhaseConstructed: options not yet resolved.
	PhaseConstructed Phase = iota
	// PhaseConfigured: options, constraints and state initialized.
	PhaseConfigured
	// PhaseRendered: render tree built and painted at least once.
	PhaseRendered
	// PhaseInteractive: pointer handlers attached.
	PhaseInteractive
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructed:
		return "constructed"
	case PhaseConfigured:
		return "configured"
	case PhaseRendered:
		return "rendered"
	case PhaseInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Observer is notified with the committed value of an external
// mutation. It is invoked with the subscription's context as its first
// argument.
type Observer func(ctx any, value float64)

// Control is the public face of a concrete widget. State is owned by
// the control and mutated only through the dual mutation protocol:
// SetState re-renders and notifies observers, SetInternalState
// re-renders silently. Any change that did not originate from direct
// user interaction must go through SetInternalState or subscribers
// risk an echo loop with the model they push values into.
type Control interface {
	// Val returns the control's primary state value.
	Val() float64
	// SetState validates delta, merges it, re-renders, and notifies
	// every observer once with the committed value.
	SetState(delta map[string]float64)
	// SetInternalState is SetState without the notification.
	SetInternalState(delta map[string]float64)
	// Subscribe registers an observer with its context.
	Subscribe(ctx any, fn Observer)
	// Unsubscribe removes the subscription matching both the context
	// and the callback by identity.
	Unsubscribe(ctx any, fn Observer)
	// Render repaints the whole render tree from current state.
	Render()
}

// Env is the host environment a control lives in: the canvas it paints
// into, where that canvas sits in the document, the document's pointer
// dispatcher, and a factory for overlay layers.
type Env struct {
	// Events is the document-level pointer dispatcher.
	Events *events.Dispatcher
	// Canvas is the control's own drawing surface.
	Canvas render.Canvas
	// Bounds returns the canvas's current document-coordinate
	// position. It is a func, not a value: layout may move the
	// control between interactions.
	Bounds func() graphics.Rect
	// Layers creates overlay surfaces for controls that need one.
	Layers render.LayerFactory
}
