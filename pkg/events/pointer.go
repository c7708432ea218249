// Package events routes pointer events from a host event source to
// widget hit regions and document-level listeners.
package events

import "github.com/go-drift/surface/pkg/graphics"

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is a press (mouse down or touch start).
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while tracked.
	PointerPhaseMove
	// PointerPhaseUp is a release.
	PointerPhaseUp
	// PointerPhaseCancel aborts an interaction without a release.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent describes one pointer or touch event in document
// coordinates.
type PointerEvent struct {
	// PointerID distinguishes simultaneous pointers.
	PointerID int64
	// Position is the pointer location in document coordinates.
	Position graphics.Offset
	// Phase is the interaction stage.
	Phase PointerPhase
	// Target is the topmost hit region's target at Position.
	// Set by the dispatcher before delivery; nil when nothing was hit.
	Target any
}
