package events

import (
	"slices"

	"github.com/go-drift/surface/pkg/errors"
	"github.com/go-drift/surface/pkg/graphics"
)

// Handler receives pointer events.
type Handler func(PointerEvent)

// Region is a hit-testable area a widget registers with the dispatcher.
// Bounds is re-evaluated on every dispatch so a region follows its
// widget when layout changes; a region whose bounds are empty is
// skipped, which is how hidden overlay surfaces opt out of hit testing.
type Region struct {
	// Target identifies the region in PointerEvent.Target.
	Target any
	// Bounds returns the region's current document-coordinate bounds.
	Bounds func() graphics.Rect
	// Handler receives events whose position hits this region.
	Handler Handler
}

// Listener is the handle for a registered document-level handler.
// Holding the handle makes detachment exact: removing it cannot
// accidentally remove another listener wrapping the same function.
type Listener struct {
	handler Handler
}

// Dispatcher owns the ordered hit regions and document-level listeners
// of one document. All methods must be called from the host's event
// loop; the dispatcher does no locking.
type Dispatcher struct {
	regions   []*Region
	listeners []*Listener
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddRegion registers a hit region. Later-added regions are hit first,
// so overlays registered after base surfaces naturally sit on top.
func (d *Dispatcher) AddRegion(r *Region) {
	if r == nil || r.Bounds == nil {
		return
	}
	d.regions = append(d.regions, r)
}

// RemoveRegion unregisters a region by identity.
func (d *Dispatcher) RemoveRegion(r *Region) {
	for i, reg := range d.regions {
		if reg == r {
			d.regions = slices.Delete(d.regions, i, i+1)
			return
		}
	}
}

// AddListener attaches a document-level handler that receives every
// event regardless of position, after local region delivery. The
// returned handle must be kept for removal.
func (d *Dispatcher) AddListener(fn Handler) *Listener {
	l := &Listener{handler: fn}
	d.listeners = append(d.listeners, l)
	return l
}

// RemoveListener detaches the listener identified by handle.
// Removing an already-removed listener is a no-op.
func (d *Dispatcher) RemoveListener(l *Listener) {
	for i, reg := range d.listeners {
		if reg == l {
			d.listeners = slices.Delete(d.listeners, i, i+1)
			return
		}
	}
}

// ListenerCount returns the number of attached document-level
// listeners. Interaction episodes must leave this at its pre-episode
// value on every exit path.
func (d *Dispatcher) ListenerCount() int {
	return len(d.listeners)
}

// Dispatch hit-tests the event position against the registered regions
// (topmost first), sets the event's Target, delivers to the hit
// region's handler, then to every document-level listener in
// attachment order. A panicking handler is reported and does not stop
// delivery to the remaining listeners.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	for i := len(d.regions) - 1; i >= 0; i-- {
		r := d.regions[i]
		bounds := r.Bounds()
		if bounds.IsEmpty() || !bounds.Contains(ev.Position) {
			continue
		}
		ev.Target = r.Target
		if r.Handler != nil {
			deliver(r.Handler, ev)
		}
		break
	}

	// Snapshot: a listener detaching itself (or its episode peers)
	// mid-dispatch must not perturb this delivery round.
	snapshot := slices.Clone(d.listeners)
	for _, l := range snapshot {
		if l.handler != nil {
			deliver(l.handler, ev)
		}
	}
}

func deliver(h Handler, ev PointerEvent) {
	defer errors.Recover("events.Dispatch")
	h(ev)
}
