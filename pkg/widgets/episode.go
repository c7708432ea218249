package widgets

import "github.com/go-drift/surface/pkg/events"

// episode is the bounded lifetime of one gesture (a drag, or a menu
// being open) during which document-level listeners exist. It owns the
// listener handles so attach and detach stay exactly paired on every
// exit path; a leaked listener would keep firing on unrelated pointer
// traffic after the gesture ends.
type episode struct {
	events   *events.Dispatcher
	attached []*events.Listener
}

func newEpisode(d *events.Dispatcher) *episode {
	return &episode{events: d}
}

// active reports whether the episode currently holds listeners.
func (e *episode) active() bool {
	return len(e.attached) > 0
}

// begin attaches the handlers document-wide. Calling begin on an
// already-active episode is a no-op: an episode attaches exactly once.
func (e *episode) begin(handlers ...events.Handler) {
	if e.active() {
		return
	}
	for _, h := range handlers {
		e.attached = append(e.attached, e.events.AddListener(h))
	}
}

// end detaches every listener the episode attached. Safe to call on an
// inactive episode.
func (e *episode) end() {
	for _, l := range e.attached {
		e.events.RemoveListener(l)
	}
	e.attached = e.attached[:0]
}
