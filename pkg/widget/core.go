package widget

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-drift/surface/pkg/constraint"
)

// subscription pairs an observer callback with the context it is
// invoked on. Unsubscribe matches by context identity and callback
// function identity.
type subscription struct {
	ctx any
	fn  Observer
	pc  uintptr
}

// Core implements the mutation protocol and observer registry shared
// by every control. Concrete controls embed a *Core and drive its
// lifecycle from their constructor; only the protocol is shared, not
// rendering.
type Core struct {
	spec  constraint.Spec
	state map[string]float64
	subs  []subscription
	phase Phase

	// primary is the state field whose committed value observers are
	// notified with.
	primary string
	// renderFn repaints the owning control; installed at MarkRendered.
	renderFn func()
}

// NewCore returns a constructed core that validates mutations against
// spec and reports the primary field to observers.
func NewCore(spec constraint.Spec, primary string) *Core {
	return &Core{
		spec:    spec,
		state:   make(map[string]float64),
		phase:   PhaseConstructed,
		primary: primary,
	}
}

// Configure installs the initial state (validated through the spec)
// and advances to PhaseConfigured.
func (c *Core) Configure(initial map[string]float64) {
	for field, value := range c.spec.Apply(initial) {
		c.state[field] = value
	}
	if c.phase < PhaseConfigured {
		c.phase = PhaseConfigured
	}
}

// ReplaceSpec swaps the constraint spec and re-validates current state
// against it. Used when a control's value domain changes, e.g. a menu
// being given a new item list.
func (c *Core) ReplaceSpec(spec constraint.Spec) {
	c.spec = spec
	for field, value := range c.state {
		if spec.Constrains(field) {
			c.state[field] = spec.Fields[field].Apply(value)
		}
	}
}

// MarkRendered installs the control's repaint function and advances to
// PhaseRendered. Mutations are legal from here on.
func (c *Core) MarkRendered(renderFn func()) {
	c.renderFn = renderFn
	if c.phase < PhaseRendered {
		c.phase = PhaseRendered
	}
}

// MarkInteractive advances to PhaseInteractive once handlers are
// attached.
func (c *Core) MarkInteractive() {
	if c.phase < PhaseInteractive {
		c.phase = PhaseInteractive
	}
}

// Phase returns the current lifecycle phase.
func (c *Core) Phase() Phase {
	return c.phase
}

// Val returns the primary state value.
func (c *Core) Val() float64 {
	return c.state[c.primary]
}

// Get returns any state field's current value.
func (c *Core) Get(field string) float64 {
	return c.state[field]
}

// SetState validates delta, merges it into state, re-renders, then
// notifies every observer exactly once with the committed primary
// value. Use for user-driven changes that must propagate outward.
func (c *Core) SetState(delta map[string]float64) {
	c.mutate(delta)
	value := c.state[c.primary]
	for _, sub := range slices.Clone(c.subs) {
		sub.fn(sub.ctx, value)
	}
}

// SetInternalState validates, merges and re-renders like SetState but
// never notifies observers. Use when reflecting a value that
// originated elsewhere, to break the echo loop.
func (c *Core) SetInternalState(delta map[string]float64) {
	c.mutate(delta)
}

func (c *Core) mutate(delta map[string]float64) {
	if c.phase < PhaseRendered {
		panic(fmt.Sprintf("widget: mutate in phase %q, before the render tree exists", c.phase))
	}
	for field, value := range c.spec.Apply(delta) {
		c.state[field] = value
	}
	c.renderFn()
}

// Subscribe appends an observer entry. Entries persist until
// explicitly unsubscribed; duplicate subscriptions fire once each.
func (c *Core) Subscribe(ctx any, fn Observer) {
	if fn == nil {
		return
	}
	c.subs = append(c.subs, subscription{ctx: ctx, fn: fn, pc: callbackPC(fn)})
}

// Unsubscribe removes the first entry whose context and callback both
// match by identity. Unknown pairs are ignored.
func (c *Core) Unsubscribe(ctx any, fn Observer) {
	pc := callbackPC(fn)
	for i, sub := range c.subs {
		if sub.ctx == ctx && sub.pc == pc {
			c.subs = slices.Delete(c.subs, i, i+1)
			return
		}
	}
}

// ObserverCount returns the number of live subscriptions.
func (c *Core) ObserverCount() int {
	return len(c.subs)
}

// callbackPC returns an identity token for a callback. Go forbids
// comparing funcs directly; the code pointer is the closest stand-in
// for reference identity.
func callbackPC(fn Observer) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
