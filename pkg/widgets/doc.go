// Package widgets provides the concrete controls of the Surface kit:
// a vertical drag-to-set Slider and a two-surface DropMenu.
//
// Controls are constructed against a widget.Env (canvas, bounds,
// pointer dispatcher, layer factory) and are fully interactive as soon
// as the constructor returns. Reading and writing values goes through
// the widget.Control API; pointer interaction is driven entirely by
// the dispatcher the host feeds events into.
package widgets
