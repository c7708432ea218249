package widgets

import (
	"math"

	"github.com/go-drift/surface/pkg/constraint"
	"github.com/go-drift/surface/pkg/errors"
	"github.com/go-drift/surface/pkg/events"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/render"
	"github.com/go-drift/surface/pkg/widget"
)

// menuDims is the overlay geometry derived from the item labels. It is
// measured once per item-list assignment and cached until the list is
// reassigned.
type menuDims struct {
	rowH  float64
	listW float64
	listH float64
}

// DropMenu is a two-surface selection control: a closed box showing
// the current selection, and an overlay layer listing every item while
// open. Releasing over the overlay commits the hovered row; releasing
// anywhere else dismisses without committing.
type DropMenu struct {
	core  *widget.Core
	env   widget.Env
	o     DropMenuOptions
	items []string
	dims  menuDims

	overlay     render.Layer
	boxTree     render.Tree
	overlayTree render.Tree

	open *episode

	boxRegion     *events.Region
	overlayRegion *events.Region
}

// NewDropMenu builds a drop menu into env. It returns an error when
// MenuItems is empty or the initial selection is out of range.
func NewDropMenu(env widget.Env, opts DropMenuOptions) (*DropMenu, error) {
	d := &DropMenu{env: env}

	// initOptions
	d.o = opts.withDefaults()
	if len(d.o.MenuItems) == 0 {
		err := errors.New("widgets.NewDropMenu", errors.KindConstruct, "menuItems is empty")
		errors.Report(err)
		return nil, err
	}
	if n := len(d.o.MenuItems); d.o.SelectedItemNum < 0 || d.o.SelectedItemNum >= n {
		err := errors.New("widgets.NewDropMenu", errors.KindConstruct,
			"selectedItemNum %d out of range [0, %d)", d.o.SelectedItemNum, n)
		errors.Report(err)
		return nil, err
	}
	if env.Layers == nil {
		err := errors.New("widgets.NewDropMenu", errors.KindConstruct,
			"host environment has no layer factory for the overlay")
		errors.Report(err)
		return nil, err
	}

	// initConstraints + initState
	d.core = widget.NewCore(d.spec(len(d.o.MenuItems)), "selectedItemNum")
	d.core.Configure(map[string]float64{
		"selectedItemNum": float64(d.o.SelectedItemNum),
		"hoverItemNum":    -1,
	})

	// buildRenderTree
	d.measureItems(d.o.MenuItems)
	d.boxTree = d.buildBoxTree()
	d.overlayTree = d.buildOverlayTree()
	d.core.MarkRendered(d.paint)

	// attachHandlers
	d.attachHandlers()
	d.core.MarkInteractive()

	d.Render()
	return d, nil
}

// spec returns the constraint spec for an n-item menu: selection in
// [0, n-1], hover in [-1, n-1] where -1 means "not hovering".
func (d *DropMenu) spec(n int) constraint.Spec {
	last := float64(n - 1)
	return constraint.NewSpec(map[string]constraint.Constraint{
		"selectedItemNum": {Min: 0, Max: last, Transform: constraint.Integers()},
		"hoverItemNum":    {Min: -1, Max: last, Transform: constraint.Integers()},
	})
}

// measureItems measures the new item list and replaces the overlay
// layer with one sized to it. The measured extents are the cache the
// hover math and layer placement read until the next reassignment.
func (d *DropMenu) measureItems(items []string) {
	d.items = items
	style := d.textStyle(false)

	d.dims.rowH = d.o.FontSize * rowHeightFactor
	maxW := 0.0
	for _, item := range items {
		maxW = math.Max(maxW, graphics.MeasureString(item, style).Width)
	}
	d.dims.listW = maxW + 2*d.o.Padding
	d.dims.listH = d.dims.rowH * float64(len(items))

	d.overlay = d.env.Layers(graphics.Size{Width: d.dims.listW, Height: d.dims.listH})
	if d.overlayRegion != nil {
		// The region's target must track the layer identity, or
		// release-target checks would compare against a dead layer.
		d.overlayRegion.Target = d.overlay
	}
}

// SetItems reassigns the item list, re-measuring extents, rebuilding
// the value constraints, and clamping the current selection into the
// new range. The selection change, if any, is internal: it did not
// come from the user.
func (d *DropMenu) SetItems(items []string) {
	if len(items) == 0 {
		return
	}
	if d.Open() {
		d.close()
	}
	d.measureItems(items)
	d.core.ReplaceSpec(d.spec(len(items)))
	d.overlayTree = d.buildOverlayTree()
	d.SetInternalState(map[string]float64{"hoverItemNum": -1})
}

func (d *DropMenu) textStyle(highlighted bool) graphics.TextStyle {
	color := d.o.FontColor
	if highlighted {
		color = d.o.SelectedItemFontColor
	}
	return graphics.TextStyle{
		FontFamily: d.o.FontFamily,
		FontSize:   d.o.FontSize,
		Color:      color,
	}
}

// buildBoxTree builds the closed box: a background, a border, and the
// display label. While open with a hovered row, the box previews the
// hovered item instead of the committed selection.
func (d *DropMenu) buildBoxTree() render.Tree {
	boxRect := func() graphics.Rect {
		size := d.env.Canvas.Size()
		return graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	}
	return render.Tree{
		&render.RectNode{
			Rect:        boxRect,
			Fill:        func() graphics.Color { return d.o.BackgroundColor },
			Stroke:      func() graphics.Color { return d.o.FontColor },
			StrokeWidth: 1,
		},
		&render.TextNode{
			Text: d.displayLabel,
			Origin: func() graphics.Offset {
				return graphics.Offset{X: d.o.Padding, Y: d.env.Canvas.Size().Height/2 + d.o.FontSize/2}
			},
			Style: func() graphics.TextStyle { return d.textStyle(false) },
		},
	}
}

func (d *DropMenu) displayLabel() string {
	idx := d.SelectedItemNum()
	if d.Open() {
		if hover := d.HoverItemNum(); hover >= 0 {
			idx = hover
		}
	}
	if idx < 0 || idx >= len(d.items) {
		return ""
	}
	return d.items[idx]
}

// buildOverlayTree builds one background and one label node per row.
// Node attributes close over the row index; everything else derives
// from current state at paint time.
func (d *DropMenu) buildOverlayTree() render.Tree {
	tree := make(render.Tree, 0, 2*len(d.items))
	for i, item := range d.items {
		row := i
		label := item
		rowRect := func() graphics.Rect {
			return graphics.RectFromLTWH(0, float64(row)*d.dims.rowH, d.dims.listW, d.dims.rowH)
		}
		hovered := func() bool { return d.HoverItemNum() == row }
		tree = append(tree,
			&render.RectNode{
				Rect: rowRect,
				Fill: func() graphics.Color {
					if hovered() {
						return d.o.SelectedItemBackgroundColor
					}
					return d.o.BackgroundColor
				},
			},
			&render.TextNode{
				Text: func() string { return label },
				Origin: func() graphics.Offset {
					return graphics.Offset{
						X: d.o.Padding,
						Y: float64(row)*d.dims.rowH + d.dims.rowH/2 + d.o.FontSize/2,
					}
				},
				Style: func() graphics.TextStyle { return d.textStyle(hovered()) },
			},
		)
	}
	return tree
}

func (d *DropMenu) attachHandlers() {
	d.boxRegion = &events.Region{
		Target:  d,
		Bounds:  d.env.Bounds,
		Handler: d.onBoxPointer,
	}
	d.overlayRegion = &events.Region{
		Target:  d.overlay,
		Bounds:  func() graphics.Rect { return d.overlay.Bounds() },
		Handler: d.onOverlayPointer,
	}
	d.env.Events.AddRegion(d.boxRegion)
	d.env.Events.AddRegion(d.overlayRegion)
	d.open = newEpisode(d.env.Events)
}

// onBoxPointer opens the menu on a press while closed. A press while
// open falls through to the document listener, which dismisses.
func (d *DropMenu) onBoxPointer(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseDown || d.Open() {
		return
	}
	d.openMenu()
}

// openMenu positions the overlay under the box's current on-screen
// bounds. The bounds are re-read every open: layout may have moved the
// box since last time.
func (d *DropMenu) openMenu() {
	bounds := d.env.Bounds()
	d.overlay.SetBounds(graphics.RectFromLTWH(bounds.Left, bounds.Bottom, d.dims.listW, d.dims.listH))
	d.overlay.SetVisible(true)
	// Listener registered only while open; both close paths remove it.
	d.open.begin(d.onDocumentRelease)
	d.Render()
}

// onOverlayPointer tracks hover from the vertical offset into the
// overlay, one fixed-height row per item.
func (d *DropMenu) onOverlayPointer(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseMove && ev.Phase != events.PointerPhaseDown {
		return
	}
	if !d.Open() {
		return
	}
	row := math.Floor((ev.Position.Y - d.overlay.Bounds().Top) / d.dims.rowH)
	// Hover is display-only state: redraw both surfaces, notify nobody.
	d.SetInternalState(map[string]float64{"hoverItemNum": row})
}

// onDocumentRelease resolves the open episode. Release over the
// overlay commits the hovered row and notifies; release anywhere else
// dismisses silently.
func (d *DropMenu) onDocumentRelease(ev events.PointerEvent) {
	if ev.Phase != events.PointerPhaseUp && ev.Phase != events.PointerPhaseCancel {
		return
	}
	if ev.Phase == events.PointerPhaseUp && ev.Target == d.overlay {
		if hover := d.HoverItemNum(); hover >= 0 {
			d.close()
			d.SetState(map[string]float64{"selectedItemNum": float64(hover)})
			return
		}
	}
	d.close()
}

// close hides the overlay, resets hover, and detaches the document
// listener. Every Open→Closed transition funnels through here.
func (d *DropMenu) close() {
	d.open.end()
	d.overlay.SetVisible(false)
	d.SetInternalState(map[string]float64{"hoverItemNum": -1})
}

// Open reports whether the overlay is showing.
func (d *DropMenu) Open() bool {
	return d.overlay != nil && d.overlay.Visible()
}

// SelectedItemNum returns the committed selection index.
func (d *DropMenu) SelectedItemNum() int {
	return int(d.core.Get("selectedItemNum"))
}

// HoverItemNum returns the hovered row index, -1 when not hovering.
func (d *DropMenu) HoverItemNum() int {
	return int(d.core.Get("hoverItemNum"))
}

// Items returns the current item labels.
func (d *DropMenu) Items() []string {
	return d.items
}

// RowHeight returns the fixed per-item overlay row height.
func (d *DropMenu) RowHeight() float64 {
	return d.dims.rowH
}

// OverlaySize returns the cached overlay extents.
func (d *DropMenu) OverlaySize() graphics.Size {
	return graphics.Size{Width: d.dims.listW, Height: d.dims.listH}
}

// Overlay exposes the overlay layer, mainly for hosts that composite
// it and for tests that need its identity.
func (d *DropMenu) Overlay() render.Layer {
	return d.overlay
}

// Dispose detaches regions and any open-episode listener.
func (d *DropMenu) Dispose() {
	d.open.end()
	d.env.Events.RemoveRegion(d.overlayRegion)
	d.env.Events.RemoveRegion(d.boxRegion)
}

// Val returns the committed selection index as the control's value.
func (d *DropMenu) Val() float64 { return d.core.Val() }

// SetState commits a selection change and notifies observers.
func (d *DropMenu) SetState(delta map[string]float64) { d.core.SetState(delta) }

// SetInternalState reflects a model-originated selection without
// notifying.
func (d *DropMenu) SetInternalState(delta map[string]float64) { d.core.SetInternalState(delta) }

// Subscribe registers an observer of committed selection indices.
func (d *DropMenu) Subscribe(ctx any, fn widget.Observer) { d.core.Subscribe(ctx, fn) }

// Unsubscribe removes a subscription by identity.
func (d *DropMenu) Unsubscribe(ctx any, fn widget.Observer) { d.core.Unsubscribe(ctx, fn) }

// Render repaints the closed box and, while open, the overlay.
func (d *DropMenu) Render() { d.paint() }

func (d *DropMenu) paint() {
	d.boxTree.Paint(d.env.Canvas, d.o.BackgroundColor)
	if d.Open() {
		d.overlayTree.Paint(d.overlay, d.o.BackgroundColor)
	}
}

var _ widget.Control = (*DropMenu)(nil)
