package widgets_test

import (
	"testing"

	"github.com/go-drift/surface/pkg/errors"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/surfacetest"
	"github.com/go-drift/surface/pkg/widgets"
)

func newTestMenu(t *testing.T, ct *surfacetest.ControlTester, opts widgets.DropMenuOptions) *widgets.DropMenu {
	t.Helper()
	env, _, _ := ct.NewEnv(graphics.RectFromLTWH(0, 0, 100, 24))
	m, err := widgets.NewDropMenu(env, opts)
	if err != nil {
		t.Fatalf("NewDropMenu failed: %v", err)
	}
	return m
}

func TestDropMenuConstruction(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	ct := surfacetest.NewControlTester(t)
	env, _, _ := ct.NewEnv(graphics.RectFromLTWH(0, 0, 100, 24))

	if _, err := widgets.NewDropMenu(env, widgets.DropMenuOptions{}); err == nil {
		t.Error("expected a construction error for empty MenuItems")
	}
	if _, err := widgets.NewDropMenu(env, widgets.DropMenuOptions{
		MenuItems:       []string{"a", "b"},
		SelectedItemNum: 5,
	}); err == nil {
		t.Error("expected a construction error for out-of-range SelectedItemNum")
	}
}

func TestDropMenuInitialState(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems:       []string{"sine", "square", "saw"},
		SelectedItemNum: 1,
	})
	if m.Open() {
		t.Error("menu should start closed")
	}
	if m.SelectedItemNum() != 1 {
		t.Errorf("SelectedItemNum = %d, want 1", m.SelectedItemNum())
	}
	if m.HoverItemNum() != -1 {
		t.Errorf("HoverItemNum = %d, want -1", m.HoverItemNum())
	}
	if got := m.RowHeight(); got != 21 {
		t.Errorf("RowHeight = %v, want 21 for the default font size", got)
	}
	if size := m.OverlaySize(); size.Height != 63 {
		t.Errorf("overlay height = %v, want 3 rows of 21", size.Height)
	}
}

func TestDropMenuCommitScenario(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})

	notified := 0
	var got float64
	m.Subscribe(nil, func(_ any, v float64) {
		notified++
		got = v
	})

	// Press the box: the overlay opens directly below it.
	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	if !m.Open() {
		t.Fatal("press on box should open the menu")
	}
	if b := m.Overlay().Bounds(); b.Top != 24 || b.Left != 0 {
		t.Errorf("overlay bounds = %v, want anchored at (0, 24)", b)
	}

	// Slide over the third row, then release there.
	ct.SendPointerMove(id, graphics.Offset{X: 10, Y: 70})
	if m.HoverItemNum() != 2 {
		t.Fatalf("HoverItemNum = %d, want 2", m.HoverItemNum())
	}
	if notified != 0 {
		t.Fatalf("hover tracking must not notify, got %d", notified)
	}
	ct.SendPointerUp(id, graphics.Offset{X: 10, Y: 70})

	if notified != 1 {
		t.Fatalf("commit should notify exactly once, got %d", notified)
	}
	if got != 2 {
		t.Errorf("observer received %v, want 2", got)
	}
	if m.SelectedItemNum() != 2 {
		t.Errorf("SelectedItemNum = %d, want 2", m.SelectedItemNum())
	}
	if m.Open() {
		t.Error("menu should close on commit")
	}
	if m.HoverItemNum() != -1 {
		t.Errorf("HoverItemNum = %d, want -1 after close", m.HoverItemNum())
	}

	// Reopen and release outside: the committed selection survives and
	// observers stay quiet.
	id = ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerUp(id, graphics.Offset{X: 500, Y: 500})
	if m.SelectedItemNum() != 2 {
		t.Errorf("SelectedItemNum = %d, want 2 after cancelled reopen", m.SelectedItemNum())
	}
	if notified != 1 {
		t.Errorf("cancel must not notify again, got %d", notified)
	}
}

func TestDropMenuReleaseOutsideCancels(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems:       []string{"sine", "square", "saw"},
		SelectedItemNum: 1,
	})

	notified := 0
	m.Subscribe(nil, func(any, float64) { notified++ })

	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerMove(id, graphics.Offset{X: 10, Y: 30})
	if m.HoverItemNum() != 0 {
		t.Fatalf("HoverItemNum = %d, want 0", m.HoverItemNum())
	}
	ct.SendPointerUp(id, graphics.Offset{X: 500, Y: 500})

	if m.Open() {
		t.Error("menu should close on release outside the overlay")
	}
	if m.SelectedItemNum() != 1 {
		t.Errorf("SelectedItemNum = %d, selection must survive a cancel", m.SelectedItemNum())
	}
	if notified != 0 {
		t.Errorf("cancelled interaction must not notify, got %d", notified)
	}
}

func TestDropMenuReleaseOverBoxCancels(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})

	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerUp(id, graphics.Offset{X: 10, Y: 10})

	if m.Open() {
		t.Error("release over the box should close without committing")
	}
	if m.SelectedItemNum() != 0 {
		t.Errorf("SelectedItemNum = %d, want unchanged 0", m.SelectedItemNum())
	}
}

func TestDropMenuListenerBalance(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})

	baseline := ct.ListenerCount()

	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	if got := ct.ListenerCount(); got != baseline+1 {
		t.Errorf("open menu should hold one document listener, got %d over baseline %d", got, baseline)
	}
	ct.SendPointerUp(id, graphics.Offset{X: 500, Y: 500})
	if got := ct.ListenerCount(); got != baseline {
		t.Errorf("listener count %d != baseline %d after cancel", got, baseline)
	}

	id = ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerMove(id, graphics.Offset{X: 10, Y: 30})
	ct.SendPointerUp(id, graphics.Offset{X: 10, Y: 30})
	if got := ct.ListenerCount(); got != baseline {
		t.Errorf("listener count %d != baseline %d after commit", got, baseline)
	}
	if m.Open() {
		t.Error("menu should be closed after commit")
	}
}

func TestDropMenuBoxPreviewsHoveredItem(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	env, canvas, _ := ct.NewEnv(graphics.RectFromLTWH(0, 0, 100, 24))
	m, err := widgets.NewDropMenu(env, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})
	if err != nil {
		t.Fatalf("NewDropMenu failed: %v", err)
	}

	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerMove(id, graphics.Offset{X: 10, Y: 50})

	texts := canvas.DrawnText()
	if len(texts) != 1 {
		t.Fatalf("box should draw one label, got %d", len(texts))
	}
	if texts[0].Text != "square" {
		t.Errorf("box label = %q, want the hovered item %q", texts[0].Text, "square")
	}

	ct.SendPointerUp(id, graphics.Offset{X: 500, Y: 500})
	texts = canvas.DrawnText()
	if len(texts) != 1 || texts[0].Text != "sine" {
		t.Errorf("box label should revert to the selection after cancel, got %v", texts)
	}
	if m.Open() {
		t.Error("menu should be closed")
	}
}

func TestDropMenuOverlayFollowsBox(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	env, _, bounds := ct.NewEnv(graphics.RectFromLTWH(0, 0, 100, 24))
	m, err := widgets.NewDropMenu(env, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})
	if err != nil {
		t.Fatalf("NewDropMenu failed: %v", err)
	}

	// The surrounding layout moves the box; the next open must anchor
	// the overlay under the new position.
	*bounds = graphics.RectFromLTWH(200, 40, 100, 24)
	id := ct.SendPointerDown(graphics.Offset{X: 210, Y: 50})
	if !m.Open() {
		t.Fatal("press on the moved box should open the menu")
	}
	b := m.Overlay().Bounds()
	if b.Left != 200 || b.Top != 64 {
		t.Errorf("overlay bounds = %v, want anchored at (200, 64)", b)
	}
	ct.SendPointerUp(id, graphics.Offset{X: 0, Y: 0})
}

func TestDropMenuSetItems(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems: []string{"a", "b", "c", "d", "e"},
	})
	m.SetState(map[string]float64{"selectedItemNum": 4})

	narrow := m.OverlaySize()
	m.SetItems([]string{"first item", "second item"})

	if got := m.OverlaySize(); got.Width <= narrow.Width {
		t.Errorf("overlay width %v should grow for wider items (was %v)", got.Width, narrow.Width)
	}
	if got := m.OverlaySize(); got.Height != 2*m.RowHeight() {
		t.Errorf("overlay height %v, want 2 rows", got.Height)
	}
	if got := m.SelectedItemNum(); got != 1 {
		t.Errorf("selection %d should clamp into the new item range, want 1", got)
	}

	// Empty replacement is ignored.
	m.SetItems(nil)
	if len(m.Items()) != 2 {
		t.Errorf("empty SetItems must be a no-op, got %d items", len(m.Items()))
	}
}

func TestDropMenuSetItemsWhileOpen(t *testing.T) {
	ct := surfacetest.NewControlTester(t)
	m := newTestMenu(t, ct, widgets.DropMenuOptions{
		MenuItems: []string{"sine", "square", "saw"},
	})

	id := ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	m.SetItems([]string{"x", "y"})

	if m.Open() {
		t.Error("replacing items should close an open menu")
	}
	if got := ct.ListenerCount(); got != 0 {
		t.Errorf("listener count %d after SetItems while open, want 0", got)
	}

	// A fresh open uses the new rows and the new overlay identity for
	// the release-target check.
	ct.SendPointerUp(id, graphics.Offset{X: 0, Y: 0})
	id = ct.SendPointerDown(graphics.Offset{X: 10, Y: 10})
	ct.SendPointerMove(id, graphics.Offset{X: 5, Y: 24 + m.RowHeight() + 2})
	ct.SendPointerUp(id, graphics.Offset{X: 5, Y: 24 + m.RowHeight() + 2})
	if m.SelectedItemNum() != 1 {
		t.Errorf("SelectedItemNum = %d, want 1 after committing the second new row", m.SelectedItemNum())
	}
}
