package widget_test

import (
	"math"
	"testing"

	"github.com/go-drift/surface/pkg/constraint"
	"github.com/go-drift/surface/pkg/widget"
)

func newRenderedCore(renders *int) *widget.Core {
	spec := constraint.NewSpec(map[string]constraint.Constraint{
		"val": {Min: 0, Max: 127, Transform: constraint.Integers()},
	})
	c := widget.NewCore(spec, "val")
	c.Configure(map[string]float64{"val": 0})
	c.MarkRendered(func() {
		if renders != nil {
			*renders++
		}
	})
	return c
}

func TestSetStateNotifiesOnce(t *testing.T) {
	c := newRenderedCore(nil)

	notified := 0
	var got float64
	ctx := &struct{ name string }{"host"}
	c.Subscribe(ctx, func(obsCtx any, v float64) {
		notified++
		got = v
		if obsCtx != ctx {
			t.Error("observer should be invoked with its subscription context")
		}
	})

	c.SetState(map[string]float64{"val": 63.7})
	if notified != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", notified)
	}
	if got != 64 {
		t.Errorf("observer should receive the validated value, got %v", got)
	}
}

func TestSetInternalStateNeverNotifies(t *testing.T) {
	renders := 0
	c := newRenderedCore(&renders)

	notified := 0
	c.Subscribe(nil, func(any, float64) { notified++ })

	c.SetInternalState(map[string]float64{"val": 42})
	if notified != 0 {
		t.Fatalf("internal mutation must not notify, got %d notifications", notified)
	}
	if renders != 1 {
		t.Errorf("internal mutation must still re-render, got %d renders", renders)
	}
	if c.Val() != 42 {
		t.Errorf("internal mutation must still commit state, got %v", c.Val())
	}
}

func TestRangeInvariantUnderArbitraryDeltas(t *testing.T) {
	c := newRenderedCore(nil)
	inputs := []float64{-1e9, -1, 0, 12.3, 127, 128, 1e9, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range inputs {
		c.SetState(map[string]float64{"val": v})
		if got := c.Val(); got < 0 || got > 127 {
			t.Errorf("Val() = %v out of range after delta %v", got, v)
		}
		c.SetInternalState(map[string]float64{"val": v * 3})
		if got := c.Val(); got < 0 || got > 127 {
			t.Errorf("Val() = %v out of range after internal delta %v", got, v*3)
		}
	}
}

func TestStrictSpecIgnoresUnknownFields(t *testing.T) {
	c := newRenderedCore(nil)
	c.SetState(map[string]float64{"bogus": 99})
	if c.Get("bogus") != 0 {
		t.Error("unconstrained field should be dropped under the strict spec")
	}
}

func TestMutateBeforeRenderedPanics(t *testing.T) {
	spec := constraint.NewSpec(map[string]constraint.Constraint{"val": {Min: 0, Max: 1}})
	c := widget.NewCore(spec, "val")
	c.Configure(map[string]float64{"val": 0})

	defer func() {
		if recover() == nil {
			t.Error("mutation before PhaseRendered must panic")
		}
	}()
	c.SetState(map[string]float64{"val": 1})
}

func TestLifecyclePhases(t *testing.T) {
	spec := constraint.NewSpec(map[string]constraint.Constraint{"val": {Min: 0, Max: 1}})
	c := widget.NewCore(spec, "val")
	if c.Phase() != widget.PhaseConstructed {
		t.Errorf("new core should be constructed, got %v", c.Phase())
	}
	c.Configure(nil)
	if c.Phase() != widget.PhaseConfigured {
		t.Errorf("expected configured, got %v", c.Phase())
	}
	c.MarkRendered(func() {})
	if c.Phase() != widget.PhaseRendered {
		t.Errorf("expected rendered, got %v", c.Phase())
	}
	c.MarkInteractive()
	if c.Phase() != widget.PhaseInteractive {
		t.Errorf("expected interactive, got %v", c.Phase())
	}
}

func TestUnsubscribeMatchesByIdentity(t *testing.T) {
	c := newRenderedCore(nil)

	calls := map[string]int{}
	mk := func(name string) widget.Observer {
		return func(any, float64) { calls[name]++ }
	}
	fnA := mk("a")
	fnB := mk("b")
	ctx1 := &struct{}{}
	ctx2 := &struct{}{}

	c.Subscribe(ctx1, fnA)
	c.Subscribe(ctx2, fnB)

	// Same callback, wrong context: nothing is removed.
	c.Unsubscribe(ctx2, fnA)
	if c.ObserverCount() != 2 {
		t.Fatalf("mismatched pair should remove nothing, count = %d", c.ObserverCount())
	}

	c.Unsubscribe(ctx1, fnA)
	if c.ObserverCount() != 1 {
		t.Fatalf("expected 1 subscription left, got %d", c.ObserverCount())
	}

	c.SetState(map[string]float64{"val": 5})
	if calls["a"] != 0 || calls["b"] != 1 {
		t.Errorf("unexpected calls after unsubscribe: %v", calls)
	}
}

func TestObserversNotifiedInSubscriptionOrder(t *testing.T) {
	c := newRenderedCore(nil)
	var order []string
	c.Subscribe(nil, func(any, float64) { order = append(order, "first") })
	c.Subscribe("x", func(any, float64) { order = append(order, "second") })
	c.SetState(map[string]float64{"val": 1})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected notification order: %v", order)
	}
}

func TestReplaceSpecRevalidatesState(t *testing.T) {
	renders := 0
	c := newRenderedCore(&renders)
	c.SetInternalState(map[string]float64{"val": 100})

	c.ReplaceSpec(constraint.NewSpec(map[string]constraint.Constraint{
		"val": {Min: 0, Max: 10, Transform: constraint.Integers()},
	}))
	if c.Val() != 10 {
		t.Errorf("state should be re-clamped to the new spec, got %v", c.Val())
	}
}
