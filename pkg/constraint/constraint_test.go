package constraint_test

import (
	"math"
	"testing"

	"github.com/go-drift/surface/pkg/constraint"
)

func TestApplyClamps(t *testing.T) {
	c := constraint.Constraint{Min: 0, Max: 127}
	cases := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{63.5, 63.5},
		{127, 127},
		{400, 127},
		{math.Inf(1), 127},
		{math.Inf(-1), 0},
	}
	for _, tc := range cases {
		if got := c.Apply(tc.in); got != tc.want {
			t.Errorf("Apply(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestApplyNaNClampsToMin(t *testing.T) {
	c := constraint.Constraint{Min: 3, Max: 10}
	if got := c.Apply(math.NaN()); got != 3 {
		t.Errorf("Apply(NaN) = %v, want 3", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	c := constraint.Constraint{Min: 0, Max: 127, Transform: constraint.FixedDecimals(1)}
	for _, v := range []float64{-10, 0, 1.23456, 63.99, 127, 1000} {
		once := c.Apply(v)
		twice := c.Apply(once)
		if once != twice {
			t.Errorf("Apply not idempotent for %v: %v != %v", v, once, twice)
		}
	}
}

func TestTransformOutputReclamped(t *testing.T) {
	// A transform that pushes values past Max must not leak out of range.
	c := constraint.Constraint{
		Min:       0,
		Max:       10,
		Transform: func(v float64) float64 { return v * 2 },
	}
	if got := c.Apply(8); got != 10 {
		t.Errorf("Apply(8) = %v, want 10", got)
	}
}

func TestIntegersTransform(t *testing.T) {
	c := constraint.Constraint{Min: 0, Max: 127, Transform: constraint.Integers()}
	if got := c.Apply(63.5); got != 64 {
		t.Errorf("Apply(63.5) = %v, want 64", got)
	}
	if got := c.Apply(63.4); got != 63 {
		t.Errorf("Apply(63.4) = %v, want 63", got)
	}
}

func TestSpecStrictDropsUnconstrained(t *testing.T) {
	spec := constraint.NewSpec(map[string]constraint.Constraint{
		"val": {Min: 0, Max: 127},
	})
	validated := spec.Apply(map[string]float64{"val": 200, "mystery": 7})
	if got := validated["val"]; got != 127 {
		t.Errorf("val = %v, want 127", got)
	}
	if _, ok := validated["mystery"]; ok {
		t.Error("strict mode should drop unconstrained fields")
	}
}

func TestSpecPermissivePassesThrough(t *testing.T) {
	spec := constraint.Spec{
		Fields: map[string]constraint.Constraint{"val": {Min: 0, Max: 127}},
		Mode:   constraint.Permissive,
	}
	validated := spec.Apply(map[string]float64{"mystery": 7})
	if got, ok := validated["mystery"]; !ok || got != 7 {
		t.Errorf("permissive mode should pass unconstrained fields, got %v (%v)", got, ok)
	}
}

func TestSpecApplyDoesNotMutateInput(t *testing.T) {
	spec := constraint.NewSpec(map[string]constraint.Constraint{"val": {Min: 0, Max: 10}})
	delta := map[string]float64{"val": 99}
	spec.Apply(delta)
	if delta["val"] != 99 {
		t.Error("Apply must not mutate its input delta")
	}
}
