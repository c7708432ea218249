// Package constraint validates widget state values against declarative
// per-field bounds and transforms.
package constraint

import "math"

// Transform normalizes a value after clamping. It must be pure.
type Transform func(float64) float64

// Constraint clamps a scalar into [Min, Max] and optionally applies a
// Transform to the clamped value. The transform's output is clamped
// again, so Apply never returns an out-of-range value.
type Constraint struct {
	Min       float64
	Max       float64
	Transform Transform
}

// Apply validates raw against the constraint. NaN clamps to Min.
func (c Constraint) Apply(raw float64) float64 {
	v := c.clamp(raw)
	if c.Transform != nil {
		v = c.clamp(c.Transform(v))
	}
	return v
}

func (c Constraint) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return c.Min
	}
	return math.Max(c.Min, math.Min(c.Max, v))
}

// Integers rounds to the nearest whole number.
func Integers() Transform {
	return math.Round
}

// FixedDecimals rounds to n decimal places.
func FixedDecimals(n int) Transform {
	scale := math.Pow(10, float64(n))
	return func(v float64) float64 {
		return math.Round(v*scale) / scale
	}
}

// Mode decides what Spec.Apply does with fields that have no matching
// constraint.
type Mode int

const (
	// Strict drops unconstrained fields from the validated delta.
	Strict Mode = iota
	// Permissive passes unconstrained fields through unchanged.
	Permissive
)

// Spec maps state-field names to their constraints and is applied to a
// widget's whole state delta.
type Spec struct {
	Fields map[string]Constraint
	Mode   Mode
}

// NewSpec returns a strict spec over the given field constraints.
func NewSpec(fields map[string]Constraint) Spec {
	return Spec{Fields: fields}
}

// Apply validates each field of delta independently and returns a new
// validated delta. The input map is not modified.
func (s Spec) Apply(delta map[string]float64) map[string]float64 {
	validated := make(map[string]float64, len(delta))
	for field, raw := range delta {
		c, ok := s.Fields[field]
		if !ok {
			if s.Mode == Permissive {
				validated[field] = raw
			}
			continue
		}
		validated[field] = c.Apply(raw)
	}
	return validated
}

// Constrains reports whether the spec has a constraint for field.
func (s Spec) Constrains(field string) bool {
	_, ok := s.Fields[field]
	return ok
}
