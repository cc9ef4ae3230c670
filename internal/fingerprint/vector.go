package fingerprint

import (
	"slices"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// Vector holds one int16 per limb pair, in schema order.
type Vector []int16

// BuildVector measures body under schema. It returns nil for a nil or
// invalid body and an all-zero vector when the scale is degenerate.
func BuildVector(body skeleton.Body, schema Schema) Vector {
	if body == nil || !body.Valid() {
		return nil
	}

	v := make(Vector, len(schema.Limbs))
	scale := Scale(body, schema.Basis)
	if !usableScale(scale) {
		return v
	}

	for i, pair := range schema.Limbs {
		v[i] = Measure(body, pair, scale, schema.Multiplier)
	}
	return v
}

// Equal reports whether two vectors hold the same values.
func (v Vector) Equal(other Vector) bool {
	return slices.Equal(v, other)
}

// AsymmetricSlots returns the indices of negative slots.
func (v Vector) AsymmetricSlots() []int {
	var slots []int
	for i, x := range v {
		if x < 0 {
			slots = append(slots, i)
		}
	}
	return slots
}

// MissingSlots returns the indices of zero slots.
func (v Vector) MissingSlots() []int {
	var slots []int
	for i, x := range v {
		if x == 0 {
			slots = append(slots, i)
		}
	}
	return slots
}
