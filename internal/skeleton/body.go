package skeleton

import "gonum.org/v1/gonum/spatial/r3"

// Body is a tracked skeleton as seen at one instant.
//
// BonePosition reports a bone's position in a frame shared by all bones of
// the body, and whether the bone is tracked at all. Implementations must not
// report LastBone as present.
type Body interface {
	Valid() bool
	BonePosition(b Bone) (r3.Vec, bool)
	EyeHeight() float64
}

// PositionFunc returns a bone position, using the origin to mean "unknown".
// This is the contract of hosts that have no separate presence flag.
type PositionFunc func(b Bone) r3.Vec

// SentinelBody adapts a host that overloads the origin as "not tracked" to
// the Body interface. A bone exactly at the origin is reported as missing.
type SentinelBody struct {
	Position        PositionFunc
	EyeHeightMeters float64
}

// Valid reports whether the host supplied a position function.
func (s SentinelBody) Valid() bool {
	return s.Position != nil
}

// BonePosition implements Body.
func (s SentinelBody) BonePosition(b Bone) (r3.Vec, bool) {
	if s.Position == nil || !b.Valid() {
		return r3.Vec{}, false
	}
	p := s.Position(b)
	if p == (r3.Vec{}) {
		return r3.Vec{}, false
	}
	return p, true
}

// EyeHeight implements Body.
func (s SentinelBody) EyeHeight() float64 {
	return s.EyeHeightMeters
}
