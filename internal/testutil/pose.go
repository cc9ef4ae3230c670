package testutil

import (
	"maps"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// Pose is a synthetic skeleton for tests.
//
// Bones that were never set are reported as untracked, including bones set
// at the origin, which a Pose treats as ordinary tracked positions.
//
// Pose is not safe for concurrent mutation; build it fully before sharing.
type Pose struct {
	bones     map[skeleton.Bone]r3.Vec
	eyeHeight float64
	invalid   bool
}

// NewPose creates an empty, valid pose with no tracked bones.
func NewPose() *Pose {
	return &Pose{bones: make(map[skeleton.Bone]r3.Vec)}
}

// With sets the position of a bone and returns the pose for chaining.
func (p *Pose) With(b skeleton.Bone, x, y, z float64) *Pose {
	p.bones[b] = r3.Vec{X: x, Y: y, Z: z}
	return p
}

// Without removes a bone so it reads as untracked.
func (p *Pose) Without(b skeleton.Bone) *Pose {
	delete(p.bones, b)
	return p
}

// WithEyeHeight sets the reported eye height.
func (p *Pose) WithEyeHeight(h float64) *Pose {
	p.eyeHeight = h
	return p
}

// Invalid marks the pose as an untracked body.
func (p *Pose) Invalid() *Pose {
	p.invalid = true
	return p
}

// Clone returns an independent copy.
func (p *Pose) Clone() *Pose {
	return &Pose{
		bones:     maps.Clone(p.bones),
		eyeHeight: p.eyeHeight,
		invalid:   p.invalid,
	}
}

// Scaled returns a copy with every position and the eye height multiplied by k.
func (p *Pose) Scaled(k float64) *Pose {
	out := p.Clone()
	for b, v := range out.bones {
		out.bones[b] = r3.Scale(k, v)
	}
	out.eyeHeight *= k
	return out
}

// Valid implements skeleton.Body.
func (p *Pose) Valid() bool {
	return !p.invalid
}

// BonePosition implements skeleton.Body.
func (p *Pose) BonePosition(b skeleton.Bone) (r3.Vec, bool) {
	v, ok := p.bones[b]
	return v, ok
}

// EyeHeight implements skeleton.Body.
func (p *Pose) EyeHeight() float64 {
	return p.eyeHeight
}

// ExamplePose returns the reference body used across tests: Spine and Chest
// 0.2 apart, Hips 0.1 from each upper leg, every other bone untracked.
// Its refined-schema vector is [0, 500, 0, 0, 0, 0, 0, 0, 0].
func ExamplePose() *Pose {
	return NewPose().
		With(skeleton.Spine, 0, 0.2, 0).
		With(skeleton.Chest, 0, 0.4, 0).
		With(skeleton.Hips, 0, 1, 0).
		With(skeleton.RightUpperLeg, -0.1, 1, 0).
		With(skeleton.LeftUpperLeg, 0.1, 1, 0)
}

// FullPose returns a complete, symmetric humanoid with every bone the
// fingerprint schemas sample, roughly 1.6 units tall.
func FullPose() *Pose {
	p := NewPose().
		With(skeleton.Hips, 0, 0.95, 0).
		With(skeleton.Spine, 0, 1.05, 0).
		With(skeleton.Chest, 0, 1.2, 0).
		With(skeleton.UpperChest, 0, 1.3, 0).
		With(skeleton.Neck, 0, 1.42, 0).
		With(skeleton.Head, 0, 1.52, 0).
		WithEyeHeight(1.5)

	// Right side at negative X; the left side mirrors it.
	right := map[skeleton.Bone]r3.Vec{
		skeleton.RightUpperLeg:       {X: -0.09, Y: 0.9, Z: 0},
		skeleton.RightLowerLeg:       {X: -0.1, Y: 0.5, Z: 0.01},
		skeleton.RightFoot:           {X: -0.1, Y: 0.08, Z: -0.02},
		skeleton.RightToes:           {X: -0.1, Y: 0.02, Z: 0.1},
		skeleton.RightShoulder:       {X: -0.05, Y: 1.36, Z: 0},
		skeleton.RightUpperArm:       {X: -0.17, Y: 1.35, Z: 0},
		skeleton.RightLowerArm:       {X: -0.43, Y: 1.35, Z: 0},
		skeleton.RightHand:           {X: -0.68, Y: 1.35, Z: 0},
		skeleton.RightThumbProximal:  {X: -0.71, Y: 1.34, Z: 0.03},
		skeleton.RightIndexProximal:  {X: -0.77, Y: 1.35, Z: 0.02},
		skeleton.RightMiddleProximal: {X: -0.78, Y: 1.35, Z: 0},
		skeleton.RightRingProximal:   {X: -0.77, Y: 1.35, Z: -0.02},
		skeleton.RightLittleProximal: {X: -0.75, Y: 1.35, Z: -0.04},
	}
	for b, v := range right {
		p.bones[b] = v
		p.bones[skeleton.Mirror(b)] = r3.Vec{X: -v.X, Y: v.Y, Z: v.Z}
	}
	return p
}
