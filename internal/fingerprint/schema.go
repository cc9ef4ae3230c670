package fingerprint

import (
	"encoding/base64"
	"fmt"
	"slices"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// Schema versions.
const (
	// V1 is the legacy layout: twelve limb pairs including all finger
	// roots, normalized by eye height.
	V1 = 1

	// V2 is the refined layout: nine limb pairs normalized by torso length.
	V2 = 2

	// DefaultVersion is used when no schema is requested.
	DefaultVersion = V2
)

// ScaleBasis selects the reference length that makes measurements
// scale-invariant.
type ScaleBasis string

const (
	// BasisSpineChest uses the distance between Spine and Chest.
	BasisSpineChest ScaleBasis = "spine_chest"

	// BasisEyeHeight uses the body's reported standing eye height.
	BasisEyeHeight ScaleBasis = "eye_height"
)

// LimbPair is one measurement slot. A and B are right-side (or midline)
// bones; symmetrical pairs are compared with their mirrored left-side twin.
type LimbPair struct {
	A           skeleton.Bone `json:"a"`
	B           skeleton.Bone `json:"b"`
	Symmetrical bool          `json:"symmetrical"`
}

// String renders the pair as "A→B".
func (p LimbPair) String() string {
	return fmt.Sprintf("%s→%s", p.A, p.B)
}

// Schema is a versioned fingerprint layout. The order of Limbs is part of
// the contract: it is the order of slots in the vector.
type Schema struct {
	Version    int        `json:"version"`
	Name       string     `json:"name"`
	Basis      ScaleBasis `json:"basis"`
	Multiplier float64    `json:"multiplier"`
	Limbs      []LimbPair `json:"limbs"`
}

// Len returns the number of slots in the schema's vector.
func (s Schema) Len() int {
	return len(s.Limbs)
}

// ByteLen returns the packed size of a vector in bytes.
func (s Schema) ByteLen() int {
	return 2 * len(s.Limbs)
}

// EncodedLen returns the length of a fingerprint string for this schema.
func (s Schema) EncodedLen() int {
	return base64.StdEncoding.EncodedLen(s.ByteLen())
}

func limb(a, b skeleton.Bone) LimbPair {
	return LimbPair{A: a, B: b, Symmetrical: true}
}

var schemas = map[int]Schema{
	V1: {
		Version:    V1,
		Name:       "legacy",
		Basis:      BasisEyeHeight,
		Multiplier: 10000,
		Limbs: []LimbPair{
			limb(skeleton.Hips, skeleton.RightUpperLeg),
			limb(skeleton.RightUpperLeg, skeleton.RightLowerLeg),
			limb(skeleton.RightLowerLeg, skeleton.RightFoot),
			limb(skeleton.RightFoot, skeleton.RightToes),
			limb(skeleton.RightShoulder, skeleton.RightUpperArm),
			limb(skeleton.RightUpperArm, skeleton.RightLowerArm),
			limb(skeleton.RightLowerArm, skeleton.RightHand),
			limb(skeleton.RightHand, skeleton.RightThumbProximal),
			limb(skeleton.RightHand, skeleton.RightIndexProximal),
			limb(skeleton.RightHand, skeleton.RightMiddleProximal),
			limb(skeleton.RightHand, skeleton.RightRingProximal),
			limb(skeleton.RightHand, skeleton.RightLittleProximal),
		},
	},
	V2: {
		Version:    V2,
		Name:       "refined",
		Basis:      BasisSpineChest,
		Multiplier: 1000,
		Limbs: []LimbPair{
			{A: skeleton.Neck, B: skeleton.Head, Symmetrical: false},
			limb(skeleton.Hips, skeleton.RightUpperLeg),
			limb(skeleton.RightUpperLeg, skeleton.RightLowerLeg),
			limb(skeleton.RightLowerLeg, skeleton.RightFoot),
			limb(skeleton.RightFoot, skeleton.RightToes),
			limb(skeleton.RightShoulder, skeleton.RightUpperArm),
			limb(skeleton.RightUpperArm, skeleton.RightLowerArm),
			limb(skeleton.RightLowerArm, skeleton.RightHand),
			limb(skeleton.RightHand, skeleton.RightThumbProximal),
		},
	},
}

// LookupSchema returns the schema with the given version. The returned
// value owns its Limbs slice.
func LookupSchema(version int) (Schema, error) {
	s, ok := schemas[version]
	if !ok {
		return Schema{}, fmt.Errorf("unknown schema version %d", version)
	}
	s.Limbs = slices.Clone(s.Limbs)
	return s, nil
}

// MustSchema is like LookupSchema but panics on an unknown version.
// Use only with the V1/V2 constants.
func MustSchema(version int) Schema {
	s, err := LookupSchema(version)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the schema for DefaultVersion.
func Default() Schema {
	return MustSchema(DefaultVersion)
}

// Versions returns all known schema versions in ascending order.
func Versions() []int {
	versions := make([]int, 0, len(schemas))
	for v := range schemas {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}
