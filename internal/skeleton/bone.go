package skeleton

import (
	"fmt"
	"strings"
)

// Bone identifies one humanoid skeletal landmark.
type Bone int

// Humanoid bones in rig ordinal order.
const (
	Hips Bone = iota
	LeftUpperLeg
	RightUpperLeg
	LeftLowerLeg
	RightLowerLeg
	LeftFoot
	RightFoot
	Spine
	Chest
	Neck
	Head
	LeftShoulder
	RightShoulder
	LeftUpperArm
	RightUpperArm
	LeftLowerArm
	RightLowerArm
	LeftHand
	RightHand
	LeftToes
	RightToes
	LeftEye
	RightEye
	Jaw
	LeftThumbProximal
	LeftThumbIntermediate
	LeftThumbDistal
	LeftIndexProximal
	LeftIndexIntermediate
	LeftIndexDistal
	LeftMiddleProximal
	LeftMiddleIntermediate
	LeftMiddleDistal
	LeftRingProximal
	LeftRingIntermediate
	LeftRingDistal
	LeftLittleProximal
	LeftLittleIntermediate
	LeftLittleDistal
	RightThumbProximal
	RightThumbIntermediate
	RightThumbDistal
	RightIndexProximal
	RightIndexIntermediate
	RightIndexDistal
	RightMiddleProximal
	RightMiddleIntermediate
	RightMiddleDistal
	RightRingProximal
	RightRingIntermediate
	RightRingDistal
	RightLittleProximal
	RightLittleIntermediate
	RightLittleDistal
	UpperChest

	// LastBone terminates the enumeration. It is its own mirror and a Body
	// never reports a position for it.
	LastBone
)

// BoneCount is the number of real bones (LastBone excluded).
const BoneCount = int(LastBone)

var boneNames = [LastBone + 1]string{
	Hips:                    "Hips",
	LeftUpperLeg:            "LeftUpperLeg",
	RightUpperLeg:           "RightUpperLeg",
	LeftLowerLeg:            "LeftLowerLeg",
	RightLowerLeg:           "RightLowerLeg",
	LeftFoot:                "LeftFoot",
	RightFoot:               "RightFoot",
	Spine:                   "Spine",
	Chest:                   "Chest",
	Neck:                    "Neck",
	Head:                    "Head",
	LeftShoulder:            "LeftShoulder",
	RightShoulder:           "RightShoulder",
	LeftUpperArm:            "LeftUpperArm",
	RightUpperArm:           "RightUpperArm",
	LeftLowerArm:            "LeftLowerArm",
	RightLowerArm:           "RightLowerArm",
	LeftHand:                "LeftHand",
	RightHand:               "RightHand",
	LeftToes:                "LeftToes",
	RightToes:               "RightToes",
	LeftEye:                 "LeftEye",
	RightEye:                "RightEye",
	Jaw:                     "Jaw",
	LeftThumbProximal:       "LeftThumbProximal",
	LeftThumbIntermediate:   "LeftThumbIntermediate",
	LeftThumbDistal:         "LeftThumbDistal",
	LeftIndexProximal:       "LeftIndexProximal",
	LeftIndexIntermediate:   "LeftIndexIntermediate",
	LeftIndexDistal:         "LeftIndexDistal",
	LeftMiddleProximal:      "LeftMiddleProximal",
	LeftMiddleIntermediate:  "LeftMiddleIntermediate",
	LeftMiddleDistal:        "LeftMiddleDistal",
	LeftRingProximal:        "LeftRingProximal",
	LeftRingIntermediate:    "LeftRingIntermediate",
	LeftRingDistal:          "LeftRingDistal",
	LeftLittleProximal:      "LeftLittleProximal",
	LeftLittleIntermediate:  "LeftLittleIntermediate",
	LeftLittleDistal:        "LeftLittleDistal",
	RightThumbProximal:      "RightThumbProximal",
	RightThumbIntermediate:  "RightThumbIntermediate",
	RightThumbDistal:        "RightThumbDistal",
	RightIndexProximal:      "RightIndexProximal",
	RightIndexIntermediate:  "RightIndexIntermediate",
	RightIndexDistal:        "RightIndexDistal",
	RightMiddleProximal:     "RightMiddleProximal",
	RightMiddleIntermediate: "RightMiddleIntermediate",
	RightMiddleDistal:       "RightMiddleDistal",
	RightRingProximal:       "RightRingProximal",
	RightRingIntermediate:   "RightRingIntermediate",
	RightRingDistal:         "RightRingDistal",
	RightLittleProximal:     "RightLittleProximal",
	RightLittleIntermediate: "RightLittleIntermediate",
	RightLittleDistal:       "RightLittleDistal",
	UpperChest:              "UpperChest",
	LastBone:                "LastBone",
}

// boneAliases maps alternate spellings used by other humanoid formats onto
// canonical names. Keys are already folded.
var boneAliases = map[string]Bone{
	"leftthumbmetacarpal":  LeftThumbProximal,
	"rightthumbmetacarpal": RightThumbProximal,
}

var bonesByFoldedName = buildBoneIndex()

func buildBoneIndex() map[string]Bone {
	index := make(map[string]Bone, BoneCount+len(boneAliases))
	for b := Hips; b < LastBone; b++ {
		index[foldBoneName(boneNames[b])] = b
	}
	for alias, b := range boneAliases {
		index[alias] = b
	}
	return index
}

// String returns the canonical PascalCase bone name.
func (b Bone) String() string {
	if b < 0 || b > LastBone {
		return fmt.Sprintf("Bone(%d)", int(b))
	}
	return boneNames[b]
}

// Valid reports whether b is a real bone (LastBone excluded).
func (b Bone) Valid() bool {
	return b >= Hips && b < LastBone
}

// IsLeft reports whether b belongs to the left side of the body.
func (b Bone) IsLeft() bool {
	return b.Valid() && strings.HasPrefix(boneNames[b], "Left")
}

// IsRight reports whether b belongs to the right side of the body.
func (b Bone) IsRight() bool {
	return b.Valid() && strings.HasPrefix(boneNames[b], "Right")
}

// IsMidline reports whether b lies on the body's midline.
func (b Bone) IsMidline() bool {
	return b.Valid() && !b.IsLeft() && !b.IsRight()
}

// ParseBone resolves a bone name. Matching ignores case, '_', '-' and spaces,
// so "RightUpperLeg", "rightUpperLeg" and "right_upper_leg" are equivalent.
func ParseBone(name string) (Bone, error) {
	if b, ok := bonesByFoldedName[foldBoneName(name)]; ok {
		return b, nil
	}
	return LastBone, fmt.Errorf("unknown bone %q", name)
}

// MarshalText renders b by name so schemas serialize readably.
func (b Bone) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshal bone: %s is not a humanoid bone", b)
	}
	return []byte(boneNames[b]), nil
}

// UnmarshalText accepts any spelling ParseBone accepts.
func (b *Bone) UnmarshalText(text []byte) error {
	parsed, err := ParseBone(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// AllBones returns every real bone in ordinal order.
func AllBones() []Bone {
	bones := make([]Bone, 0, BoneCount)
	for b := Hips; b < LastBone; b++ {
		bones = append(bones, b)
	}
	return bones
}

func foldBoneName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
