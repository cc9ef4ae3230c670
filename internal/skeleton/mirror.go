package skeleton

// mirrorTable maps every bone to its anatomical opposite. Midline bones and
// LastBone map to themselves. Every index is written out so a missing entry
// shows up in review and in TestMirrorTableComplete.
var mirrorTable = [LastBone + 1]Bone{
	Hips:                    Hips,
	LeftUpperLeg:            RightUpperLeg,
	RightUpperLeg:           LeftUpperLeg,
	LeftLowerLeg:            RightLowerLeg,
	RightLowerLeg:           LeftLowerLeg,
	LeftFoot:                RightFoot,
	RightFoot:               LeftFoot,
	Spine:                   Spine,
	Chest:                   Chest,
	Neck:                    Neck,
	Head:                    Head,
	LeftShoulder:            RightShoulder,
	RightShoulder:           LeftShoulder,
	LeftUpperArm:            RightUpperArm,
	RightUpperArm:           LeftUpperArm,
	LeftLowerArm:            RightLowerArm,
	RightLowerArm:           LeftLowerArm,
	LeftHand:                RightHand,
	RightHand:               LeftHand,
	LeftToes:                RightToes,
	RightToes:               LeftToes,
	LeftEye:                 RightEye,
	RightEye:                LeftEye,
	Jaw:                     Jaw,
	LeftThumbProximal:       RightThumbProximal,
	LeftThumbIntermediate:   RightThumbIntermediate,
	LeftThumbDistal:         RightThumbDistal,
	LeftIndexProximal:       RightIndexProximal,
	LeftIndexIntermediate:   RightIndexIntermediate,
	LeftIndexDistal:         RightIndexDistal,
	LeftMiddleProximal:      RightMiddleProximal,
	LeftMiddleIntermediate:  RightMiddleIntermediate,
	LeftMiddleDistal:        RightMiddleDistal,
	LeftRingProximal:        RightRingProximal,
	LeftRingIntermediate:    RightRingIntermediate,
	LeftRingDistal:          RightRingDistal,
	LeftLittleProximal:      RightLittleProximal,
	LeftLittleIntermediate:  RightLittleIntermediate,
	LeftLittleDistal:        RightLittleDistal,
	RightThumbProximal:      LeftThumbProximal,
	RightThumbIntermediate:  LeftThumbIntermediate,
	RightThumbDistal:        LeftThumbDistal,
	RightIndexProximal:      LeftIndexProximal,
	RightIndexIntermediate:  LeftIndexIntermediate,
	RightIndexDistal:        LeftIndexDistal,
	RightMiddleProximal:     LeftMiddleProximal,
	RightMiddleIntermediate: LeftMiddleIntermediate,
	RightMiddleDistal:       LeftMiddleDistal,
	RightRingProximal:       LeftRingProximal,
	RightRingIntermediate:   LeftRingIntermediate,
	RightRingDistal:         LeftRingDistal,
	RightLittleProximal:     LeftLittleProximal,
	RightLittleIntermediate: LeftLittleIntermediate,
	RightLittleDistal:       LeftLittleDistal,
	UpperChest:              UpperChest,
	LastBone:                LastBone,
}

// Mirror returns the bone on the opposite side of the body, or b itself for
// midline bones and LastBone. Values outside the enumeration map to LastBone.
func Mirror(b Bone) Bone {
	if b < Hips || b > LastBone {
		return LastBone
	}
	return mirrorTable[b]
}
