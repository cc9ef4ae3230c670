// Package pose loads skeleton snapshots from files so fingerprints can be
// computed outside a live host.
//
// A snapshot document lists bone positions by name:
//
//	body: avatar-7
//	eye_height: 1.5
//	bones:
//	  Hips: [0, 0.95, 0]
//	  RightUpperLeg: [-0.09, 0.9, 0]
//
// Documents may be YAML (.yaml, .yml), JSON (.json) or CUE (.cue). CUE
// documents are unified with the #Pose definition in schema.cue before
// decoding, so constraint violations are reported with CUE positions.
//
// By default a bone placed exactly at the origin is treated as untracked,
// matching hosts that report untracked bones as the zero vector. Set
// origin_tracked to keep such bones.
package pose
