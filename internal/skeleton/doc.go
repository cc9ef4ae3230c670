// Package skeleton defines the humanoid bone vocabulary shared by every
// other package: the closed set of bone identifiers, the left/right mirror
// table, and the Body interface through which a host supplies bone positions.
//
// Bone ordinals follow the common humanoid rig ordering (Hips = 0 through
// UpperChest = 54) so identifiers exchanged with rigging tools keep their
// numeric meaning. LastBone terminates the enumeration and is never tracked.
//
// This package imports nothing internal.
package skeleton
