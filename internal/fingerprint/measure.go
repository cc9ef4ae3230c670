package fingerprint

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// minScale is the smallest reference length that still normalizes.
const minScale = 1e-6

// slotMask keeps the low 15 bits of a quantized length.
const slotMask = 0x7FFF

// Scale returns the reference length for body under the given basis.
// It returns 0 when the basis bones are not tracked.
func Scale(body skeleton.Body, basis ScaleBasis) float64 {
	switch basis {
	case BasisEyeHeight:
		return body.EyeHeight()
	case BasisSpineChest:
		d, ok := boneDistance(body, skeleton.Spine, skeleton.Chest)
		if !ok {
			return 0
		}
		return d
	default:
		return 0
	}
}

// usableScale reports whether s can divide measurements. Near-zero,
// negative and non-finite scales are rejected.
func usableScale(s float64) bool {
	return !math.IsNaN(s) && !math.IsInf(s, 0) && s > minScale
}

// Measure computes one slot value for pair.
//
// The right-side length is divided by scale, multiplied by multiplier,
// floored and masked to 15 bits. For symmetrical pairs the mirrored pair is
// measured the same way; if the two differ the right-side value is negated.
// Any untracked bone, on either side, yields 0.
func Measure(body skeleton.Body, pair LimbPair, scale, multiplier float64) int16 {
	if !usableScale(scale) {
		return 0
	}

	right, ok := quantizedLength(body, pair.A, pair.B, scale, multiplier)
	if !ok {
		return 0
	}
	if !pair.Symmetrical {
		return right
	}

	left, ok := quantizedLength(body, skeleton.Mirror(pair.A), skeleton.Mirror(pair.B), scale, multiplier)
	if !ok {
		return 0
	}
	if left != right {
		return -right
	}
	return right
}

func quantizedLength(body skeleton.Body, a, b skeleton.Bone, scale, multiplier float64) (int16, bool) {
	d, ok := boneDistance(body, a, b)
	if !ok {
		return 0, false
	}
	return quantize(d / scale * multiplier), true
}

func boneDistance(body skeleton.Body, a, b skeleton.Bone) (float64, bool) {
	p1, ok := body.BonePosition(a)
	if !ok {
		return 0, false
	}
	p2, ok := body.BonePosition(b)
	if !ok {
		return 0, false
	}
	return r3.Norm(r3.Sub(p1, p2)), true
}

// quantize floors x and keeps its low 15 bits with two's-complement
// semantics, so values past 32767 wrap rather than saturate. Non-finite
// input quantizes to 0.
func quantize(x float64) int16 {
	f := math.Floor(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if math.Abs(f) < 1<<53 {
		return int16(int64(f) & slotMask)
	}
	m := math.Mod(f, slotMask+1)
	if m < 0 {
		m += slotMask + 1
	}
	return int16(m)
}
