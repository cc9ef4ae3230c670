package fingerprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/avatarhash/internal/skeleton"
	"github.com/roach88/avatarhash/internal/testutil"
)

func TestScaleSpineChest(t *testing.T) {
	pose := testutil.ExamplePose()
	assert.Equal(t, 0.2, Scale(pose, BasisSpineChest))
}

func TestScaleMissingBasisBone(t *testing.T) {
	pose := testutil.ExamplePose().Without(skeleton.Chest)
	assert.Equal(t, 0.0, Scale(pose, BasisSpineChest))
}

func TestScaleEyeHeight(t *testing.T) {
	pose := testutil.NewPose().WithEyeHeight(1.25)
	assert.Equal(t, 1.25, Scale(pose, BasisEyeHeight))
	assert.Equal(t, 0.0, Scale(pose, ScaleBasis("unknown")))
}

func TestMeasureSymmetric(t *testing.T) {
	pose := testutil.ExamplePose()
	got := Measure(pose, limb(skeleton.Hips, skeleton.RightUpperLeg), 0.2, 1000)
	assert.Equal(t, int16(500), got)
}

func TestMeasureAsymmetricNegatesRightValue(t *testing.T) {
	pose := testutil.ExamplePose().With(skeleton.LeftUpperLeg, 0.096, 1, 0)
	got := Measure(pose, limb(skeleton.Hips, skeleton.RightUpperLeg), 0.2, 1000)
	assert.Equal(t, int16(-500), got, "magnitude is the right side, sign flags asymmetry")
}

func TestMeasureNonSymmetricalIgnoresMirror(t *testing.T) {
	pose := testutil.NewPose().
		With(skeleton.Neck, 0, 1.4, 0).
		With(skeleton.Head, 0, 1.5, 0)
	pair := LimbPair{A: skeleton.Neck, B: skeleton.Head}
	got := Measure(pose, pair, 0.25, 1000)
	assert.Positive(t, got)
}

func TestMeasureMissingBone(t *testing.T) {
	pair := limb(skeleton.Hips, skeleton.RightUpperLeg)

	t.Run("right side", func(t *testing.T) {
		pose := testutil.ExamplePose().Without(skeleton.RightUpperLeg)
		assert.Equal(t, int16(0), Measure(pose, pair, 0.2, 1000))
	})

	t.Run("mirrored side", func(t *testing.T) {
		pose := testutil.ExamplePose().Without(skeleton.LeftUpperLeg)
		assert.Equal(t, int16(0), Measure(pose, pair, 0.2, 1000))
	})

	t.Run("shared midline bone", func(t *testing.T) {
		pose := testutil.ExamplePose().Without(skeleton.Hips)
		assert.Equal(t, int16(0), Measure(pose, pair, 0.2, 1000))
	})
}

func TestMeasureDegenerateScale(t *testing.T) {
	pose := testutil.ExamplePose()
	pair := limb(skeleton.Hips, skeleton.RightUpperLeg)

	for _, scale := range []float64{0, 1e-9, -1, math.NaN(), math.Inf(1)} {
		assert.Equal(t, int16(0), Measure(pose, pair, scale, 1000), "scale %v", scale)
	}
}

func TestMeasureWrapsAtFifteenBits(t *testing.T) {
	pose := testutil.NewPose().
		With(skeleton.Hips, 0, 1, 0).
		With(skeleton.RightUpperLeg, -40, 1, 0).
		With(skeleton.LeftUpperLeg, 40, 1, 0)
	got := Measure(pose, limb(skeleton.Hips, skeleton.RightUpperLeg), 1, 1000)
	assert.Equal(t, int16(40000&0x7FFF), got)
	assert.Equal(t, int16(7232), got)
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"floors", 499.999, 499},
		{"max", 32767.5, 32767},
		{"wraps", 32768, 0},
		{"wraps past", 40000.2, 7232},
		{"negative wraps like two's complement", -1, 0x7FFF},
		{"huge", 1e300, int16(math.Mod(1e300, 32768))},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quantize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int16(0))
		})
	}
}

func TestQuantizeMatchesMaskForExactIntegers(t *testing.T) {
	for _, n := range []int64{0, 1, 500, 32767, 32768, 65535, 65536, 1 << 40, -5} {
		require.Equal(t, int16(n&0x7FFF), quantize(float64(n)), "n=%d", n)
	}
}
