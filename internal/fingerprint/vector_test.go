package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/avatarhash/internal/skeleton"
	"github.com/roach88/avatarhash/internal/testutil"
)

func TestBuildVectorExample(t *testing.T) {
	v := BuildVector(testutil.ExamplePose(), MustSchema(V2))
	assert.Equal(t, Vector{0, 500, 0, 0, 0, 0, 0, 0, 0}, v)
}

func TestBuildVectorExampleAsymmetric(t *testing.T) {
	pose := testutil.ExamplePose().With(skeleton.LeftUpperLeg, 0.096, 1, 0)
	v := BuildVector(pose, MustSchema(V2))
	assert.Equal(t, Vector{0, -500, 0, 0, 0, 0, 0, 0, 0}, v)
	assert.Equal(t, []int{1}, v.AsymmetricSlots())
}

func TestBuildVectorFullPose(t *testing.T) {
	v := BuildVector(testutil.FullPose(), MustSchema(V2))
	assert.Equal(t, Vector{666, 686, 2668, 2807, 894, 802, 1733, 1666, 290}, v)
	assert.Empty(t, v.AsymmetricSlots())
	assert.Empty(t, v.MissingSlots())
}

func TestBuildVectorLegacyFullPose(t *testing.T) {
	v := BuildVector(testutil.FullPose(), MustSchema(V1))
	assert.Equal(t, Vector{686, 2668, 2807, 894, 802, 1733, 1666, 290, 614, 666, 614, 537}, v)
}

func TestBuildVectorInvalidBody(t *testing.T) {
	assert.Nil(t, BuildVector(testutil.NewPose().Invalid(), Default()))
	assert.Nil(t, BuildVector(nil, Default()))
}

func TestBuildVectorDegenerateScale(t *testing.T) {
	t.Run("spine and chest coincide", func(t *testing.T) {
		pose := testutil.FullPose().With(skeleton.Chest, 0, 1.05, 0)
		v := BuildVector(pose, MustSchema(V2))
		assert.Equal(t, make(Vector, 9), v)
	})

	t.Run("chest untracked", func(t *testing.T) {
		pose := testutil.FullPose().Without(skeleton.Chest)
		v := BuildVector(pose, MustSchema(V2))
		assert.Equal(t, make(Vector, 9), v)
	})

	t.Run("zero eye height", func(t *testing.T) {
		pose := testutil.FullPose().WithEyeHeight(0)
		v := BuildVector(pose, MustSchema(V1))
		assert.Equal(t, make(Vector, 12), v)
	})
}

func TestBuildVectorDeterministic(t *testing.T) {
	pose := testutil.FullPose()
	first := Compute(pose, Default())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(pose, Default()))
	}
}

func TestBuildVectorScaleInvariant(t *testing.T) {
	base := BuildVector(testutil.FullPose(), Default())

	t.Run("power of two is exact", func(t *testing.T) {
		for _, k := range []float64{0.5, 2, 8} {
			assert.Equal(t, base, BuildVector(testutil.FullPose().Scaled(k), Default()), "k=%v", k)
		}
	})

	t.Run("other factors within one quantum", func(t *testing.T) {
		for _, k := range []float64{0.3, 1.7, 3, 100} {
			v := BuildVector(testutil.FullPose().Scaled(k), Default())
			require.Len(t, v, len(base))
			for i := range base {
				assert.InDelta(t, base[i], v[i], 1, "k=%v slot %d", k, i)
				assert.Equal(t, base[i] < 0, v[i] < 0, "k=%v slot %d sign", k, i)
			}
		}
	})

	t.Run("legacy schema scales with eye height", func(t *testing.T) {
		legacy := MustSchema(V1)
		want := BuildVector(testutil.FullPose(), legacy)
		assert.Equal(t, want, BuildVector(testutil.FullPose().Scaled(4), legacy))
	})
}

func TestBuildVectorMissingBoneIsolated(t *testing.T) {
	schema := Default()
	base := BuildVector(testutil.FullPose(), schema)

	pose := testutil.FullPose().Without(skeleton.LeftFoot)
	v := BuildVector(pose, schema)

	for i, pair := range schema.Limbs {
		usesFoot := pair.A == skeleton.RightFoot || pair.B == skeleton.RightFoot
		if usesFoot {
			assert.Equal(t, int16(0), v[i], "slot %d (%s)", i, pair)
		} else {
			assert.Equal(t, base[i], v[i], "slot %d (%s)", i, pair)
		}
	}
	assert.Equal(t, []int{3, 4}, v.MissingSlots())
}

func TestBuildVectorSymmetryDetection(t *testing.T) {
	schema := Default()
	base := BuildVector(testutil.FullPose(), schema)

	// Lengthen the left forearm only.
	pose := testutil.FullPose().With(skeleton.LeftHand, 0.75, 1.35, 0)
	v := BuildVector(pose, schema)

	assert.Equal(t, -base[7], v[7], "lower arm → hand keeps right magnitude, negated")
	assert.Equal(t, -base[8], v[8], "hand → thumb is also affected by the moved hand")
	assert.Equal(t, []int{7, 8}, v.AsymmetricSlots())
}

func TestVectorEqual(t *testing.T) {
	assert.True(t, Vector{1, 2}.Equal(Vector{1, 2}))
	assert.False(t, Vector{1, 2}.Equal(Vector{1, -2}))
	assert.False(t, Vector{1}.Equal(Vector{1, 0}))
}
