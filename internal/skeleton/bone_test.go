package skeleton

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestParseBone(t *testing.T) {
	tests := []struct {
		input string
		want  Bone
	}{
		{"RightUpperLeg", RightUpperLeg},
		{"rightUpperLeg", RightUpperLeg},
		{"right_upper_leg", RightUpperLeg},
		{"Right Upper Leg", RightUpperLeg},
		{"hips", Hips},
		{"upperChest", UpperChest},
		{"leftThumbMetacarpal", LeftThumbProximal},
		{"RightThumbMetacarpal", RightThumbProximal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBone(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBoneUnknown(t *testing.T) {
	got, err := ParseBone("tail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bone")
	assert.Equal(t, LastBone, got)

	_, err = ParseBone("LastBone")
	require.Error(t, err, "the terminator is not a parseable bone")
}

func TestParseBoneRoundTrip(t *testing.T) {
	for _, b := range AllBones() {
		got, err := ParseBone(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestBoneJSON(t *testing.T) {
	data, err := json.Marshal([]Bone{Hips, RightThumbProximal})
	require.NoError(t, err)
	assert.JSONEq(t, `["Hips","RightThumbProximal"]`, string(data))

	var got []Bone
	require.NoError(t, json.Unmarshal([]byte(`["hips","right_thumb_metacarpal"]`), &got))
	assert.Equal(t, []Bone{Hips, RightThumbProximal}, got)

	_, err = json.Marshal(LastBone)
	require.Error(t, err)
	require.Error(t, json.Unmarshal([]byte(`"tail"`), new(Bone)))
}

func TestBoneString(t *testing.T) {
	assert.Equal(t, "Hips", Hips.String())
	assert.Equal(t, "LastBone", LastBone.String())
	assert.Equal(t, "Bone(99)", Bone(99).String())
}

func TestBoneSides(t *testing.T) {
	assert.True(t, LeftHand.IsLeft())
	assert.False(t, LeftHand.IsRight())
	assert.True(t, RightToes.IsRight())
	assert.True(t, Neck.IsMidline())
	assert.False(t, LastBone.IsMidline())
	assert.False(t, LastBone.Valid())
}

func TestSentinelBody(t *testing.T) {
	body := SentinelBody{
		Position: func(b Bone) r3.Vec {
			if b == Head {
				return r3.Vec{X: 0, Y: 1.5, Z: 0}
			}
			return r3.Vec{}
		},
		EyeHeightMeters: 1.4,
	}

	require.True(t, body.Valid())

	p, ok := body.BonePosition(Head)
	assert.True(t, ok)
	assert.Equal(t, 1.5, p.Y)

	_, ok = body.BonePosition(Neck)
	assert.False(t, ok, "origin reads as untracked")

	_, ok = body.BonePosition(LastBone)
	assert.False(t, ok)

	assert.Equal(t, 1.4, body.EyeHeight())
}

func TestSentinelBodyWithoutHost(t *testing.T) {
	var body SentinelBody
	assert.False(t, body.Valid())
	_, ok := body.BonePosition(Hips)
	assert.False(t, ok)
}
