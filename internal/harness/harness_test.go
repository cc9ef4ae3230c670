package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/pose"
)

func sparseSnapshot() *pose.Document {
	return &pose.Document{
		Bones: map[string][]float64{
			"Spine":         {0, 0.2, 0},
			"Chest":         {0, 0.4, 0},
			"Hips":          {0, 1, 0},
			"RightUpperLeg": {-0.1, 1, 0},
			"LeftUpperLeg":  {0.1, 1, 0},
		},
	}
}

func TestRun_AllScenariosPass(t *testing.T) {
	files, err := FindScenarios(filepath.Join("testdata", "scenarios"), "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_DefaultSchema(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "default_schema",
		Snapshot: sparseSnapshot(),
	})
	require.NoError(t, err)
	assert.Equal(t, fingerprint.DefaultVersion, result.Fingerprint.Schema)
	assert.Equal(t, "AAD0AQAAAAAAAAAAAAAAAAAA", result.Fingerprint.Value)
	assert.Equal(t, "0\n500\n0\n0\n0\n0\n0\n0\n0\n", result.Debug)
}

func TestRun_ReportsMismatches(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "mismatch",
		Snapshot: sparseSnapshot(),
		Expect: Expect{
			Fingerprint: "mgKuAmwK9wp+AyIDxQaCBiIB",
			Vector:      []int16{1, 2, 3},
			Debug:       "nope\n",
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "fingerprint mismatch")
	assert.Contains(t, result.Errors[1], "vector mismatch")
	assert.Contains(t, result.Errors[2], "debug mismatch")
}

func TestRun_EmptyExpectationFails(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "not_empty",
		Snapshot: sparseSnapshot(),
		Expect:   Expect{Empty: true},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "expected empty fingerprint")
}

func TestRun_NameResolution(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "named",
		Snapshot: sparseSnapshot(),
		Names:    map[string]string{"AAD0AQAAAAAAAAAAAAAAAAAA": "Sparse Example"},
		Expect:   Expect{Name: "Sparse Example"},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "Sparse Example", result.Name)
}

func TestRun_NamesAreSchemaScoped(t *testing.T) {
	// The same text registered under the refined schema does not name a
	// legacy fingerprint.
	result, err := Run(&Scenario{
		Name:   "legacy_named",
		Schema: fingerprint.V1,
		Pose:   filepath.Join("testdata", "poses", "full.yaml"),
		Names:  map[string]string{"mgKuAmwK9wp+AyIDxQaCBiIB": "Reference Avatar"},
		Expect: Expect{Name: "Reference Avatar"},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, "", result.Name)
}

func TestRun_PoseLoadError(t *testing.T) {
	_, err := Run(&Scenario{
		Name:     "bad_pose",
		Snapshot: &pose.Document{Bones: map[string][]float64{"Tail": {0, 0, 1}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load pose")
}

func TestRun_UnknownSchema(t *testing.T) {
	_, err := Run(&Scenario{Name: "bad_schema", Schema: 42, Snapshot: sparseSnapshot()})
	assert.Error(t, err)
}

func TestRun_AssertionFailuresAreCollected(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "failing_assertions",
		Snapshot: sparseSnapshot(),
		Assertions: []Assertion{
			{Type: AssertSlot, Slot: 1, Value: 499},
			{Type: AssertAsymmetric, Slots: []int{1}},
			{Type: AssertSymmetric},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 2)
}
