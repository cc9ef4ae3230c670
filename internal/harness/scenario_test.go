package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ResolvesPoseRelativeToFile(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "full_refined.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "full_refined", scenario.Name)
	assert.Equal(t, 2, scenario.Schema)
	assert.Equal(t, filepath.Join("testdata", "poses", "full.yaml"), scenario.Pose)
	assert.Equal(t, "Reference Avatar", scenario.Names["mgKuAmwK9wp+AyIDxQaCBiIB"])
	assert.Len(t, scenario.Expect.Vector, 9)
	assert.Len(t, scenario.Assertions, 5)
}

func TestLoadScenario_InlineSnapshot(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "sparse_example.yaml"))
	require.NoError(t, err)

	require.NotNil(t, scenario.Snapshot)
	assert.Empty(t, scenario.Pose)
	assert.Len(t, scenario.Snapshot.Bones, 5)
}

func TestLoadScenario_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "typo.yaml", `
name: typo
description: "misspelled assertions"
snapshot:
  bones: {}
expect:
  empty: true
assertion:
  - type: symmetric
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\nsnapshot: {bones: {}}\nexpect: {empty: true}\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\nsnapshot: {bones: {}}\nexpect: {empty: true}\n",
			wantErr: "description is required",
		},
		{
			name:    "no pose",
			content: "name: n\ndescription: d\nexpect: {empty: true}\n",
			wantErr: "one of pose or snapshot is required",
		},
		{
			name:    "both pose and snapshot",
			content: "name: n\ndescription: d\npose: p.yaml\nsnapshot: {bones: {}}\nexpect: {empty: true}\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "pose file missing",
			content: "name: n\ndescription: d\npose: missing.yaml\nexpect: {empty: true}\n",
			wantErr: "pose file not found",
		},
		{
			name:    "unknown schema",
			content: "name: n\ndescription: d\nschema: 9\nsnapshot: {bones: {}}\nexpect: {empty: true}\n",
			wantErr: "unknown schema version 9",
		},
		{
			name:    "checks nothing",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\n",
			wantErr: "checks nothing",
		},
		{
			name:    "empty with fingerprint",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nexpect: {empty: true, fingerprint: abc}\n",
			wantErr: "expect.empty",
		},
		{
			name:    "name without names",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nexpect: {name: X}\n",
			wantErr: "expect.name requires names",
		},
		{
			name:    "assertion without type",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nassertions: [{slot: 1}]\n",
			wantErr: "type is required",
		},
		{
			name:    "unknown assertion type",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nassertions: [{type: shiny}]\n",
			wantErr: "unknown type",
		},
		{
			name:    "scale without factor",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nassertions: [{type: scale_invariant}]\n",
			wantErr: "positive factor",
		},
		{
			name:    "negative slot",
			content: "name: n\ndescription: d\nsnapshot: {bones: {}}\nassertions: [{type: missing, slots: [-1]}]\n",
			wantErr: "must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), "s.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindScenarios(t *testing.T) {
	files, err := FindScenarios(filepath.Join("testdata", "scenarios"), "")
	require.NoError(t, err)
	assert.Len(t, files, 7)
	assert.IsIncreasing(t, files)

	files, err = FindScenarios(filepath.Join("testdata", "scenarios"), "full_*")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "scenarios", "full_cue.yaml"),
		filepath.Join("testdata", "scenarios", "full_legacy.yaml"),
		filepath.Join("testdata", "scenarios", "full_refined.yaml"),
	}, files)
}

func TestFindScenarios_InvalidFilter(t *testing.T) {
	_, err := FindScenarios(filepath.Join("testdata", "scenarios"), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestFindScenarios_SkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a.yaml", "")
	writeScenario(t, dir, "b.yml", "")
	writeScenario(t, dir, "notes.txt", "")

	files, err := FindScenarios(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)
}
