package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// FingerprintSnapshot is the golden-file form of a scenario result.
type FingerprintSnapshot struct {
	ScenarioName string  `json:"scenario_name"`
	Schema       int     `json:"schema"`
	Fingerprint  string  `json:"fingerprint"`
	Tagged       string  `json:"tagged"`
	Vector       []int16 `json:"vector"`
	Name         string  `json:"name,omitempty"`
}

// NewFingerprintSnapshot builds the golden form of result.
func NewFingerprintSnapshot(scenarioName string, result *Result) FingerprintSnapshot {
	vector := []int16(result.Vector)
	if vector == nil {
		vector = []int16{}
	}
	return FingerprintSnapshot{
		ScenarioName: scenarioName,
		Schema:       result.Fingerprint.Schema,
		Fingerprint:  result.Fingerprint.Value,
		Tagged:       result.Fingerprint.Tagged(),
		Vector:       vector,
		Name:         result.Name,
	}
}

// Marshal renders the snapshot as indented JSON with a trailing newline.
// HTML escaping is off so base64 text is written verbatim.
func (s FingerprintSnapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares the result against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the result doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := NewFingerprintSnapshot(scenarioName, result).Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
