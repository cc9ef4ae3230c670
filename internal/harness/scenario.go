package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/pose"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Schema is the fingerprint schema version. Zero means the default.
	Schema int `yaml:"schema,omitempty"`

	// Pose is a path to a pose file (.yaml, .json or .cue).
	// Relative paths are resolved against the scenario file's directory.
	Pose string `yaml:"pose,omitempty"`

	// Snapshot is an inline pose, used when Pose is empty.
	Snapshot *pose.Document `yaml:"snapshot,omitempty"`

	// Names seeds the registry before the name expectation is checked.
	// Keys are fingerprint values under Schema.
	Names map[string]string `yaml:"names,omitempty"`

	// Expect holds exact expectations on the output.
	Expect Expect `yaml:"expect"`

	// Assertions check properties of the output.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Expect lists exact expectations. Empty fields are not checked.
type Expect struct {
	// Fingerprint is the expected base64 value.
	Fingerprint string `yaml:"fingerprint,omitempty"`

	// Vector is the expected slot values.
	Vector []int16 `yaml:"vector,omitempty"`

	// Debug is the expected debug rendering.
	Debug string `yaml:"debug,omitempty"`

	// Name is the display name the registry must return.
	Name string `yaml:"name,omitempty"`

	// Empty expects no fingerprint at all (invalid body).
	Empty bool `yaml:"empty,omitempty"`
}

// Assertion checks a property of the computed vector.
type Assertion struct {
	// Type selects the check; see the Assert* constants.
	Type string `yaml:"type"`

	// Slot is the slot index (used by slot).
	Slot int `yaml:"slot,omitempty"`

	// Value is the expected slot value (used by slot).
	Value int16 `yaml:"value,omitempty"`

	// Slots lists slot indices (used by asymmetric and missing).
	Slots []int `yaml:"slots,omitempty"`

	// Factor is the uniform scale applied to the pose (used by scale_invariant).
	Factor float64 `yaml:"factor,omitempty"`
}

// Assertion type constants.
const (
	AssertSlot           = "slot"
	AssertSymmetric      = "symmetric"
	AssertAsymmetric     = "asymmetric"
	AssertMissing        = "missing"
	AssertScaleInvariant = "scale_invariant"
	AssertRoundTrip      = "round_trip"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve the pose path BEFORE validation
	if scenario.Pose != "" && !filepath.IsAbs(scenario.Pose) {
		scenario.Pose = filepath.Join(filepath.Dir(path), scenario.Pose)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarios returns the YAML files under dir, sorted by path. A
// non-empty filter is a glob matched against each file's base name without
// extension.
func FindScenarios(dir, filter string) ([]string, error) {
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			if matched, _ := filepath.Match(filter, name); !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Schema != 0 {
		if _, err := fingerprint.LookupSchema(s.Schema); err != nil {
			return err
		}
	}

	switch {
	case s.Pose == "" && s.Snapshot == nil:
		return fmt.Errorf("one of pose or snapshot is required")
	case s.Pose != "" && s.Snapshot != nil:
		return fmt.Errorf("pose and snapshot are mutually exclusive")
	}

	if s.Pose != "" {
		if _, err := os.Stat(s.Pose); os.IsNotExist(err) {
			return fmt.Errorf("pose file not found: %s", s.Pose)
		}
	}

	if s.Expect.Empty && (s.Expect.Fingerprint != "" || len(s.Expect.Vector) > 0 || s.Expect.Debug != "") {
		return fmt.Errorf("expect.empty cannot be combined with fingerprint, vector or debug")
	}

	if s.Expect.Name != "" && len(s.Names) == 0 {
		return fmt.Errorf("expect.name requires names")
	}

	if !s.Expect.hasChecks() && len(s.Assertions) == 0 {
		return fmt.Errorf("scenario checks nothing: add expect fields or assertions")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func (e Expect) hasChecks() bool {
	return e.Fingerprint != "" || len(e.Vector) > 0 || e.Debug != "" || e.Name != "" || e.Empty
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertSlot:
		if a.Slot < 0 {
			return fmt.Errorf("assertions[%d]: slot must be >= 0", index)
		}
	case AssertSymmetric, AssertRoundTrip:
	case AssertAsymmetric, AssertMissing:
		for _, slot := range a.Slots {
			if slot < 0 {
				return fmt.Errorf("assertions[%d]: slot %d must be >= 0", index, slot)
			}
		}
	case AssertScaleInvariant:
		if a.Factor <= 0 {
			return fmt.Errorf("assertions[%d]: scale_invariant requires a positive factor", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown type %q", index, a.Type)
	}
	return nil
}
