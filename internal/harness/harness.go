package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/names"
	"github.com/roach88/avatarhash/internal/pose"
	"github.com/roach88/avatarhash/internal/store"
	"github.com/roach88/avatarhash/internal/testutil"
)

// Harness is the scenario execution engine.
type Harness struct {
	store  *store.Store // nil unless the scenario seeds names
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Load the pose (file or inline snapshot)
// 2. Fingerprint it under the scenario's schema
// 3. Seed a fresh in-memory registry and resolve the name, if names are given
// 4. Check expectations and evaluate assertions
//
// An error is returned only when the scenario cannot be executed at all.
// Failed checks are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	schema := fingerprint.Default()
	if scenario.Schema != 0 {
		s, err := fingerprint.LookupSchema(scenario.Schema)
		if err != nil {
			return nil, err
		}
		schema = s
	}

	snap, err := loadSnapshot(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load pose: %w", err)
	}

	result := NewResult()
	result.Vector = fingerprint.BuildVector(snap, schema)
	result.Fingerprint = fingerprint.Compute(snap, schema)
	result.Debug = fingerprint.Debug(snap, schema)

	ctx := context.Background()

	if len(scenario.Names) > 0 {
		st, err := store.Open(":memory:",
			store.WithLogger(h.logger),
			store.WithIDGenerator(testutil.NewFixedIDGenerator("scenario")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory store: %w", err)
		}
		defer st.Close()
		h.store = st

		if err := h.resolveName(ctx, scenario, schema, result); err != nil {
			return nil, err
		}
	}

	checkExpectations(scenario.Expect, result)

	actx := &AssertionContext{
		Snapshot:    snap,
		Schema:      schema,
		Fingerprint: result.Fingerprint,
	}
	for _, msg := range EvaluateAssertions(result.Vector, scenario.Assertions, actx) {
		result.AddError(msg)
	}

	return result, nil
}

func loadSnapshot(scenario *Scenario) (*pose.Snapshot, error) {
	if scenario.Pose != "" {
		return pose.Load(scenario.Pose)
	}
	if scenario.Snapshot == nil {
		return nil, fmt.Errorf("scenario %q has no pose", scenario.Name)
	}
	return pose.NewSnapshot(*scenario.Snapshot)
}

// resolveName seeds the registry with the scenario's names, records the
// computed fingerprint as an observation and looks its name up.
func (h *Harness) resolveName(ctx context.Context, scenario *Scenario, schema fingerprint.Schema, result *Result) error {
	var dir names.Directory
	for fp, name := range scenario.Names {
		dir.Set(fp, name)
	}
	if _, err := h.store.ImportNames(ctx, schema.Version, &dir); err != nil {
		return fmt.Errorf("failed to seed names: %w", err)
	}

	if result.Fingerprint.IsZero() {
		return nil
	}

	if _, err := h.store.WriteObservation(ctx, store.Observation{
		Fingerprint: result.Fingerprint,
		Vector:      result.Vector,
		Source:      scenario.Name,
	}); err != nil {
		return fmt.Errorf("failed to record observation: %w", err)
	}

	name, _, err := h.store.LookupName(ctx, result.Fingerprint)
	if err != nil {
		return fmt.Errorf("failed to look up name: %w", err)
	}
	result.Name = name
	return nil
}

// checkExpectations compares the result with the scenario's exact
// expectations.
func checkExpectations(expect Expect, result *Result) {
	if expect.Empty && !result.Fingerprint.IsZero() {
		result.AddError(fmt.Sprintf("expected empty fingerprint, got %q", result.Fingerprint.Value))
	}

	if expect.Fingerprint != "" && expect.Fingerprint != result.Fingerprint.Value {
		result.AddError(fmt.Sprintf("fingerprint mismatch: expected %q, got %q",
			expect.Fingerprint, result.Fingerprint.Value))
	}

	if len(expect.Vector) > 0 && !slices.Equal(expect.Vector, []int16(result.Vector)) {
		result.AddError(fmt.Sprintf("vector mismatch: expected %v, got %v",
			expect.Vector, []int16(result.Vector)))
	}

	if expect.Debug != "" && expect.Debug != result.Debug {
		result.AddError(fmt.Sprintf("debug mismatch: expected %q, got %q", expect.Debug, result.Debug))
	}

	if expect.Name != "" && expect.Name != result.Name {
		result.AddError(fmt.Sprintf("name mismatch: expected %q, got %q", expect.Name, result.Name))
	}
}
