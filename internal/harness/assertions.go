package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/pose"
)

// AssertionError is returned when an assertion fails.
// It includes the full vector to help debug the failure.
type AssertionError struct {
	Type     string             // Assertion type for categorization
	Expected string             // Human-readable expected outcome
	Actual   string             // Human-readable actual outcome
	Vector   fingerprint.Vector // Full vector for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Vector != nil {
		fmt.Fprintf(&buf, "\nVector:\n")
		for i, x := range e.Vector {
			fmt.Fprintf(&buf, "  [%d] %d\n", i, x)
		}
	}

	return buf.String()
}

// AssertionContext carries what property assertions need beyond the vector.
type AssertionContext struct {
	Snapshot    *pose.Snapshot
	Schema      fingerprint.Schema
	Fingerprint fingerprint.Fingerprint
}

// EvaluateAssertions runs every assertion against v and returns the
// failure messages in assertion order.
func EvaluateAssertions(v fingerprint.Vector, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string
	for _, a := range assertions {
		if err := evaluateAssertion(v, a, actx); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func evaluateAssertion(v fingerprint.Vector, a Assertion, actx *AssertionContext) error {
	switch a.Type {
	case AssertSlot:
		return assertSlot(v, a)
	case AssertSymmetric:
		return assertSlotSet(AssertSymmetric, v, v.AsymmetricSlots(), nil)
	case AssertAsymmetric:
		return assertSlotSet(AssertAsymmetric, v, v.AsymmetricSlots(), a.Slots)
	case AssertMissing:
		return assertSlotSet(AssertMissing, v, v.MissingSlots(), a.Slots)
	case AssertScaleInvariant:
		return assertScaleInvariant(a, actx)
	case AssertRoundTrip:
		return assertRoundTrip(v, actx)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

// assertSlot checks a single slot value.
func assertSlot(v fingerprint.Vector, a Assertion) error {
	if a.Slot >= len(v) {
		return &AssertionError{
			Type:     AssertSlot,
			Expected: fmt.Sprintf("slot %d = %d", a.Slot, a.Value),
			Actual:   fmt.Sprintf("vector has %d slots", len(v)),
			Vector:   v,
		}
	}
	if v[a.Slot] != a.Value {
		return &AssertionError{
			Type:     AssertSlot,
			Expected: fmt.Sprintf("slot %d = %d", a.Slot, a.Value),
			Actual:   fmt.Sprintf("slot %d = %d", a.Slot, v[a.Slot]),
			Vector:   v,
		}
	}
	return nil
}

// assertSlotSet compares a computed set of slot indices with the expected
// set. Order in the scenario file does not matter.
func assertSlotSet(kind string, v fingerprint.Vector, got, want []int) error {
	want = slices.Clone(want)
	slices.Sort(want)
	if slices.Equal(got, want) {
		return nil
	}
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("slots %v", nonNil(want)),
		Actual:   fmt.Sprintf("slots %v", nonNil(got)),
		Vector:   v,
	}
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

// assertScaleInvariant fingerprints the pose scaled by a.Factor and
// compares it with the unscaled fingerprint.
func assertScaleInvariant(a Assertion, actx *AssertionContext) error {
	scaled := fingerprint.Compute(actx.Snapshot.Scaled(a.Factor), actx.Schema)
	if scaled != actx.Fingerprint {
		return &AssertionError{
			Type:     AssertScaleInvariant,
			Expected: fmt.Sprintf("%q after scaling by %v", actx.Fingerprint.Value, a.Factor),
			Actual:   fmt.Sprintf("%q", scaled.Value),
		}
	}
	return nil
}

// assertRoundTrip decodes the fingerprint and compares it with v.
func assertRoundTrip(v fingerprint.Vector, actx *AssertionContext) error {
	if actx.Fingerprint.IsZero() {
		return &AssertionError{
			Type:     AssertRoundTrip,
			Expected: "a fingerprint to decode",
			Actual:   "empty fingerprint",
		}
	}
	decoded, err := actx.Fingerprint.Vector()
	if err != nil {
		return &AssertionError{
			Type:     AssertRoundTrip,
			Expected: fmt.Sprintf("%q to decode", actx.Fingerprint.Value),
			Actual:   err.Error(),
			Vector:   v,
		}
	}
	if !decoded.Equal(v) {
		return &AssertionError{
			Type:     AssertRoundTrip,
			Expected: fmt.Sprintf("%v", []int16(v)),
			Actual:   fmt.Sprintf("%v", []int16(decoded)),
			Vector:   v,
		}
	}
	return nil
}
