package harness

import "github.com/roach88/avatarhash/internal/fingerprint"

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expectations and assertions hold.
	Pass bool `json:"pass"`

	// Fingerprint is the computed fingerprint.
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`

	// Vector is the computed vector; nil for an invalid body.
	Vector fingerprint.Vector `json:"vector"`

	// Debug is the debug rendering of Vector.
	Debug string `json:"debug"`

	// Name is the registry name found for Fingerprint, if names were seeded.
	Name string `json:"name,omitempty"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
