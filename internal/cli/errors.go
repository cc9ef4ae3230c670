package cli

import (
	"errors"

	"github.com/roach88/avatarhash/internal/pose"
)

// Error code constants - unified across all CLI commands.
// Pose loading errors keep the E2xx codes of the pose package.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeInvalidArg     = "E002" // Invalid argument or flag combination
	ErrCodeUnknownSchema  = "E003" // Schema version not known
	ErrCodeBadFingerprint = "E004" // Fingerprint does not decode
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeRegistry       = "E006" // Registry open/read/write failed
	ErrCodeWriteFailed    = "E007" // File write error
	ErrCodeNoName         = "E008" // Fingerprint has no registered name
	ErrCodeTestFailed     = "E009" // One or more scenarios failed
)

// poseErrorCode returns the pose package's code for err, or ErrCodeGeneric.
func poseErrorCode(err error) string {
	var loadErr *pose.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}
