package pose

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for snapshot loading.
const (
	ErrCodeRead        = "E201" // File could not be read
	ErrCodeFormat      = "E202" // Unsupported file extension
	ErrCodeParse       = "E203" // Malformed YAML/JSON/CUE
	ErrCodeSchema      = "E204" // CUE schema violation
	ErrCodeUnknownBone = "E205" // Bone name not in the humanoid set
	ErrCodeCoordinates = "E206" // Position is not three finite numbers
)

// LoadError describes why a snapshot could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Pos     token.Pos // CUE position, when the document is CUE
	Err     error
}

func (e *LoadError) Error() string {
	where := e.Path
	if e.Pos.IsValid() {
		where = fmt.Sprintf("%s:%d:%d", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column())
	}
	if where != "" {
		return fmt.Sprintf("%s: %s: %s", where, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
