package fingerprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// Fingerprint is an encoded vector together with the schema that produced it.
type Fingerprint struct {
	Schema int    `json:"schema"`
	Value  string `json:"value"`
}

// Compute fingerprints body under schema. An invalid body yields a
// Fingerprint with an empty Value.
func Compute(body skeleton.Body, schema Schema) Fingerprint {
	fp := Fingerprint{Schema: schema.Version}
	v := BuildVector(body, schema)
	if v == nil {
		return fp
	}
	fp.Value = Encode(v)
	return fp
}

// Debug renders body's vector under schema with DebugRender. An invalid
// body yields "".
func Debug(body skeleton.Body, schema Schema) string {
	v := BuildVector(body, schema)
	if v == nil {
		return ""
	}
	return DebugRender(v)
}

// IsZero reports whether the fingerprint is empty.
func (f Fingerprint) IsZero() bool {
	return f.Value == ""
}

// String returns the bare base64 value.
func (f Fingerprint) String() string {
	return f.Value
}

// Tagged renders "v<schema>:<value>", the form to persist or compare across
// schemas. An empty fingerprint renders as "".
func (f Fingerprint) Tagged() string {
	if f.IsZero() {
		return ""
	}
	return fmt.Sprintf("v%d:%s", f.Schema, f.Value)
}

// Vector decodes the fingerprint against its own schema.
func (f Fingerprint) Vector() (Vector, error) {
	schema, err := LookupSchema(f.Schema)
	if err != nil {
		return nil, err
	}
	return Decode(f.Value, schema)
}

// ParseTagged parses the output of Tagged. The schema must be known and the
// value must decode to a vector of that schema's length.
func ParseTagged(s string) (Fingerprint, error) {
	prefix, value, ok := strings.Cut(s, ":")
	if !ok || !strings.HasPrefix(prefix, "v") {
		return Fingerprint{}, fmt.Errorf("parse tagged fingerprint %q: missing v<schema>: prefix", s)
	}
	version, err := strconv.Atoi(strings.TrimPrefix(prefix, "v"))
	if err != nil {
		return Fingerprint{}, fmt.Errorf("parse tagged fingerprint %q: %w", s, err)
	}
	fp := Fingerprint{Schema: version, Value: value}
	if _, err := fp.Vector(); err != nil {
		return Fingerprint{}, fmt.Errorf("parse tagged fingerprint %q: %w", s, err)
	}
	return fp, nil
}

// Parse accepts either a tagged fingerprint or a bare value, which is read
// under defaultVersion.
func Parse(s string, defaultVersion int) (Fingerprint, error) {
	if strings.HasPrefix(s, "v") && strings.Contains(s, ":") {
		return ParseTagged(s)
	}
	fp := Fingerprint{Schema: defaultVersion, Value: s}
	if _, err := fp.Vector(); err != nil {
		return Fingerprint{}, err
	}
	return fp, nil
}
