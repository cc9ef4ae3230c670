package fingerprint

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLengthMismatch reports a decoded vector whose length does not fit the
// expected schema.
var ErrLengthMismatch = errors.New("fingerprint length does not match schema")

// Encode packs v as little-endian int16s and returns standard padded base64.
func Encode(v Vector) string {
	buf := make([]byte, 2*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(x))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeRaw reverses Encode without checking the vector length.
func DecodeRaw(s string) (Vector, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode fingerprint: %w", err)
	}
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("decode fingerprint: odd byte length %d", len(buf))
	}

	v := make(Vector, len(buf)/2)
	for i := range v {
		v[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return v, nil
}

// Decode reverses Encode and checks that the vector has one slot per limb
// pair of schema.
func Decode(s string, schema Schema) (Vector, error) {
	v, err := DecodeRaw(s)
	if err != nil {
		return nil, err
	}
	if len(v) != schema.Len() {
		return nil, fmt.Errorf("%w: got %d slots, schema v%d has %d",
			ErrLengthMismatch, len(v), schema.Version, schema.Len())
	}
	return v, nil
}

// DebugRender writes each slot in decimal on its own line. The output is
// for people; never compare it in place of the fingerprint.
func DebugRender(v Vector) string {
	var sb strings.Builder
	for _, x := range v {
		sb.WriteString(strconv.Itoa(int(x)))
		sb.WriteByte('\n')
	}
	return sb.String()
}
