package pose

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Format identifies a snapshot encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", &LoadError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported snapshot extension %q (want .yaml, .yml, .json or .cue)", filepath.Ext(path)),
			Path:    path,
		}
	}
}

// Load reads a snapshot file, choosing the decoder by extension.
func Load(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: err.Error(), Path: path, Err: err}
	}

	snap, err := Parse(data, format, path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Path == "" {
			loadErr.Path = path
		}
		return nil, err
	}
	return snap, nil
}

// Parse decodes a snapshot from data. filename is used in CUE positions
// and may be empty.
func Parse(data []byte, format Format, filename string) (*Snapshot, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatCUE:
		doc, err = decodeCUE(data, filename)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Message: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, err
	}
	return NewSnapshot(doc)
}

func decodeYAML(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing YAML: %v", err), Err: err}
	}
	return doc, nil
}

func decodeJSON(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing JSON: %v", err), Err: err}
	}
	return doc, nil
}

func decodeCUE(data []byte, filename string) (Document, error) {
	if filename == "" {
		filename = "snapshot.cue"
	}
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Document{}, fmt.Errorf("compiling pose schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Document{}, cueLoadError(ErrCodeParse, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Pose")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Document{}, cueLoadError(ErrCodeSchema, err)
	}

	var doc Document
	if err := unified.Decode(&doc); err != nil {
		return Document{}, cueLoadError(ErrCodeSchema, err)
	}
	return doc, nil
}

// cueLoadError converts a CUE error to a LoadError carrying the position
// of the first reported problem.
func cueLoadError(code string, err error) *LoadError {
	loadErr := &LoadError{
		Code:    code,
		Message: strings.TrimSpace(cueerrors.Details(err, nil)),
		Err:     err,
	}
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		loadErr.Pos = errs[0].Position()
	}
	return loadErr
}
