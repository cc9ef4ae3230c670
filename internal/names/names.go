package names

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Entry is one fingerprint/name pair.
type Entry struct {
	Fingerprint string `json:"fingerprint"`
	Name        string `json:"name"`
}

// Directory maps fingerprint strings to display names. The zero value is an
// empty directory; a nil *Directory is also empty.
type Directory struct {
	names map[string]string
}

// Load reads a name asset from path.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name asset: %w", err)
	}
	dir, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dir, nil
}

// Parse decodes a name asset. Display names are NFC-normalized; keys are
// kept byte-for-byte.
func Parse(data []byte) (*Directory, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse name asset: %w", err)
	}
	dir := &Directory{names: make(map[string]string, len(raw))}
	for fp, name := range raw {
		dir.names[fp] = norm.NFC.String(name)
	}
	return dir, nil
}

// Lookup returns the display name for fp, or "" if fp is not listed.
func (d *Directory) Lookup(fp string) string {
	if d == nil {
		return ""
	}
	return d.names[fp]
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Set adds or replaces an entry.
func (d *Directory) Set(fp, name string) {
	if d.names == nil {
		d.names = make(map[string]string)
	}
	d.names[fp] = norm.NFC.String(name)
}

// Entries returns all entries sorted by fingerprint.
func (d *Directory) Entries() []Entry {
	if d == nil {
		return nil
	}
	entries := make([]Entry, 0, len(d.names))
	for fp, name := range d.names {
		entries = append(entries, Entry{Fingerprint: fp, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Fingerprint < entries[j].Fingerprint
	})
	return entries
}

// MarshalJSON writes the asset form with sorted keys and without HTML
// escaping, so names like "R&D" survive unchanged.
func (d *Directory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	names := map[string]string{}
	if d != nil && d.names != nil {
		names = d.names
	}
	if err := enc.Encode(names); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Save writes the directory to path as an indented asset.
func (d *Directory) Save(path string) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode name asset: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("encode name asset: %w", err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("write name asset: %w", err)
	}
	return nil
}
