package cssbundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultManifestName is the manifest file looked up in the stylesheet directory
const DefaultManifestName = "compiler_config.json"

// DefaultEntries is written when no manifest exists yet
var DefaultEntries = []Entry{{Source: "base.css", Output: "app.css"}}

// Manifest maps source stylesheets to compiled outputs, in file order
type Manifest struct {
	Path    string
	Entries []Entry
	Created bool // Written with DefaultEntries by LoadManifest
}

// Dir is the directory entry paths are relative to
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// LoadManifest reads the manifest at path. When the file does not exist the
// default manifest is written first and returned with Created set.
func LoadManifest(path string) (*Manifest, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := WriteManifest(path, DefaultEntries); err != nil {
			return nil, err
		}
		return &Manifest{Path: path, Entries: append([]Entry(nil), DefaultEntries...), Created: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadManifest, path, err)
	}

	entries, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Manifest{Path: path, Entries: entries}, nil
}

// ParseManifest decodes a JSON object of source -> output strings. Key order
// is preserved; a repeated key keeps its first position and its last value.
func ParseManifest(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidManifest)
	}

	var entries []Entry
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		source, _ := tok.(string) // object keys are always strings

		var output *string
		if err := dec.Decode(&output); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrInvalidManifest, source, err)
		}
		if output == nil {
			return nil, fmt.Errorf("%w: null output for %q", ErrInvalidManifest, source)
		}

		if i, seen := index[source]; seen {
			entries[i].Output = *output
			continue
		}
		index[source] = len(entries)
		entries = append(entries, Entry{Source: source, Output: *output})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidManifest)
	}

	return entries, nil
}

// WriteManifest writes entries as an indented JSON object, in order
func WriteManifest(path string, entries []Entry) error {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		key, _ := json.Marshal(e.Source)
		val, _ := json.Marshal(e.Output)
		fmt.Fprintf(&buf, "\n    %s: %s", key, val)
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
