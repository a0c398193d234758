package store

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a store.
type Format int

const (
	FormatXML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the encoding from the file extension. Anything that is
// not .yml or .yaml is treated as XML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// Load reads a store file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	return Decode(data, FormatFromPath(path))
}

// Decode parses a store from raw bytes.
func Decode(data []byte, format Format) (*Store, error) {
	var s Store
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing store: %w", err)
		}
	default:
		if err := xml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing store: %w", err)
		}
	}
	return &s, nil
}

// Encode serializes the store.
func (s *Store) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encoding store: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding store: %w", err)
		}
	default:
		buf.WriteString(xml.Header)
		enc := xml.NewEncoder(&buf)
		enc.Indent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encoding store: %w", err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Save writes the store to path, choosing the encoding from the extension.
// The file is replaced atomically through a temporary file in the same
// directory. Only the fields of Store are written back: comments and elements
// the store does not model are lost when a hand-written file is saved.
func (s *Store) Save(path string) error {
	data, err := s.Encode(FormatFromPath(path))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("setting store file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
