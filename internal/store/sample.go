package store

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample.xml
var sampleXML []byte

// Sample returns a fresh copy of the bundled example store.
func Sample() *Store {
	s, err := Decode(sampleXML, FormatXML)
	if err != nil {
		panic(fmt.Sprintf("bundled sample store is invalid: %v", err))
	}
	return s
}

// WriteSample writes the bundled example store to path in the encoding picked
// by its extension. An existing file is only replaced when force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("store file %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return Sample().Save(path)
}
