// Package file provides a filesystem-backed catalog loader.
package file

import (
	"fmt"
	"os"
)

// Loader implements ports.CatalogLoader over a single catalog file.
type Loader struct {
	path string
}

// NewLoader points at a catalog file (YAML).
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Load() ([]byte, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return data, nil
}
