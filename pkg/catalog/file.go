package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and parses the catalog file at path. Files with a .yaml or
// .yml extension decode as YAML, everything else as JSON.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if isYAMLPath(path) {
		return ParseYAML(data)
	}
	return Parse(data)
}

// Save writes the serialized catalog to path, choosing YAML or JSON by the
// file extension. When the target already exists and overwrite is false
// nothing is written and Save reports false with a nil error.
func (c *Catalog) Save(path string, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("checking %q: %w", path, err)
		}
	}

	var (
		data []byte
		err  error
	)
	if isYAMLPath(path) {
		data, err = c.SerializeYAML()
	} else {
		data, err = c.Serialize()
	}
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %q: %w", path, err)
	}
	return true, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
