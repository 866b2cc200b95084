package catalog

import (
	"errors"
	"os"
	"path/filepath"
)

// Status classifies a file checked by CheckPaths.
type Status int

const (
	// StatusInvalid marks files that are not catalogs at all: unreadable,
	// undecodable, or missing required fields.
	StatusInvalid Status = iota
	// StatusValid marks well-formed catalogs at the supported version.
	StatusValid
	// StatusIncompatible marks recognizable catalogs declaring a schema
	// version this package does not understand.
	StatusIncompatible
)

// String returns a short human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusIncompatible:
		return "incompatible version"
	default:
		return "invalid"
	}
}

// CheckPaths classifies the given files, and the files directly inside any
// given directory (one level, no recursion), as valid, invalid, or
// valid-but-newer-schema catalogs. Paths that do not exist count as
// invalid.
func CheckPaths(paths ...string) map[string]Status {
	status := make(map[string]Status)
	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			status[path] = StatusInvalid
		case info.IsDir():
			entries, err := os.ReadDir(path)
			if err != nil {
				status[path] = StatusInvalid
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				p := filepath.Join(path, entry.Name())
				status[p] = checkFile(p)
			}
		default:
			status[path] = checkFile(path)
		}
	}
	return status
}

func checkFile(path string) Status {
	_, err := Load(path)
	switch {
	case err == nil:
		return StatusValid
	case errors.Is(err, ErrUnsupportedVersion):
		return StatusIncompatible
	default:
		return StatusInvalid
	}
}
