package catalog

import "errors"

var (
	ErrInvalidFormat      = errors.New("catalog: invalid catalog data")
	ErrUnsupportedVersion = errors.New("catalog: unsupported catalog version")
	ErrKeyNotFound        = errors.New("catalog: translation key not found")
)
