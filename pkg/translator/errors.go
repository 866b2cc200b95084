package translator

import "errors"

var (
	// ErrNotReady reports a strict lookup against a translator whose
	// selected or default code is unset or does not name a loaded catalog.
	ErrNotReady = errors.New("translator: selected or default catalog is not loaded")
)
