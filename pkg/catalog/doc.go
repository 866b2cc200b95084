// Package catalog implements versioned language catalogs: one language's
// display metadata plus a flat mapping from opaque translation keys to
// localized text.
//
// A catalog is self-contained. It owns its validation rules, its equality
// semantics, and its JSON/YAML interchange format, so callers can build
// catalogs in code, parse them from files, edit them in place, and write
// them back without any shared state.
//
// # Interchange Format
//
// Catalog files are flat JSON (or YAML) documents carrying exactly seven
// fields:
//
//	{
//	    "name": "English",
//	    "code": "en",
//	    "version": 1,
//	    "revision": 3,
//	    "authors": ["Core Team"],
//	    "contributors": [],
//	    "translations": {
//	        "app.welcome": "Welcome"
//	    }
//	}
//
// The version field names the schema, not the content; content changes are
// tracked by the caller-incremented revision. Parse rejects documents whose
// version differs from SupportedVersion with ErrUnsupportedVersion so that
// callers can tell "needs a newer reader" apart from "is corrupt"
// (ErrInvalidFormat).
//
// # Lookups
//
// Translate never fails: a missing key falls back to the key itself, which
// keeps UI text readable even for unmapped keys. Translation is the strict
// variant and reports ErrKeyNotFound instead.
//
//	c, err := catalog.Parse(data)
//	if err != nil {
//	    return err
//	}
//	label := c.Translate("app.welcome")
//
// # Concurrency
//
// Catalogs are plain mutable values and are not safe for concurrent
// writers; callers that share an instance must serialize access.
package catalog
