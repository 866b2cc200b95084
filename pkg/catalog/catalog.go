package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// SupportedVersion is the catalog schema version this package reads and writes.
const SupportedVersion = 1

// Catalog holds one language's metadata and its translation mapping.
//
// Absent fields map to Go zero values: empty Name/Code, zero Revision, and
// nil Authors/Contributors all read as "not set". A nil and a non-nil empty
// author list differ only for IsReady; Equal treats them as the same so
// round-tripped catalogs still compare equal to their source.
type Catalog struct {
	Name          string
	Code          string
	FormatVersion int
	Revision      int
	Authors       []string
	Contributors  []string
	Translations  map[string]string
}

// New returns an empty catalog at the supported format version.
func New() *Catalog {
	return &Catalog{
		FormatVersion: SupportedVersion,
		Translations:  make(map[string]string),
	}
}

// IsReady reports whether the catalog carries enough metadata to be used:
// name, code, revision, and both author lists must be set. Translations may
// be empty.
func (c *Catalog) IsReady() bool {
	return c.Name != "" &&
		c.Code != "" &&
		c.Revision != 0 &&
		c.Authors != nil &&
		c.Contributors != nil
}

// Equal reports whether two catalogs carry the same content. Author and
// contributor lists compare by elements, so an absent list equals an empty
// one; this keeps parse(serialize(c)) equal to c.
func (c *Catalog) Equal(o *Catalog) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name &&
		c.Code == o.Code &&
		c.FormatVersion == o.FormatVersion &&
		c.Revision == o.Revision &&
		slices.Equal(c.Authors, o.Authors) &&
		slices.Equal(c.Contributors, o.Contributors) &&
		maps.Equal(c.Translations, o.Translations)
}

// Clear resets the catalog to its initial empty state for reuse.
func (c *Catalog) Clear() {
	c.Name = ""
	c.Code = ""
	c.FormatVersion = SupportedVersion
	c.Revision = 0
	c.Authors = nil
	c.Contributors = nil
	c.Translations = make(map[string]string)
}

// Len returns the number of translations in the catalog.
func (c *Catalog) Len() int {
	return len(c.Translations)
}

// Has reports whether the catalog translates the given key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.Translations[key]
	return ok
}

// Translate returns the text for key, or the key itself when the catalog
// has no mapping for it. The key doubling as its own fallback keeps UI text
// non-blank for unmapped keys.
func (c *Catalog) Translate(key string) string {
	return c.TranslateOr(key, key)
}

// TranslateOr returns the text for key, or fallback when the catalog has no
// mapping for it.
func (c *Catalog) TranslateOr(key, fallback string) string {
	if v, ok := c.Translations[key]; ok {
		return v
	}
	return fallback
}

// Translation is the strict lookup: it returns the text for key or
// ErrKeyNotFound, never a fallback.
func (c *Catalog) Translation(key string) (string, error) {
	v, ok := c.Translations[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Set maps key to value. When the key already exists and overwrite is
// false the call is a no-op and Set reports false.
func (c *Catalog) Set(key, value string, overwrite bool) bool {
	if _, exists := c.Translations[key]; exists && !overwrite {
		return false
	}
	if c.Translations == nil {
		c.Translations = make(map[string]string)
	}
	c.Translations[key] = value
	return true
}

// Rename moves the text under oldKey to newKey. It is a no-op reporting
// false when oldKey is absent, or when newKey exists and overwrite is
// false. With keepOld the text is copied instead of moved.
func (c *Catalog) Rename(oldKey, newKey string, keepOld, overwrite bool) bool {
	value, ok := c.Translations[oldKey]
	if !ok {
		return false
	}
	if _, exists := c.Translations[newKey]; exists && !overwrite {
		return false
	}
	c.Translations[newKey] = value
	if !keepOld {
		delete(c.Translations, oldKey)
	}
	return true
}

// Remove deletes the translation under key and returns the removed text.
func (c *Catalog) Remove(key string) (string, bool) {
	value, ok := c.Translations[key]
	if !ok {
		return "", false
	}
	delete(c.Translations, key)
	return value, true
}

// String returns the display name, or a placeholder for an empty catalog.
func (c *Catalog) String() string {
	if c.Name == "" {
		return "uninitialized catalog"
	}
	return c.Name
}
