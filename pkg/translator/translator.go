package translator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/openlocale/glot/pkg/catalog"
	"github.com/openlocale/glot/pkg/coverage"
)

// Translator aggregates catalogs keyed by language code and answers
// lookups via the selected-then-default fallback chain.
type Translator struct {
	// SelectedCode and DefaultCode name the primary and fallback catalogs.
	// Either may point at a code that is not loaded; lookups then report
	// not ready instead of failing.
	SelectedCode string
	DefaultCode  string

	catalogs map[string]*catalog.Catalog
}

// New returns an empty translator with no codes selected.
func New() *Translator {
	return &Translator{catalogs: make(map[string]*catalog.Catalog)}
}

// Load adds catalogs keyed by their code. A catalog whose code is already
// loaded is silently skipped, so batch loads tolerate partial duplicates;
// use Replace to overwrite on collision.
func (t *Translator) Load(catalogs ...*catalog.Catalog) {
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if _, exists := t.catalogs[c.Code]; exists {
			continue
		}
		t.catalogs[c.Code] = c
	}
}

// Replace adds catalogs keyed by their code, overwriting any already
// loaded under the same code.
func (t *Translator) Replace(catalogs ...*catalog.Catalog) {
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		t.catalogs[c.Code] = c
	}
}

// Unload removes the catalogs loaded under the given codes.
func (t *Translator) Unload(codes ...string) {
	for _, code := range codes {
		delete(t.catalogs, code)
	}
}

// UnloadAll removes every loaded catalog.
func (t *Translator) UnloadAll() {
	t.catalogs = make(map[string]*catalog.Catalog)
}

// Clear resets the translator to its initial empty state for reuse.
func (t *Translator) Clear() {
	t.SelectedCode = ""
	t.DefaultCode = ""
	t.UnloadAll()
}

// IsLoaded reports whether a catalog is loaded under the given code.
func (t *Translator) IsLoaded(code string) bool {
	_, ok := t.catalogs[code]
	return ok
}

// Len returns the number of loaded catalogs.
func (t *Translator) Len() int {
	return len(t.catalogs)
}

// Catalogs returns the loaded catalogs ordered by code.
func (t *Translator) Catalogs() []*catalog.Catalog {
	catalogs := make([]*catalog.Catalog, 0, len(t.catalogs))
	for _, code := range slices.Sorted(maps.Keys(t.catalogs)) {
		catalogs = append(catalogs, t.catalogs[code])
	}
	return catalogs
}

// SelectedCatalog resolves SelectedCode against the loaded catalogs,
// returning nil when the code is unset or not loaded.
func (t *Translator) SelectedCatalog() *catalog.Catalog {
	if t.SelectedCode == "" {
		return nil
	}
	return t.catalogs[t.SelectedCode]
}

// DefaultCatalog resolves DefaultCode against the loaded catalogs,
// returning nil when the code is unset or not loaded.
func (t *Translator) DefaultCatalog() *catalog.Catalog {
	if t.DefaultCode == "" {
		return nil
	}
	return t.catalogs[t.DefaultCode]
}

// Ready reports whether both the selected and the default code resolve to
// loaded catalogs.
func (t *Translator) Ready() bool {
	return t.SelectedCatalog() != nil && t.DefaultCatalog() != nil
}

// Lookup resolves key through the selected catalog first and the default
// catalog second; when both miss, the key doubles as its own fallback.
// ok is false only when the translator is not ready.
func (t *Translator) Lookup(key string) (string, bool) {
	return t.LookupOr(key, key)
}

// LookupOr is Lookup with a caller-supplied fallback value for when both
// the selected and the default catalog miss the key.
func (t *Translator) LookupOr(key, fallback string) (string, bool) {
	if !t.Ready() {
		return "", false
	}
	if v, err := t.SelectedCatalog().Translation(key); err == nil {
		return v, true
	}
	if v, err := t.DefaultCatalog().Translation(key); err == nil {
		return v, true
	}
	return fallback, true
}

// LookupStrict resolves key through the fallback chain and fails with
// catalog.ErrKeyNotFound when both tiers miss, or ErrNotReady when the
// translator is unconfigured.
func (t *Translator) LookupStrict(key string) (string, error) {
	if !t.Ready() {
		return "", ErrNotReady
	}
	if v, err := t.SelectedCatalog().Translation(key); err == nil {
		return v, nil
	}
	v, err := t.DefaultCatalog().Translation(key)
	if err != nil {
		return "", fmt.Errorf("%w: %q", catalog.ErrKeyNotFound, key)
	}
	return v, nil
}

// RemoveTranslation removes key from every loaded catalog. Used to keep
// catalogs schema-aligned after a key removal decision.
func (t *Translator) RemoveTranslation(key string) {
	for _, c := range t.catalogs {
		c.Remove(key)
	}
}

// RenameTranslation renames a key in every loaded catalog, with the same
// keepOld/overwrite semantics as catalog.Rename.
func (t *Translator) RenameTranslation(oldKey, newKey string, keepOld, overwrite bool) {
	for _, c := range t.catalogs {
		c.Rename(oldKey, newKey, keepOld, overwrite)
	}
}

// Coverage evaluates translation coverage over the loaded catalogs. It
// returns nil while no ready catalogs are loaded.
func (t *Translator) Coverage() *coverage.Report {
	return coverage.Evaluate(t.Catalogs(), false)
}
