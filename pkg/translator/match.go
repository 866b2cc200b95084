package translator

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Match returns the loaded catalog code that best satisfies an HTTP
// Accept-Language header, honoring quality values. When the header is
// empty or matches nothing, the default code wins if loaded, otherwise the
// first loaded code by sort order. An empty translator returns "".
func (t *Translator) Match(acceptLanguage string) string {
	codes := t.matchOrder()
	if len(codes) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(codes))
	valid := make([]string, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		valid = append(valid, code)
	}
	if len(valid) == 0 {
		return codes[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return valid[0]
	}

	_, index, _ := language.NewMatcher(tags).Match(desired...)
	return valid[index]
}

// matchOrder lists loaded codes with the default language first; the
// matcher treats the first tag as the ultimate fallback.
func (t *Translator) matchOrder() []string {
	codes := slices.Sorted(maps.Keys(t.catalogs))
	if t.DefaultCode != "" && t.IsLoaded(t.DefaultCode) {
		codes = slices.DeleteFunc(codes, func(code string) bool {
			return code == t.DefaultCode
		})
		codes = append([]string{t.DefaultCode}, codes...)
	}
	return codes
}
