// Package translator resolves translation lookups over a set of loaded
// catalogs through a two-tier fallback chain.
//
// A Translator indexes catalogs by language code and names two of them: the
// selected (primary) language and the default (fallback) language. Lookups
// try the selected catalog first, the default catalog second, and finally
// degrade to the key itself or a caller-supplied fallback value.
//
//	tr := translator.New()
//	tr.Load(english, portuguese)
//	tr.SelectedCode = "pt"
//	tr.DefaultCode = "en"
//
//	text, ok := tr.Lookup("app.welcome")
//
// An unconfigured translator is not an error: while either the selected or
// the default code is unset or not loaded, lenient lookups report ok=false
// and no text, since there is nothing meaningful to show.
//
// # Loading
//
// Catalogs arrive through Load/Replace, one file at a time through
// LoadFile, or in bulk through LoadDir, which parses directory entries
// concurrently and silently skips files that are not valid catalogs.
// Match picks the best loaded code for an HTTP Accept-Language header.
//
// # Concurrency
//
// A Translator is not safe for uncoordinated concurrent writers; use one
// per logical session or serialize access externally. LoadDir parallelizes
// only the parsing of independent files and touches the translator from a
// single goroutine.
package translator
