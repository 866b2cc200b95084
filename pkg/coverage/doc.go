// Package coverage analyzes how completely a set of language catalogs
// covers the union of all translation keys observed across them.
//
// Evaluate is a pure function over catalogs: it filters out nil and
// not-ready inputs, fixes the union of keys across the survivors, and then
// rates each catalog against that fixed union. The result reports missing
// keys and a coverage percentage per catalog plus aggregate averages.
//
//	report := coverage.Evaluate(tr.Catalogs(), false)
//	if report == nil {
//	    // nothing analyzable was given
//	}
//
// Reports are ephemeral: each call builds a fresh one and nothing is
// cached.
package coverage
