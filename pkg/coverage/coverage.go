package coverage

import "github.com/openlocale/glot/pkg/catalog"

// Report describes translation completeness across a set of catalogs,
// relative to the union of all keys observed in any of them.
type Report struct {
	// AllKeys is the union of every analyzed catalog's translation keys.
	AllKeys map[string]struct{}
	// MissingKeys maps a catalog code to the keys it lacks from AllKeys.
	MissingKeys map[string]map[string]struct{}
	// Percent maps a catalog code to its share of AllKeys, in percent.
	Percent map[string]float64
	// AvgKeys is the mean translation count across analyzed catalogs.
	AvgKeys float64
	// AvgPercent is the mean coverage percentage across analyzed catalogs.
	AvgPercent float64
	// Analyzed lists the catalogs behind the report when requested.
	Analyzed []*catalog.Catalog
}

// Evaluate builds a coverage report over the given catalogs. Nil and
// not-ready catalogs are skipped, so partial or garbage inputs never abort
// the report; when nothing survives the filter Evaluate returns nil.
// With includeAnalyzed the surviving catalogs are attached to the report.
//
// The key union is fixed before any catalog is rated against it, so the
// result does not depend on input order. An empty union rates every
// catalog at 0 rather than dividing by zero; it is degenerate, not wrong.
func Evaluate(catalogs []*catalog.Catalog, includeAnalyzed bool) *Report {
	valid := make([]*catalog.Catalog, 0, len(catalogs))
	allKeys := make(map[string]struct{})
	for _, c := range catalogs {
		if c == nil || !c.IsReady() {
			continue
		}
		valid = append(valid, c)
		for key := range c.Translations {
			allKeys[key] = struct{}{}
		}
	}
	if len(valid) == 0 {
		return nil
	}

	report := &Report{
		AllKeys:     allKeys,
		MissingKeys: make(map[string]map[string]struct{}, len(valid)),
		Percent:     make(map[string]float64, len(valid)),
	}

	var totalKeys int
	for _, c := range valid {
		missing := make(map[string]struct{})
		for key := range allKeys {
			if !c.Has(key) {
				missing[key] = struct{}{}
			}
		}
		report.MissingKeys[c.Code] = missing
		totalKeys += c.Len()
		if len(allKeys) > 0 {
			report.Percent[c.Code] = float64(c.Len()*100) / float64(len(allKeys))
		} else {
			report.Percent[c.Code] = 0
		}
	}

	report.AvgKeys = float64(totalKeys) / float64(len(valid))
	if len(allKeys) > 0 {
		report.AvgPercent = float64(totalKeys*100) / float64(len(valid)*len(allKeys))
	}

	if includeAnalyzed {
		report.Analyzed = valid
	}
	return report
}
