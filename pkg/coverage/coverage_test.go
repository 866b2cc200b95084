package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlocale/glot/pkg/catalog"
	"github.com/openlocale/glot/pkg/coverage"
)

func newReadyCatalog(t *testing.T, name, code string, translations map[string]string) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	c.Name = name
	c.Code = code
	c.Revision = 1
	c.Authors = []string{"Core Team"}
	c.Contributors = []string{}
	for key, value := range translations {
		require.True(t, c.Set(key, value, false))
	}
	return c
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("rates catalogs against the key union", func(t *testing.T) {
		t.Parallel()
		en := newReadyCatalog(t, "English", "en", map[string]string{"a": "A", "b": "B"})
		pt := newReadyCatalog(t, "Portuguese", "pt", map[string]string{"a": "A"})

		report := coverage.Evaluate([]*catalog.Catalog{en, pt}, false)
		require.NotNil(t, report)

		assert.Len(t, report.AllKeys, 2)
		assert.Contains(t, report.AllKeys, "a")
		assert.Contains(t, report.AllKeys, "b")

		assert.Empty(t, report.MissingKeys["en"])
		require.Len(t, report.MissingKeys["pt"], 1)
		assert.Contains(t, report.MissingKeys["pt"], "b")

		assert.InDelta(t, 100.0, report.Percent["en"], 0.001)
		assert.InDelta(t, 50.0, report.Percent["pt"], 0.001)
		assert.InDelta(t, 1.5, report.AvgKeys, 0.001)
		assert.InDelta(t, 75.0, report.AvgPercent, 0.001)

		assert.Nil(t, report.Analyzed)
	})

	t.Run("input order does not change the result", func(t *testing.T) {
		t.Parallel()
		en := newReadyCatalog(t, "English", "en", map[string]string{"a": "A", "b": "B"})
		pt := newReadyCatalog(t, "Portuguese", "pt", map[string]string{"a": "A"})

		forward := coverage.Evaluate([]*catalog.Catalog{en, pt}, false)
		backward := coverage.Evaluate([]*catalog.Catalog{pt, en}, false)

		require.NotNil(t, forward)
		require.NotNil(t, backward)
		assert.Equal(t, forward.Percent, backward.Percent)
		assert.Equal(t, forward.MissingKeys, backward.MissingKeys)
		assert.Equal(t, forward.AvgPercent, backward.AvgPercent)
	})

	t.Run("skips nil and not-ready catalogs", func(t *testing.T) {
		t.Parallel()
		en := newReadyCatalog(t, "English", "en", map[string]string{"a": "A"})
		partial := catalog.New()
		partial.Code = "de"
		partial.Set("z", "Z", false)

		report := coverage.Evaluate([]*catalog.Catalog{nil, partial, en}, false)
		require.NotNil(t, report)

		// The not-ready catalog contributes neither keys nor a row.
		assert.Len(t, report.AllKeys, 1)
		assert.NotContains(t, report.Percent, "de")
	})

	t.Run("nil when nothing survives the filter", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, coverage.Evaluate(nil, false))
		assert.Nil(t, coverage.Evaluate([]*catalog.Catalog{nil, catalog.New()}, false))
	})

	t.Run("empty key union rates everything at zero", func(t *testing.T) {
		t.Parallel()
		en := newReadyCatalog(t, "English", "en", nil)
		pt := newReadyCatalog(t, "Portuguese", "pt", nil)

		report := coverage.Evaluate([]*catalog.Catalog{en, pt}, false)
		require.NotNil(t, report)
		assert.Empty(t, report.AllKeys)
		assert.Zero(t, report.Percent["en"])
		assert.Zero(t, report.Percent["pt"])
		assert.Zero(t, report.AvgKeys)
		assert.Zero(t, report.AvgPercent)
	})

	t.Run("attaches analyzed catalogs on request", func(t *testing.T) {
		t.Parallel()
		en := newReadyCatalog(t, "English", "en", map[string]string{"a": "A"})

		report := coverage.Evaluate([]*catalog.Catalog{nil, en}, true)
		require.NotNil(t, report)
		require.Len(t, report.Analyzed, 1)
		assert.Same(t, en, report.Analyzed[0])
	})
}
