package translator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlocale/glot/pkg/catalog"
	"github.com/openlocale/glot/pkg/translator"
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

// newConfigured returns a translator with pt selected over an en default.
func newConfigured(t *testing.T) *translator.Translator {
	t.Helper()
	tr := translator.New()
	tr.Load(
		newReadyCatalog(t, "English", "en", map[string]string{
			"app.welcome": "Welcome",
			"app.bye":     "Goodbye",
		}),
		newReadyCatalog(t, "Portuguese", "pt", map[string]string{
			"app.welcome": "Bem-vindo",
		}),
	)
	tr.SelectedCode = "pt"
	tr.DefaultCode = "en"
	return tr
}

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("selected catalog wins", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		v, ok := tr.Lookup("app.welcome")
		require.True(t, ok)
		assert.Equal(t, "Bem-vindo", v)
	})

	t.Run("falls back to default catalog", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		v, ok := tr.Lookup("app.bye")
		require.True(t, ok)
		assert.Equal(t, "Goodbye", v)
	})

	t.Run("missing everywhere falls back to the key", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		v, ok := tr.Lookup("app.missing")
		require.True(t, ok)
		assert.Equal(t, "app.missing", v)
	})

	t.Run("missing everywhere honors a supplied fallback", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		v, ok := tr.LookupOr("app.missing", "n/a")
		require.True(t, ok)
		assert.Equal(t, "n/a", v)
	})

	t.Run("not ready without a selected code", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.SelectedCode = ""
		_, ok := tr.Lookup("app.welcome")
		assert.False(t, ok)
	})

	t.Run("not ready when the default code is not loaded", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.DefaultCode = "de"
		_, ok := tr.Lookup("app.welcome")
		assert.False(t, ok)
	})
}

func TestLookupStrict(t *testing.T) {
	t.Parallel()

	t.Run("resolves through the chain", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		v, err := tr.LookupStrict("app.bye")
		require.NoError(t, err)
		assert.Equal(t, "Goodbye", v)
	})

	t.Run("fails when both tiers miss", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		_, err := tr.LookupStrict("app.missing")
		require.ErrorIs(t, err, catalog.ErrKeyNotFound)
	})

	t.Run("fails when not ready", func(t *testing.T) {
		t.Parallel()
		tr := translator.New()
		_, err := tr.LookupStrict("app.welcome")
		require.ErrorIs(t, err, translator.ErrNotReady)
	})
}

func TestLoadAndUnload(t *testing.T) {
	t.Parallel()

	t.Run("load skips code collisions", func(t *testing.T) {
		t.Parallel()
		tr := translator.New()
		first := newReadyCatalog(t, "English", "en", map[string]string{"k": "first"})
		second := newReadyCatalog(t, "English v2", "en", map[string]string{"k": "second"})

		tr.Load(first)
		tr.Load(second)

		require.Equal(t, 1, tr.Len())
		assert.Equal(t, "English", tr.Catalogs()[0].Name)
	})

	t.Run("replace overwrites on collision", func(t *testing.T) {
		t.Parallel()
		tr := translator.New()
		tr.Load(newReadyCatalog(t, "English", "en", nil))
		tr.Replace(newReadyCatalog(t, "English v2", "en", nil))

		require.Equal(t, 1, tr.Len())
		assert.Equal(t, "English v2", tr.Catalogs()[0].Name)
	})

	t.Run("load ignores nil catalogs", func(t *testing.T) {
		t.Parallel()
		tr := translator.New()
		tr.Load(nil, newReadyCatalog(t, "English", "en", nil))
		assert.Equal(t, 1, tr.Len())
	})

	t.Run("unload removes by code", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.Unload("pt")
		assert.False(t, tr.IsLoaded("pt"))
		assert.True(t, tr.IsLoaded("en"))
	})

	t.Run("unload all", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.UnloadAll()
		assert.Equal(t, 0, tr.Len())
	})

	t.Run("clear resets codes too", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.Clear()
		assert.Empty(t, tr.SelectedCode)
		assert.Empty(t, tr.DefaultCode)
		assert.Equal(t, 0, tr.Len())
	})
}

func TestReady(t *testing.T) {
	t.Parallel()

	t.Run("ready with both codes resolvable", func(t *testing.T) {
		t.Parallel()
		assert.True(t, newConfigured(t).Ready())
	})

	t.Run("codes may point at unloaded catalogs", func(t *testing.T) {
		t.Parallel()
		tr := translator.New()
		tr.SelectedCode = "pt"
		tr.DefaultCode = "en"
		assert.False(t, tr.Ready())
		assert.Nil(t, tr.SelectedCatalog())
		assert.Nil(t, tr.DefaultCatalog())
	})
}

func TestBroadcasts(t *testing.T) {
	t.Parallel()

	t.Run("remove everywhere", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.RemoveTranslation("app.welcome")
		for _, c := range tr.Catalogs() {
			assert.False(t, c.Has("app.welcome"), c.Code)
		}
	})

	t.Run("rename everywhere", func(t *testing.T) {
		t.Parallel()
		tr := newConfigured(t)
		tr.RenameTranslation("app.welcome", "app.greeting", false, false)
		for _, c := range tr.Catalogs() {
			assert.False(t, c.Has("app.welcome"), c.Code)
		}
		v, ok := tr.Lookup("app.greeting")
		require.True(t, ok)
		assert.Equal(t, "Bem-vindo", v)
	})
}

func TestCoverage(t *testing.T) {
	t.Parallel()

	t.Run("reports over loaded catalogs", func(t *testing.T) {
		t.Parallel()
		report := newConfigured(t).Coverage()
		require.NotNil(t, report)
		assert.Len(t, report.AllKeys, 2)
		assert.InDelta(t, 50.0, report.Percent["pt"], 0.001)
	})

	t.Run("nil without ready catalogs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, translator.New().Coverage())
	})
}
