package translator

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/openlocale/glot/pkg/catalog"
)

// LoadFile parses the catalog file at path and loads it, overwriting an
// already loaded catalog with the same code only when overwrite is set.
func (t *Translator) LoadFile(path string, overwrite bool) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if overwrite {
		t.Replace(c)
	} else {
		t.Load(c)
	}
	return nil
}

// LoadDir parses every file directly inside dir (one level, no recursion)
// and loads the catalogs that parse cleanly; entries that are not valid
// catalogs are skipped. Files parse concurrently, but the translator is
// only touched from the calling goroutine after all parsing is done.
// It returns how many catalogs were added.
func (t *Translator) LoadDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading %q: %w", dir, err)
	}

	var (
		mu     sync.Mutex
		parsed []*catalog.Catalog
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := catalog.Load(path)
			if err != nil {
				// Shared directories may hold files that are not
				// catalogs; those are not ours to report.
				return nil
			}
			mu.Lock()
			parsed = append(parsed, c)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	// Stable load order keeps collision handling deterministic across runs.
	slices.SortFunc(parsed, func(a, b *catalog.Catalog) int {
		return cmp.Compare(a.Code, b.Code)
	})

	before := t.Len()
	t.Load(parsed...)
	return t.Len() - before, nil
}
