package stock_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"rein-stock/core/rein"
	"rein-stock/core/reconcile"

	"github.com/stretchr/testify/require"
)

// fakeCatalog serves canned pages.
type fakeCatalog struct {
	mu      sync.Mutex
	pages   []*rein.ProductPage
	err     error
	calls   int32
	search  *rein.ProductPage
	terms   []string
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeCatalog) FetchAll(ctx context.Context) ([]*rein.ProductPage, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func (f *fakeCatalog) FetchPage(ctx context.Context, page int, term string) (*rein.ProductPage, error) {
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeCatalog) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

// pageOf decodes JSON product objects into a page.
func pageOf(t *testing.T, n int, products ...string) *rein.ProductPage {
	t.Helper()
	p := &rein.ProductPage{Page: n}
	for _, raw := range products {
		var obj rein.RawObject
		require.NoError(t, json.Unmarshal([]byte(raw), &obj))
		p.Items = append(p.Items, obj)
	}
	p.Count = len(p.Items)
	return p
}

func newCache(t *testing.T) *reconcile.FileCache {
	t.Helper()
	c, err := reconcile.NewFileCache(filepath.Join(t.TempDir(), "Cache", "rein_stock_cache.json"))
	require.NoError(t, err)
	return c
}

func seed(t *testing.T, c reconcile.Store, entries ...reconcile.SnapshotEntry) {
	t.Helper()
	s := reconcile.NewSnapshot()
	for _, e := range entries {
		s.Entries[e.SKU] = e
	}
	require.NoError(t, c.Save(s))
}

var errRemote = errors.New("remote down")
