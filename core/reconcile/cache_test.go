package reconcile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *FileCache {
	t.Helper()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "Cache", "rein_stock_cache.json"))
	require.NoError(t, err)
	return c
}

func TestNewFileCache_EmptyPath(t *testing.T) {
	c, err := NewFileCache("")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Nil(t, c)
}

func TestFileCache_LoadMissing(t *testing.T) {
	c := newTestCache(t)

	snap := c.Load()

	assert.NotNil(t, snap)
	assert.Empty(t, snap.Entries)
}

func TestFileCache_LoadMalformed(t *testing.T) {
	c := newTestCache(t)

	for _, content := range []string{"{not json", "[]", `"string"`, ""} {
		require.NoError(t, os.WriteFile(c.Path(), []byte(content), 0o644))

		snap := c.Load()
		assert.NotNil(t, snap.Entries, "content %q", content)
		assert.Empty(t, snap.Entries, "content %q", content)
	}
}

func TestFileCache_LoadNullItems(t *testing.T) {
	c := newTestCache(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte(`{"generatedAt":"2024-01-01T00:00:00Z","items":null}`), 0o644))

	snap := c.Load()

	assert.NotNil(t, snap.Entries)
	assert.Empty(t, snap.Entries)
}

func TestFileCache_LoadFillsMissingSKU(t *testing.T) {
	c := newTestCache(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte(`{"items":{"SKU1":{"stockQty":5,"productName":"A"}}}`), 0o644))

	snap := c.Load()

	assert.Equal(t, "SKU1", snap.Entries["SKU1"].SKU)
	assert.Equal(t, 5, snap.Entries["SKU1"].StockQty)
}

func TestFileCache_SaveAndLoad(t *testing.T) {
	c := newTestCache(t)
	fixed := time.Date(2024, 5, 1, 10, 30, 15, 999, time.UTC)
	c.now = func() time.Time { return fixed }

	snap := NewSnapshot()
	snap.Entries["A1"] = SnapshotEntry{
		SKU:          "A1",
		ProductName:  "Caneca",
		StockQty:     4,
		RawLocations: []json.RawMessage{json.RawMessage(`{"EstoqueDisponivel":4}`)},
	}

	require.NoError(t, c.Save(snap))
	assert.Equal(t, fixed.Truncate(time.Second), snap.GeneratedAt)

	loaded := c.Load()
	assert.True(t, loaded.GeneratedAt.Equal(fixed.Truncate(time.Second)))
	assert.Equal(t, 4, loaded.Entries["A1"].StockQty)
	assert.JSONEq(t, `{"EstoqueDisponivel":4}`, string(loaded.Entries["A1"].RawLocations[0]))

	// No temp files left behind
	files, err := os.ReadDir(filepath.Dir(c.Path()))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileCache_FileFormat(t *testing.T) {
	c := newTestCache(t)

	snap := NewSnapshot()
	snap.Entries["A1"] = SnapshotEntry{SKU: "A1", ProductName: "Caneca", StockQty: 1}
	require.NoError(t, c.Save(snap))

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "generatedAt")
	assert.Contains(t, raw, "items")

	var items map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw["items"], &items))
	assert.Equal(t, "Caneca", items["A1"]["productName"])
	assert.EqualValues(t, 1, items["A1"]["stockQty"])
}

func TestFileCache_CrashBeforeRenameKeepsPrevious(t *testing.T) {
	c := newTestCache(t)

	previous := NewSnapshot()
	previous.Entries["OLD"] = SnapshotEntry{SKU: "OLD", StockQty: 1}
	require.NoError(t, c.Save(previous))

	before, err := os.ReadFile(c.Path())
	require.NoError(t, err)

	c.rename = func(oldpath, newpath string) error {
		return errors.New("simulated crash")
	}

	next := NewSnapshot()
	next.Entries["NEW"] = SnapshotEntry{SKU: "NEW", StockQty: 2}
	err = c.Save(next)
	assert.Error(t, err)
	assert.True(t, next.GeneratedAt.IsZero())

	after, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	files, err := os.ReadDir(filepath.Dir(c.Path()))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
