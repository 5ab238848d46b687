package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyPath is returned when a file cache is created without a path.
var ErrEmptyPath = errors.New("reconcile: cache path is empty")

// Store persists snapshots between sync runs.
type Store interface {
	// Load returns the last persisted snapshot. It never fails: a missing or
	// unreadable cache is reported as an empty snapshot.
	Load() *Snapshot

	// Save stamps the snapshot with the current time and replaces the
	// persisted copy atomically.
	Save(s *Snapshot) error

	// Path returns the location of the persisted snapshot.
	Path() string
}

// FileCache is a Store backed by a single JSON file.
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers never observe a partial file and a crash before
// the rename leaves the previous snapshot untouched.
//
// FileCache does not serialize concurrent writers; the last rename wins.
type FileCache struct {
	path   string
	now    func() time.Time
	rename func(oldpath, newpath string) error
}

// NewFileCache creates a file-backed store and makes sure its directory exists.
func NewFileCache(path string) (*FileCache, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileCache{
		path:   path,
		now:    time.Now,
		rename: os.Rename,
	}, nil
}

// Path returns the cache file location.
func (c *FileCache) Path() string {
	return c.path
}

// Load reads the cache file. Cold start and corruption are treated the same.
func (c *FileCache) Load() *Snapshot {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return NewSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return NewSnapshot()
	}

	if snap.Entries == nil {
		snap.Entries = make(map[string]SnapshotEntry)
	}
	for sku, entry := range snap.Entries {
		if entry.SKU == "" {
			entry.SKU = sku
			snap.Entries[sku] = entry
		}
	}

	return &snap
}

// Save writes the snapshot and stamps GeneratedAt once the rename succeeded.
func (c *FileCache) Save(s *Snapshot) error {
	if s == nil {
		s = NewSnapshot()
	}

	out := Snapshot{
		GeneratedAt: c.now().Truncate(time.Second),
		Entries:     s.Entries,
	}
	if out.Entries == nil {
		out.Entries = make(map[string]SnapshotEntry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to flush temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := c.rename(tmpName, c.path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	committed = true

	s.GeneratedAt = out.GeneratedAt
	s.Entries = out.Entries
	return nil
}
