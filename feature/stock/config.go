package stock

import "time"

// Config holds the synchronizer settings.
type Config struct {
	// CachePath is the snapshot file.
	CachePath string `mapstructure:"cache_path" default:"Cache/rein_stock_cache.json"`
	// IntervalMinutes is the scheduler period. Zero disables scheduled syncs.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
	// RunOnStart triggers one sync as soon as the server starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"false"`
	// MirrorPrefix is the object key prefix for mirrored snapshots.
	MirrorPrefix string `mapstructure:"mirror_prefix" default:"snapshots"`
}

// Interval returns the scheduler period.
func (c Config) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}
