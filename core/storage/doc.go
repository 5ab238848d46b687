// Package storage mirrors the stock snapshot to S3-compatible object storage.
//
// It wraps the MinIO Go client behind a small Client interface so the mirror
// can be tested with the mock in core/storage/mocks.
//
// # Mirror
//
// The local cache file is the source of truth. After each successful sync the
// file is uploaded to {bucket}/{prefix}/{file name}. On a cold start with no
// local file, Restore downloads the last mirrored copy so the cached list can
// be served before the first sync completes.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	mirror := storage.NewMirror(client, cfg.Storage.Bucket, "snapshots")
//	err = mirror.Upload(ctx, "Cache/rein_stock_cache.json")
package storage
