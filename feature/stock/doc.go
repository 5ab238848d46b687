// Package stock synchronizes the REIN ERP catalog into a local stock snapshot.
//
// # Synchronization
//
// SyncFull fetches every catalog page, flattens products into variant rows,
// folds the rows into one entry per SKU and compares the result with the
// cached snapshot. The new snapshot replaces the cache only when the whole
// walk succeeds. Concurrent calls share one in-flight run.
//
// ListCached serves the last snapshot without network access. Search looks up
// a single page on the live API.
//
// # Side channels
//
// Every attempt is recorded in the stock_sync_runs table when a database is
// configured, and the snapshot file is mirrored to object storage when a
// mirror is configured. Neither can fail a sync.
//
// # HTTP
//
//	GET  /stock           cached list
//	POST /stock/sync      full sync
//	GET  /stock/search    live lookup (termo, page, per_page)
//	GET  /stock/history   recent runs (limit)
package stock
