// Package reconcile holds the snapshot model of the stock mirror and the pure
// steps that turn a fresh catalog walk into a persisted snapshot plus a diff.
//
// # Components
//
//  1. Index: folds StockRows into one SnapshotEntry per SKU. Repeated SKUs
//     are summed, never overwritten, because the ERP splits a variant's stock
//     across several listing rows.
//
//  2. Diff: compares the previous snapshot against the new one and counts
//     new, updated and removed SKUs. "Updated" only looks at stock quantity
//     and product name.
//
//  3. FileCache: loads and saves a Snapshot as JSON with temp-file-then-rename
//     semantics. A missing or corrupt file loads as an empty snapshot.
//
// # Persisted format
//
//	{
//	  "generatedAt": "2024-05-01T10:00:00-03:00",
//	  "items": {
//	    "SKU1": {"sku": "SKU1", "productName": "A", "stockQty": 5, ...}
//	  }
//	}
//
// The package never performs network I/O; the stock feature drives it.
package reconcile
