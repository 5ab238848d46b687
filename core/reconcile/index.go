package reconcile

import "encoding/json"

// Index folds rows into one entry per SKU.
// The first occurrence of a SKU provides every field; later occurrences only
// add their StockQty. Rows with an empty SKU are ignored.
func Index(rows []StockRow) map[string]SnapshotEntry {
	idx := make(map[string]SnapshotEntry, len(rows))

	for _, row := range rows {
		if row.SKU == "" {
			continue
		}

		if existing, ok := idx[row.SKU]; ok {
			existing.StockQty += row.StockQty
			idx[row.SKU] = existing
			continue
		}

		locations := row.Locations
		if locations == nil {
			locations = []json.RawMessage{}
		}

		idx[row.SKU] = SnapshotEntry{
			SKU:          row.SKU,
			ProductName:  row.ProductName,
			NCM:          row.NCM,
			StockQty:     row.StockQty,
			ImageURL:     row.ImageURL,
			ProductID:    row.ProductID,
			VariantID:    row.VariantID,
			RawLocations: locations,
		}
	}

	return idx
}
