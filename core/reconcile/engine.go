package reconcile

import "sort"

// Diff compares the previous snapshot against the current one.
// Only StockQty and ProductName count as updates; image, NCM and location
// changes are deliberately ignored. Neither snapshot is modified.
func Diff(previous, current *Snapshot) DiffSummary {
	var oldEntries, newEntries map[string]SnapshotEntry
	if previous != nil {
		oldEntries = previous.Entries
	}
	if current != nil {
		newEntries = current.Entries
	}

	summary := DiffSummary{TotalSKUs: len(newEntries)}
	if current != nil {
		summary.GeneratedAt = current.GeneratedAt
	}

	for sku, entry := range newEntries {
		before, ok := oldEntries[sku]
		if !ok {
			summary.New++
			continue
		}
		if before.StockQty != entry.StockQty || before.ProductName != entry.ProductName {
			summary.Updated++
		}
	}

	for sku := range oldEntries {
		if _, ok := newEntries[sku]; !ok {
			summary.Removed++
		}
	}

	return summary
}

// Sorted returns the snapshot's entries ordered by (ProductName, SKU).
func Sorted(s *Snapshot) []SnapshotEntry {
	if s == nil {
		return []SnapshotEntry{}
	}

	items := make([]SnapshotEntry, 0, len(s.Entries))
	for _, entry := range s.Entries {
		items = append(items, entry)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductName != items[j].ProductName {
			return items[i].ProductName < items[j].ProductName
		}
		return items[i].SKU < items[j].SKU
	})

	return items
}
