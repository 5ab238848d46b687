package reconcile

import (
	"encoding/json"
	"time"
)

// StockRow is one product variant as seen on a single catalog page.
// The same SKU may appear in several rows when a variant is listed in more
// than one bucket; Index folds those together.
type StockRow struct {
	SKU         string
	ProductName string
	NCM         string
	StockQty    int
	ImageURL    string
	ProductID   string
	VariantID   string
	Locations   []json.RawMessage
	// Active is false when the parent product carries an inactivation date.
	Active bool
}

// SnapshotEntry is the aggregated, per-SKU record stored in the cache.
type SnapshotEntry struct {
	// SKU is the natural key.
	SKU string `json:"sku"`

	// ProductName is the parent product's display name.
	ProductName string `json:"productName"`

	// NCM is the fiscal classification code, if the ERP sent one.
	NCM string `json:"ncm,omitempty"`

	// StockQty is the available quantity summed over every location and
	// every row that carried this SKU.
	StockQty int `json:"stockQty"`

	// ImageURL points to the variant's cover image on the CDN.
	ImageURL string `json:"imageUrl,omitempty"`

	// ProductID and VariantID are the ERP internal identifiers.
	ProductID string `json:"productId,omitempty"`
	VariantID string `json:"variantId,omitempty"`

	// RawLocations keeps the stock location records exactly as received.
	RawLocations []json.RawMessage `json:"rawLocations"`
}

// Snapshot is the complete point-in-time mapping of SKU to entry.
type Snapshot struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Entries     map[string]SnapshotEntry `json:"items"`
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Entries: make(map[string]SnapshotEntry)}
}

// Len returns the number of unique SKUs.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// DiffSummary reports how a new snapshot differs from the previous one.
type DiffSummary struct {
	// New counts SKUs present only in the new snapshot.
	New int `json:"new"`

	// Updated counts SKUs present in both whose stock or name changed.
	Updated int `json:"updated"`

	// Removed counts SKUs present only in the previous snapshot.
	Removed int `json:"removed"`

	// TotalSKUs is the size of the new snapshot.
	TotalSKUs int `json:"total_skus"`

	// GeneratedAt is the timestamp stamped on the persisted snapshot.
	GeneratedAt time.Time `json:"generated_at"`
}
