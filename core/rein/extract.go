package rein

import (
	"strings"

	"rein-stock/core/reconcile"
)

// Extractor flattens catalog pages into stock rows.
type Extractor struct {
	imageBase string
}

// NewExtractor creates an extractor that resolves images under imageBase.
func NewExtractor(imageBase string) *Extractor {
	return &Extractor{imageBase: imageBase}
}

// Rows walks product -> variant -> location and emits one row per variant.
// Locations are summed into StockQty; variants without a usable SKU are dropped.
func (e *Extractor) Rows(page *ProductPage) []reconcile.StockRow {
	if page == nil {
		return nil
	}

	var rows []reconcile.StockRow
	for _, product := range page.Items {
		name := product.String("Nome")
		ncm := product.String("Ncm")
		productID := product.String("Id", "intId", "id")
		active := isActive(product)

		for _, variant := range product.Objects("ProdutoGrade") {
			sku := strings.TrimSpace(variant.String("Sku", "Id"))
			if sku == "" {
				continue
			}

			locations := variant.Raw("ProdutoLocal")
			rows = append(rows, reconcile.StockRow{
				SKU:         sku,
				ProductName: name,
				NCM:         ncm,
				StockQty:    sumStock(variant),
				ImageURL:    coverImage(e.imageBase, variant),
				ProductID:   productID,
				VariantID:   variant.String("Id", "intId", "id"),
				Locations:   locations,
				Active:      active,
			})
		}
	}

	return rows
}

// RowsFromPages concatenates the rows of every page in order.
func (e *Extractor) RowsFromPages(pages []*ProductPage) []reconcile.StockRow {
	var rows []reconcile.StockRow
	for _, p := range pages {
		rows = append(rows, e.Rows(p)...)
	}
	return rows
}

// isActive reports whether the product has no inactivation date.
func isActive(product RawObject) bool {
	v := strings.TrimSpace(product.String("DataInativado"))
	return v == "" || v == "null"
}

func sumStock(variant RawObject) int {
	total := 0
	for _, loc := range variant.Objects("ProdutoLocal") {
		total += loc.Int("EstoqueDisponivel")
	}
	return total
}
