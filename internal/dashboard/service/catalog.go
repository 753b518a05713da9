package service

import (
	"context"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// lowStockThreshold is the stock level at or below which a product shows up
// on the restock list.
const lowStockThreshold = 5

// CatalogProduct is one row of the low-stock or top-viewed lists.
type CatalogProduct struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Value float64 `json:"value"`
}

// CatalogSummary is the product catalog page card set.
type CatalogSummary struct {
	SampleSize int                 `json:"sample_size"`
	LowStock   []CatalogProduct    `json:"low_stock"`
	TopViewed  []CatalogProduct    `json:"top_viewed"`
	Source     client.SourceStatus `json:"source"`
}

// CatalogSummary aggregates the current product sample. Products without a
// resolvable stock count never appear on the restock list; absence of data is
// not evidence of low stock.
func (s *DashboardService) CatalogSummary(ctx context.Context) CatalogSummary {
	products := s.store.Products(ctx)
	recs := products.Records

	stock := func(rec extract.Record) (float64, bool) {
		return extract.Number(rec, stockPaths...)
	}
	views := func(rec extract.Record) (float64, bool) {
		return extract.Number(rec, viewPaths...)
	}

	low := stats.FilterWhere(recs, stock, stats.AtMost(lowStockThreshold))
	lowStock := make([]CatalogProduct, 0, len(low))
	for _, rec := range low {
		v, _ := stock(rec)
		lowStock = append(lowStock, catalogProduct(rec, v))
	}

	ranked := stats.TopByValue(recs, views, 8)
	topViewed := make([]CatalogProduct, 0, len(ranked))
	for _, r := range ranked {
		topViewed = append(topViewed, catalogProduct(r.Record, r.Value))
	}

	return CatalogSummary{
		SampleSize: len(recs),
		LowStock:   lowStock,
		TopViewed:  topViewed,
		Source:     products.Source,
	}
}

func catalogProduct(rec extract.Record, value float64) CatalogProduct {
	name, ok := extract.Text(rec, productNamePaths...)
	if !ok {
		name = stats.Dash
	}
	sku, ok := extract.Text(rec, productSKUPaths...)
	if !ok {
		sku = stats.Dash
	}
	return CatalogProduct{Name: name, SKU: sku, Value: value}
}
