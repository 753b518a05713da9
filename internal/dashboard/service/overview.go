package service

import (
	"context"
	"sync"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// Overview is the landing-page card set.
type Overview struct {
	OrderCount    int                   `json:"order_count"`
	ProductCount  int                   `json:"product_count"`
	CustomerCount int                   `json:"customer_count"`
	CartCount     int                   `json:"cart_count"`
	Revenue       stats.Accumulation    `json:"revenue"`
	AverageOrder  string                `json:"average_order"`
	StatusBuckets map[string]int        `json:"status_buckets"`
	Sources       []client.SourceStatus `json:"sources"`
}

// Overview fans out over the four headline resources concurrently and joins
// before aggregating, mirroring how the dashboard landing page loads.
func (s *DashboardService) Overview(ctx context.Context) Overview {
	var (
		wg        sync.WaitGroup
		orders    client.Sample
		products  client.Sample
		customers client.Sample
		carts     client.Sample
	)

	wg.Add(4)
	go func() { defer wg.Done(); orders = s.store.Orders(ctx) }()
	go func() { defer wg.Done(); products = s.store.Products(ctx) }()
	go func() { defer wg.Done(); customers = s.store.Customers(ctx) }()
	go func() { defer wg.Done(); carts = s.store.Carts(ctx) }()
	wg.Wait()

	revenue := stats.Sum(orders.Records, orderTotal)
	avg, avgOK := revenue.Avg()

	return Overview{
		OrderCount:    len(orders.Records),
		ProductCount:  len(products.Records),
		CustomerCount: len(customers.Records),
		CartCount:     len(carts.Records),
		Revenue:       revenue,
		AverageOrder:  formatAmount(avg, avgOK),
		StatusBuckets: stats.CountBuckets(orders.Records, extract.Status),
		Sources: []client.SourceStatus{
			orders.Source, products.Source, customers.Source, carts.Source,
		},
	}
}
