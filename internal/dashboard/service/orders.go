package service

import (
	"context"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// OrdersSummary is the orders page card set.
type OrdersSummary struct {
	SampleSize    int                 `json:"sample_size"`
	Revenue       stats.Accumulation  `json:"revenue"`
	AverageOrder  string              `json:"average_order"`
	StatusBuckets map[string]int      `json:"status_buckets"`
	DeliveredPct  string              `json:"delivered_pct"`
	CancelledPct  string              `json:"cancelled_pct"`
	HotOrders     int                 `json:"hot_orders"`
	StaleOrders   int                 `json:"stale_orders"`
	TopCustomers  []stats.KeyCount    `json:"top_customers"`
	Source        client.SourceStatus `json:"source"`
}

// OrdersSummary aggregates the current orders sample. Hot orders arrived
// within the last two hours; stale orders have sat for a day or more.
func (s *DashboardService) OrdersSummary(ctx context.Context) OrdersSummary {
	orders := s.store.Orders(ctx)
	recs := orders.Records

	revenue := stats.Sum(recs, orderTotal)
	avg, avgOK := revenue.Avg()
	buckets := stats.CountBuckets(recs, extract.Status)
	total := float64(len(recs))

	return OrdersSummary{
		SampleSize:    len(recs),
		Revenue:       revenue,
		AverageOrder:  formatAmount(avg, avgOK),
		StatusBuckets: buckets,
		DeliveredPct:  stats.Percent(float64(buckets["delivered"]), total),
		CancelledPct:  stats.Percent(float64(buckets["cancelled"]), total),
		HotOrders:     stats.CountWhere(recs, s.ageHours, stats.AtMost(hotAgeHours)),
		StaleOrders:   stats.CountWhere(recs, s.ageHours, stats.AtLeast(staleAgeHours)),
		TopCustomers:  stats.TopCounts(recs, extract.CustomerKey, 6),
		Source:        orders.Source,
	}
}
