package service

import (
	"context"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// abandonedAgeHours is how long a cart must sit untouched before its value
// counts as revenue at risk.
const abandonedAgeHours = 24

// CartRow is one row of the top-carts list.
type CartRow struct {
	Customer string  `json:"customer"`
	Value    float64 `json:"value"`
}

// CartsSummary is the carts page card set.
type CartsSummary struct {
	SampleSize    int                 `json:"sample_size"`
	CartValue     stats.Accumulation  `json:"cart_value"`
	AverageCart   string              `json:"average_cart"`
	TopCarts      []CartRow           `json:"top_carts"`
	RevenueAtRisk stats.Accumulation  `json:"revenue_at_risk"`
	Source        client.SourceStatus `json:"source"`
}

// CartsSummary aggregates the current carts sample. Revenue at risk sums the
// value of carts abandoned for a day or more.
func (s *DashboardService) CartsSummary(ctx context.Context) CartsSummary {
	carts := s.store.Carts(ctx)
	recs := carts.Records

	value := stats.Sum(recs, cartTotal)
	avg, avgOK := value.Avg()

	ranked := stats.TopByValue(recs, cartTotal, 6)
	top := make([]CartRow, 0, len(ranked))
	for _, r := range ranked {
		top = append(top, CartRow{
			Customer: extract.CustomerKey(r.Record),
			Value:    r.Value,
		})
	}

	abandoned := stats.FilterWhere(recs, s.ageHours, stats.AtLeast(abandonedAgeHours))

	return CartsSummary{
		SampleSize:    len(recs),
		CartValue:     value,
		AverageCart:   formatAmount(avg, avgOK),
		TopCarts:      top,
		RevenueAtRisk: stats.Sum(abandoned, cartTotal),
		Source:        carts.Source,
	}
}
