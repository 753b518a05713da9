package service

import (
	"context"
	"sync"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// CouponRow is one row of the top-coupons list.
type CouponRow struct {
	Code string  `json:"code"`
	Used float64 `json:"used"`
}

// MarketingSummary is the marketing page card set.
type MarketingSummary struct {
	CouponCount     int                   `json:"coupon_count"`
	TopCoupons      []CouponRow           `json:"top_coupons"`
	SubscriberCount int                   `json:"subscriber_count"`
	TopQueries      []stats.KeyCount      `json:"top_queries"`
	Sources         []client.SourceStatus `json:"sources"`
}

// MarketingSummary aggregates coupons, newsletter subscribers, and storefront
// search queries.
func (s *DashboardService) MarketingSummary(ctx context.Context) MarketingSummary {
	var (
		wg          sync.WaitGroup
		coupons     client.Sample
		subscribers client.Sample
		queries     client.Sample
	)

	wg.Add(3)
	go func() { defer wg.Done(); coupons = s.store.Coupons(ctx) }()
	go func() { defer wg.Done(); subscribers = s.store.Subscribers(ctx) }()
	go func() { defer wg.Done(); queries = s.store.SearchQueries(ctx) }()
	wg.Wait()

	couponUse := func(rec extract.Record) (float64, bool) {
		return extract.Number(rec, couponUsePaths...)
	}
	ranked := stats.TopByValue(coupons.Records, couponUse, 6)
	topCoupons := make([]CouponRow, 0, len(ranked))
	for _, r := range ranked {
		code, ok := extract.Text(r.Record, couponCodePaths...)
		if !ok {
			code = stats.Dash
		}
		topCoupons = append(topCoupons, CouponRow{Code: code, Used: r.Value})
	}

	queryText := func(rec extract.Record) string {
		if q, ok := extract.Text(rec, queryTextPaths...); ok {
			return q
		}
		return stats.Dash
	}

	return MarketingSummary{
		CouponCount:     len(coupons.Records),
		TopCoupons:      topCoupons,
		SubscriberCount: len(subscribers.Records),
		TopQueries:      stats.TopCounts(queries.Records, queryText, 10),
		Sources: []client.SourceStatus{
			coupons.Source, subscribers.Source, queries.Source,
		},
	}
}
