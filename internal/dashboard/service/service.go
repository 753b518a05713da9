// Package service computes the figures behind each admin dashboard page:
// overview cards, per-area summaries, CSV export, and barcode labels. Every
// operation is a stateless fetch → normalize → aggregate pass over capped
// upstream samples; nothing is cached between requests.
package service

import (
	"fmt"
	"time"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// Field spellings observed across store API versions, in priority order.
var (
	orderTotalPaths  = []string{"total", "totalAmount", "grandTotal", "amount", "pricing.total"}
	createdAtPaths   = []string{"createdAt", "created_at", "orderDate", "date", "created"}
	stockPaths       = []string{"stock", "countInStock", "quantity", "inventory.quantity"}
	viewPaths        = []string{"views", "viewCount", "analytics.views"}
	cartTotalPaths   = []string{"total", "cartTotal", "subtotal", "amount"}
	couponCodePaths  = []string{"code", "couponCode", "name"}
	couponUsePaths   = []string{"used", "usedCount", "timesUsed", "usageCount"}
	queryTextPaths   = []string{"query", "term", "q", "text"}
	productNamePaths = []string{"name", "title", "productName"}
	productSKUPaths  = []string{"sku", "barcode", "productCode"}
	pricePaths       = []string{"price", "salePrice", "pricing.price"}
)

// Age thresholds (hours) for the orders and tickets cards.
const (
	hotAgeHours   = 2
	staleAgeHours = 24
)

// DashboardService aggregates store API samples into page summaries.
type DashboardService struct {
	store  *client.StoreClient
	logger *logger.Logger
	now    func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(store *client.StoreClient, log *logger.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func orderTotal(rec extract.Record) (float64, bool) {
	return extract.Number(rec, orderTotalPaths...)
}

func cartTotal(rec extract.Record) (float64, bool) {
	return extract.Number(rec, cartTotalPaths...)
}

// ageHours resolves a record's age against the service clock.
func (s *DashboardService) ageHours(rec extract.Record) (float64, bool) {
	return extract.AgeHours(rec, s.now(), createdAtPaths...)
}

// formatAmount renders a monetary value, or the dash sentinel when the
// underlying field never resolved. A real zero still renders as "0.00".
func formatAmount(v float64, ok bool) string {
	if !ok {
		return stats.Dash
	}
	return fmt.Sprintf("%.2f", v)
}
