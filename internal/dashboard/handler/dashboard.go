package handler

import (
	"net/http"

	"github.com/mirayfashion/admin-backend/internal/dashboard/service"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// DashboardHandler serves the aggregate endpoints behind the admin pages
type DashboardHandler struct {
	service *service.DashboardService
	logger  *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		logger:  log,
	}
}

// GetOverview returns the landing page cards
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Overview(r.Context()))
}

// GetOrdersSummary returns the orders page cards
func (h *DashboardHandler) GetOrdersSummary(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.OrdersSummary(r.Context()))
}

// GetCatalogSummary returns the product catalog cards
func (h *DashboardHandler) GetCatalogSummary(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.CatalogSummary(r.Context()))
}

// GetCartsSummary returns the carts page cards
func (h *DashboardHandler) GetCartsSummary(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.CartsSummary(r.Context()))
}

// GetMarketingSummary returns the marketing page cards
func (h *DashboardHandler) GetMarketingSummary(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.MarketingSummary(r.Context()))
}

// GetTicketsSummary returns the support triage cards
func (h *DashboardHandler) GetTicketsSummary(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.TicketsSummary(r.Context()))
}
