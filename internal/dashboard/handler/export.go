package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mirayfashion/admin-backend/internal/dashboard/service"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// ExportHandler handles file-download endpoints
type ExportHandler struct {
	service *service.DashboardService
	logger  *logger.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc *service.DashboardService, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		service: svc,
		logger:  log,
	}
}

// ExportOrders generates and serves the orders sample as CSV
func (h *ExportHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	csvBytes, err := h.service.ExportOrdersCSV(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate orders CSV")
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvBytes)))
	w.Write(csvBytes)
}

// ExportOrdersPDF generates and serves the orders sample as a printable PDF
func (h *ExportHandler) ExportOrdersPDF(w http.ResponseWriter, r *http.Request) {
	pdfBytes, err := h.service.ExportOrdersPDF(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate orders PDF")
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.Write(pdfBytes)
}

// RenderBarcodeLabel renders shelf label text for a product record posted in
// the request body
func (h *ExportHandler) RenderBarcodeLabel(w http.ResponseWriter, r *http.Request) {
	var product extract.Record
	if err := httputil.DecodeJSON(r, &product); err != nil {
		httputil.Error(w, err)
		return
	}

	label, err := h.service.BarcodeLabel(product)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"label": label})
}
