package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/mirayfashion/admin-backend/pkg/errors"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

var orderIDPaths = []string{"id", "_id", "orderId", "orderNumber"}

// ExportOrdersCSV renders the current orders sample as CSV. Fields that do
// not resolve render as the dash sentinel so a spreadsheet reader can tell
// missing data from a zero total.
func (s *DashboardService) ExportOrdersCSV(ctx context.Context) ([]byte, error) {
	orders := s.store.Orders(ctx)
	if !orders.Source.OK {
		// A summary card can render empty; a downloaded file must not
		// silently pretend there were no orders.
		return nil, errors.Upstream("orders")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"order_id", "created_at", "customer", "status", "total"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range orders.Records {
		id, ok := extract.Text(rec, orderIDPaths...)
		if !ok {
			id = stats.Dash
		}

		created := stats.Dash
		if ts, ok := extract.When(rec, createdAtPaths...); ok {
			created = ts.Format("2006-01-02 15:04:05")
		}

		total, totalOK := orderTotal(rec)

		row := []string{
			id,
			created,
			extract.CustomerKey(rec),
			extract.Status(rec),
			formatAmount(total, totalOK),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Info().
		Int("rows", len(orders.Records)).
		Msg("orders sample exported as CSV")

	return buf.Bytes(), nil
}
