package service

import (
	"context"
	"strings"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// ticketStatusPaths carries the spellings seen on support ticket records.
var ticketStatusPaths = []string{"status", "ticketStatus", "state"}

// closedTicketStatuses are the states that take a ticket out of the triage
// queue. Anything else, unknown included, still needs a look.
var closedTicketStatuses = map[string]bool{
	"closed":   true,
	"resolved": true,
	"solved":   true,
	"done":     true,
}

// TicketsSummary is the support triage page card set.
type TicketsSummary struct {
	SampleSize    int                 `json:"sample_size"`
	StatusBuckets map[string]int      `json:"status_buckets"`
	OpenTickets   int                 `json:"open_tickets"`
	StaleTickets  int                 `json:"stale_tickets"`
	Source        client.SourceStatus `json:"source"`
}

// TicketsSummary aggregates the support ticket sample. Stale tickets have
// waited a day or more.
func (s *DashboardService) TicketsSummary(ctx context.Context) TicketsSummary {
	tickets := s.store.Tickets(ctx)
	recs := tickets.Records

	ticketStatus := func(rec extract.Record) string {
		if raw, ok := extract.Text(rec, ticketStatusPaths...); ok {
			return strings.ToLower(raw)
		}
		return extract.UnknownStatus
	}

	buckets := stats.CountBuckets(recs, ticketStatus)
	open := 0
	for status, count := range buckets {
		if !closedTicketStatuses[status] {
			open += count
		}
	}

	return TicketsSummary{
		SampleSize:    len(recs),
		StatusBuckets: buckets,
		OpenTickets:   open,
		StaleTickets:  stats.CountWhere(recs, s.ageHours, stats.AtLeast(staleAgeHours)),
		Source:        tickets.Source,
	}
}
