package client

import (
	"context"
	"fmt"

	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/fetch"
	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// listKeys maps each store resource to the ordered wrapper keys its listing
// endpoint has been observed to use. Order is significant: the first key
// holding an array wins (orders before data, etc.).
var listKeys = map[string][]string{
	"orders":      {"orders", "data"},
	"products":    {"products", "data"},
	"customers":   {"customers", "data"},
	"carts":       {"carts", "data", "items"},
	"coupons":     {"coupons", "data"},
	"subscribers": {"subscribers", "data"},
	"queries":     {"queries", "data"},
	"tickets":     {"tickets", "data", "items"},
}

// SourceStatus reports the outcome of one upstream listing call so callers
// can surface degraded sources instead of silently rendering empty tables.
type SourceStatus struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Sample is a capped listing of records from one store resource.
type Sample struct {
	Records []extract.Record
	Source  SourceStatus
}

// StoreClient fetches record samples from the Miray Fashion store API.
// All listing methods are best-effort: upstream failures yield an empty
// sample with the failure recorded in Source, never an error.
type StoreClient struct {
	baseURL string
	limit   int
	fetcher *fetch.Client
	logger  *logger.Logger
}

// NewStoreClient creates a store API client. limit caps each listing sample.
func NewStoreClient(baseURL string, limit int, fetcher *fetch.Client, log *logger.Logger) *StoreClient {
	if limit <= 0 {
		limit = 200
	}
	return &StoreClient{
		baseURL: baseURL,
		limit:   limit,
		fetcher: fetcher,
		logger:  log,
	}
}

// Orders returns a sample of recent orders.
func (c *StoreClient) Orders(ctx context.Context) Sample {
	return c.list(ctx, "orders", "/api/orders")
}

// Products returns a sample of catalog products.
func (c *StoreClient) Products(ctx context.Context) Sample {
	return c.list(ctx, "products", "/api/products")
}

// Customers returns a sample of registered customers.
func (c *StoreClient) Customers(ctx context.Context) Sample {
	return c.list(ctx, "customers", "/api/customers")
}

// Carts returns a sample of open carts. The store has served this listing
// from two paths across versions, so the newer one is tried first.
func (c *StoreClient) Carts(ctx context.Context) Sample {
	res := c.fetcher.First(ctx,
		c.listURL("/api/carts"),
		c.listURL("/api/cart/all"),
	)
	return c.toSample("carts", res)
}

// Coupons returns a sample of coupon codes.
func (c *StoreClient) Coupons(ctx context.Context) Sample {
	return c.list(ctx, "coupons", "/api/coupons")
}

// Subscribers returns a sample of newsletter subscribers.
func (c *StoreClient) Subscribers(ctx context.Context) Sample {
	return c.list(ctx, "subscribers", "/api/newsletter/subscribers")
}

// SearchQueries returns a sample of recorded storefront search queries.
func (c *StoreClient) SearchQueries(ctx context.Context) Sample {
	return c.list(ctx, "queries", "/api/search/queries")
}

// Tickets returns a sample of support tickets.
func (c *StoreClient) Tickets(ctx context.Context) Sample {
	return c.list(ctx, "tickets", "/api/tickets")
}

func (c *StoreClient) list(ctx context.Context, resource, path string) Sample {
	res := c.fetcher.Get(ctx, c.listURL(path))
	return c.toSample(resource, res)
}

func (c *StoreClient) listURL(path string) string {
	return fmt.Sprintf("%s%s?limit=%d", c.baseURL, path, c.limit)
}

func (c *StoreClient) toSample(resource string, res fetch.Result) Sample {
	status := SourceStatus{
		Name:   resource,
		OK:     res.OK,
		Status: res.Status,
		Error:  res.Err,
	}

	if res.Empty() {
		if !res.OK {
			c.logger.Warn().
				Str("resource", resource).
				Int("status", res.Status).
				Str("error", res.Err).
				Msg("store listing unavailable")
		}
		return Sample{Records: []extract.Record{}, Source: status}
	}

	records := extract.Records(res.JSON, listKeys[resource]...)
	if len(records) > c.limit {
		records = records[:c.limit]
	}

	c.logger.Debug().
		Str("resource", resource).
		Int("count", len(records)).
		Msg("store listing fetched")

	return Sample{Records: records, Source: status}
}
