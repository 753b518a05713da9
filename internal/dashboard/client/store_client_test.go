package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	"github.com/mirayfashion/admin-backend/pkg/fetch"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, upstream http.Handler, limit int) (*client.StoreClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	log := logger.New("store-client-test", "test")
	fetcher := fetch.New(0, log)
	return client.NewStoreClient(srv.URL, limit, fetcher, log), srv
}

func TestStoreClient_Orders_WrapperKeyPriority(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		// Both keys present: the domain key must win over the generic one
		w.Write([]byte(`{"orders":[{"id":"o1"},{"id":"o2"}],"data":[{"id":"wrong"}]}`))
	})

	c, _ := newTestClient(t, mux, 200)
	sample := c.Orders(context.Background())

	require.Len(t, sample.Records, 2)
	assert.Equal(t, "o1", sample.Records[0]["id"])
	assert.True(t, sample.Source.OK)
	assert.Equal(t, http.StatusOK, sample.Source.Status)
}

func TestStoreClient_Orders_BareArray(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"o1"}]`))
	})

	c, _ := newTestClient(t, mux, 200)
	sample := c.Orders(context.Background())

	require.Len(t, sample.Records, 1)
	assert.Equal(t, "o1", sample.Records[0]["id"])
}

func TestStoreClient_SendsLimitParam(t *testing.T) {
	var gotLimit string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"products":[]}`))
	})

	c, _ := newTestClient(t, mux, 50)
	c.Products(context.Background())

	assert.Equal(t, "50", gotLimit)
}

func TestStoreClient_CapsOverlongResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		// Upstream ignores the limit parameter and returns more
		w.Write([]byte(`{"customers":[{"id":1},{"id":2},{"id":3},{"id":4}]}`))
	})

	c, _ := newTestClient(t, mux, 2)
	sample := c.Customers(context.Background())

	assert.Len(t, sample.Records, 2)
}

func TestStoreClient_UpstreamFailureYieldsEmptySample(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	c, _ := newTestClient(t, mux, 200)
	sample := c.Orders(context.Background())

	assert.Empty(t, sample.Records)
	assert.False(t, sample.Source.OK)
	assert.Equal(t, http.StatusBadGateway, sample.Source.Status)
}

func TestStoreClient_CartsFallbackPath(t *testing.T) {
	var hits []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/carts", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "/api/carts")
		http.NotFound(w, r)
	})
	mux.HandleFunc("/api/cart/all", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "/api/cart/all")
		w.Write([]byte(`{"carts":[{"id":"c1"}]}`))
	})

	c, _ := newTestClient(t, mux, 200)
	sample := c.Carts(context.Background())

	require.Len(t, sample.Records, 1)
	assert.Equal(t, "c1", sample.Records[0]["id"])
	assert.Equal(t, []string{"/api/carts", "/api/cart/all"}, hits)
}

func TestStoreClient_ScalarElementsDropped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tickets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tickets":[{"id":"t1"},"garbage",42]}`))
	})

	c, _ := newTestClient(t, mux, 200)
	sample := c.Tickets(context.Background())

	require.Len(t, sample.Records, 1)
	assert.Equal(t, "t1", sample.Records[0]["id"])
}
