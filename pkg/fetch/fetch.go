// Package fetch performs best-effort GET requests against the store API.
// Every call returns a Result that is always safe to inspect: transport
// failures, non-2xx statuses, and unparseable bodies are folded into the
// Result instead of being returned as errors, so aggregation code can treat
// all of them uniformly as "no data for this source".
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// Result is the uniform envelope for a single upstream request.
// OK reflects the HTTP status (2xx). On network-level failure OK is false,
// Status is 0 and Err carries the transport error. JSON is nil when the body
// was not valid JSON, regardless of OK.
type Result struct {
	OK     bool
	Status int
	JSON   any
	Err    string
}

// Empty reports whether the result carries no usable payload.
func (r Result) Empty() bool {
	return !r.OK || r.JSON == nil
}

// Client wraps an http.Client with the single-attempt fetch semantics.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a fetch client. A zero timeout falls back to 10 seconds; unlike
// the browser pages this service replaced, a hung upstream must not pin a
// request handler forever.
func New(timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Get performs one GET attempt. No retries, no backoff.
func (c *Client) Get(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Err: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("upstream request failed")
		return Result{Err: err.Error()}
	}
	defer resp.Body.Close()

	res := Result{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
	}

	// Read as text first, then try to parse. A non-JSON body is not an
	// error at this layer; it simply yields no payload.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil {
		res.JSON = parsed
	} else {
		c.logger.Debug().
			Str("url", url).
			Int("status", resp.StatusCode).
			Msg("upstream body is not JSON")
	}

	return res
}

// All issues the given URLs concurrently and returns the results in the same
// order once every request has settled.
func (c *Client) All(ctx context.Context, urls ...string) []Result {
	results := make([]Result, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i] = c.Get(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return results
}

// First tries the URLs in order and returns the first result that carries a
// payload. If none does, the last attempt's result is returned so callers can
// still report the failure status.
func (c *Client) First(ctx context.Context, urls ...string) Result {
	var last Result
	for _, url := range urls {
		last = c.Get(ctx, url)
		if !last.Empty() {
			return last
		}
	}
	return last
}
