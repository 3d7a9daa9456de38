// Package api implements the REST client for the invoice backend.
//
// The backend owns all business logic (parsing, persistence, aggregation);
// this client only wraps its five operations: upload, list, download,
// dashboard summary and customer listing.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	applog "faturas/internal/log"
	"faturas/internal/observability/metrics"
)

// Client is a configured invoice backend client. One instance is shared
// by all handlers; it is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *applog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and
// by deployments that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpc = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *applog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New constructs a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("api: empty base url")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
		logger:  applog.New(applog.Config{Component: applog.ComponentAPI}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Operation  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s: backend returned status %d", e.Operation, e.StatusCode)
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, op, path, query, out)
	metrics.ObserveBackendRequest(op, err, time.Since(start))
	return err
}

func (c *Client) doGetJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("api: %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		return &StatusError{Operation: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: %s: decode response: %w", op, err)
	}
	return nil
}

// drain consumes a response body so the connection can be reused.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 1<<16))
}
