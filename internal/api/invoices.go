package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"faturas/internal/core"
	applog "faturas/internal/log"
	"faturas/internal/observability/metrics"
	"time"
)

// ListInvoices fetches the stored invoices matching the filters.
// Both filters are optional; empty values are not sent.
func (c *Client) ListInvoices(ctx context.Context, clientNumber, referenceMonth string) ([]core.Invoice, error) {
	query := url.Values{}
	if clientNumber != "" {
		query.Set("clientNumber", clientNumber)
	}
	if referenceMonth != "" {
		query.Set("referenceMonth", referenceMonth)
	}

	var invoices []core.Invoice
	if err := c.getJSON(ctx, applog.OpList, "/invoices", query, &invoices); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "Invoices listed",
		applog.FieldClientNumber, clientNumber,
		applog.FieldReferenceMonth, referenceMonth,
		applog.FieldInvoiceCount, len(invoices))
	return invoices, nil
}

// Download fetches one invoice PDF as a stream. Both parameters are
// required; the caller owns the returned body and must close it.
func (c *Client) Download(ctx context.Context, clientNumber, referenceMonth string) (io.ReadCloser, string, error) {
	if clientNumber == "" {
		return nil, "", core.ErrEmptyClient
	}
	if referenceMonth == "" {
		return nil, "", core.ErrEmptyPeriod
	}

	start := time.Now()
	body, contentType, err := c.doDownload(ctx, clientNumber, referenceMonth)
	metrics.ObserveBackendRequest(applog.OpDownload, err, time.Since(start))
	return body, contentType, err
}

func (c *Client) doDownload(ctx context.Context, clientNumber, referenceMonth string) (io.ReadCloser, string, error) {
	query := url.Values{}
	query.Set("clientNumber", clientNumber)
	query.Set("referenceMonth", referenceMonth)

	u := c.baseURL + "/invoices/download?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("api: %s: build request: %w", applog.OpDownload, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("api: %s: %w", applog.OpDownload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		resp.Body.Close()
		return nil, "", &StatusError{Operation: applog.OpDownload, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return resp.Body, contentType, nil
}
