package api

import (
	"context"
	"net/url"

	"faturas/internal/core"
	applog "faturas/internal/log"
)

// DashboardData fetches the aggregate summary for the filtered invoice
// set. Both filters are optional; empty values are not sent.
func (c *Client) DashboardData(ctx context.Context, clientNumber, referenceMonth string) (core.DashboardSummary, error) {
	query := url.Values{}
	if clientNumber != "" {
		query.Set("clientNumber", clientNumber)
	}
	if referenceMonth != "" {
		query.Set("referenceMonth", referenceMonth)
	}

	var summary core.DashboardSummary
	if err := c.getJSON(ctx, applog.OpSummary, "/invoices/dashboard-data", query, &summary); err != nil {
		return core.DashboardSummary{}, err
	}
	return summary, nil
}

// Customers fetches the customer records used by the dashboard filter.
func (c *Client) Customers(ctx context.Context) ([]core.Customer, error) {
	var customers []core.Customer
	if err := c.getJSON(ctx, applog.OpCustomers, "/invoices/customers", nil, &customers); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "Customers listed", applog.FieldCustomerCount, len(customers))
	return customers, nil
}
