package http

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"faturas/internal/core"
)

// summaryView is the dashboard summary shaped for rendering: the four
// formatted cards plus the two chart datasets as JSON for the client
// renderer (which switches bar/line/pie locally, without refetching).
type summaryView struct {
	EnergyConsumed    string
	EnergyCompensated string
	ValueWithoutGD    string
	EconomyGD         string
	ChartJSON         template.JS
}

type chartDataset struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func buildSummaryView(summary core.DashboardSummary) summaryView {
	payload := struct {
		Energy    chartDataset `json:"energy"`
		Financial chartDataset `json:"financial"`
	}{
		Energy: chartDataset{
			Label:  "Energia (kWh)",
			Labels: []string{"Consumo de Energia", "Energia Compensada"},
			Values: []float64{summary.TotalEnergyConsumed, summary.TotalEnergyCompensated},
		},
		Financial: chartDataset{
			Label:  "Valor (R$)",
			Labels: []string{"Valor Total Sem GD", "Economia GD"},
			Values: []float64{summary.TotalValueWithoutGD, summary.TotalEconomyGD},
		},
	}
	raw, _ := json.Marshal(payload)

	return summaryView{
		EnergyConsumed:    core.FormatKWh(summary.TotalEnergyConsumed),
		EnergyCompensated: core.FormatKWh(summary.TotalEnergyCompensated),
		ValueWithoutGD:    core.FormatReais(summary.TotalValueWithoutGD),
		EconomyGD:         core.FormatReais(summary.TotalEconomyGD),
		ChartJSON:         template.JS(raw),
	}
}

// handleDashboardPage renders the dashboard. The customer list and the
// unfiltered summary are fetched concurrently; neither waits for the
// other and neither failure breaks the page.
func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var (
		customers    []core.Customer
		summary      core.DashboardSummary
		customersErr error
		summaryErr   error
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		customers, customersErr = s.backend.Customers(ctx)
		return nil
	})
	g.Go(func() error {
		summary, summaryErr = s.backend.DashboardData(ctx, "", "")
		return nil
	})
	_ = g.Wait()

	if customersErr != nil {
		slog.ErrorContext(r.Context(), "List customers failed", "error", customersErr)
		customers = nil
	}
	if summaryErr != nil {
		slog.ErrorContext(r.Context(), "Dashboard summary failed", "error", summaryErr)
	}

	data := struct {
		Active     string
		Customers  []core.Customer
		Years      []string
		Months     []string
		HasSummary bool
		Summary    summaryView
	}{
		Active:     "dashboard",
		Customers:  customers,
		Years:      core.DashboardYears,
		Months:     core.Months,
		HasSummary: summaryErr == nil,
	}
	if summaryErr == nil {
		data.Summary = buildSummaryView(summary)
	}
	s.render(w, r, "dashboard.html", data)
}

// handleDashboardSummary re-fetches the summary for the submitted
// filters and returns the cards+charts partial. On a backend failure it
// answers 204, which leaves the previously rendered figures in place.
func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filter := parseDashboardFilter(r)
	summary, err := s.backend.DashboardData(r.Context(), filter.ClientNumber, filter.Token())
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard summary failed",
			"error", err,
			"client_number", filter.ClientNumber,
			"reference_month", filter.Token())
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.render(w, r, "dashboard_summary.html", buildSummaryView(summary))
}
