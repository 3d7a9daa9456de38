package http

import (
	"io"
	"log/slog"
	"net/http"

	"faturas/internal/core"
)

const msgNoInvoices = "Nenhuma fatura encontrada para os critérios informados."

// invoiceTableData feeds the results table partial.
type invoiceTableData struct {
	Invoices []core.Invoice
	Error    bool
}

// handleInvoicesPage renders the library page. The initial page load
// already runs a search with the default year and empty filters.
func (s *Server) handleInvoicesPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filter := parseLibraryFilter(r)
	table := s.searchInvoices(r, filter)

	data := struct {
		Active string
		Filter periodFilter
		Years  []string
		Months []string
		Table  invoiceTableData
	}{
		Active: "invoices",
		Filter: filter,
		Years:  core.LibraryYears,
		Months: core.Months,
		Table:  table,
	}
	s.render(w, r, "invoices.html", data)
}

// handleInvoiceTable returns the results table partial for the current
// filters. The form uses hx-sync, so a superseded search is dropped
// instead of racing the newer one.
func (s *Server) handleInvoiceTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	filter := parseLibraryFilter(r)
	s.render(w, r, "invoice_table.html", s.searchInvoices(r, filter))
}

func (s *Server) searchInvoices(r *http.Request, filter periodFilter) invoiceTableData {
	invoices, err := s.backend.ListInvoices(r.Context(), filter.ClientNumber, filter.Token())
	if err != nil {
		slog.ErrorContext(r.Context(), "List invoices failed",
			"error", err,
			"client_number", filter.ClientNumber,
			"reference_month", filter.Token())
		return invoiceTableData{Error: true}
	}
	return invoiceTableData{Invoices: invoices}
}

// handleDownload streams one invoice PDF through from the backend with
// an attachment disposition, so the browser saves it under the expected
// name. Failures render a visible error instead of staying silent.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	clientNumber := sanitizeInput(q.Get("clientNumber"))
	referenceMonth := sanitizeInput(q.Get("referenceMonth"))
	if clientNumber == "" || referenceMonth == "" {
		http.Error(w, "clientNumber e referenceMonth são obrigatórios", http.StatusBadRequest)
		return
	}

	body, contentType, err := s.backend.Download(r.Context(), clientNumber, referenceMonth)
	if err != nil {
		slog.ErrorContext(r.Context(), "Download failed",
			"error", err,
			"client_number", clientNumber,
			"reference_month", referenceMonth)
		http.Error(w, "Erro ao baixar a fatura. Por favor, tente novamente.", http.StatusBadGateway)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+core.DownloadFilename(clientNumber, referenceMonth)+`"`)
	if _, err := io.Copy(w, body); err != nil {
		// Headers are already out; nothing to do but log.
		slog.ErrorContext(r.Context(), "Download stream interrupted",
			"error", err,
			"client_number", clientNumber,
			"reference_month", referenceMonth)
	}
}
