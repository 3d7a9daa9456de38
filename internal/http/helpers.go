package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"faturas/internal/core"
)

type contextKey string

const ctxKeyRequestID contextKey = "request_id"

// periodFilter holds the filter state one view submits.
type periodFilter struct {
	ClientNumber string
	Year         string
	Month        string
}

// Token composes the reference-period key: MON/YYYY with a month, the
// bare year without one.
func (f periodFilter) Token() string {
	return core.PeriodToken(f.Month, f.Year)
}

// parseLibraryFilter reads the invoice library filters. The year falls
// back to the most recent supported one, an unknown month to "all".
func parseLibraryFilter(r *http.Request) periodFilter {
	q := r.URL.Query()
	f := periodFilter{
		ClientNumber: sanitizeInput(q.Get("clientNumber")),
		Year:         strings.TrimSpace(q.Get("year")),
		Month:        strings.TrimSpace(q.Get("month")),
	}
	if !core.ValidLibraryYear(f.Year) {
		f.Year = core.DefaultYear
	}
	if !core.ValidMonth(f.Month) {
		f.Month = ""
	}
	return f
}

// parseDashboardFilter reads the dashboard filters. All of them are
// optional; a month without a year is dropped, mirroring the token rule.
func parseDashboardFilter(r *http.Request) periodFilter {
	q := r.URL.Query()
	f := periodFilter{
		ClientNumber: sanitizeInput(q.Get("clientNumber")),
		Year:         strings.TrimSpace(q.Get("year")),
		Month:        strings.TrimSpace(q.Get("month")),
	}
	if !core.ValidMonth(f.Month) {
		f.Month = ""
	}
	if f.Year == "" {
		f.Month = ""
	}
	return f
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
