// Package core holds the invoice domain types and the reference-period
// rules shared by the web handlers and the backend API client.
package core

// Months is the closed set of pt-BR month abbreviations used by the
// backend's reference-period tokens, in calendar order.
var Months = []string{"JAN", "FEV", "MAR", "ABR", "MAI", "JUN", "JUL", "AGO", "SET", "OUT", "NOV", "DEZ"}

// LibraryYears are the years offered by the invoice library filter.
// DefaultYear is the most recent supported one and the initial selection.
var LibraryYears = []string{"2018", "2019", "2020", "2021", "2022", "2023", "2024"}

// DashboardYears are the years offered by the dashboard filter.
var DashboardYears = []string{"2022", "2023", "2024"}

// DefaultYear is the initial year selection in the invoice library.
const DefaultYear = "2024"

// PeriodToken composes the reference-period filter key sent to the
// backend: MON/YYYY when a month is selected, the bare year otherwise.
// Month/year consistency is not checked here; the backend validates.
func PeriodToken(month, year string) string {
	if month != "" {
		return month + "/" + year
	}
	return year
}

// ValidMonth reports whether m is one of the closed month set.
// The empty string is not a month; callers treat it as "all months".
func ValidMonth(m string) bool {
	for _, known := range Months {
		if m == known {
			return true
		}
	}
	return false
}

// ValidLibraryYear reports whether y is a year the library filter offers.
func ValidLibraryYear(y string) bool {
	for _, known := range LibraryYears {
		if y == known {
			return true
		}
	}
	return false
}
