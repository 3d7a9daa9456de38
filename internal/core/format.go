package core

import (
	"strconv"
)

// FormatKWh renders an energy figure for the dashboard cards, e.g. "120 kWh".
// Whole numbers print without a decimal part, fractional ones as-is.
func FormatKWh(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " kWh"
}

// FormatReais renders a currency figure with exactly two decimals and a
// dot separator, e.g. "R$ 450.50".
func FormatReais(v float64) string {
	return "R$ " + strconv.FormatFloat(v, 'f', 2, 64)
}

// DownloadFilename is the save name used for a fetched invoice PDF.
func DownloadFilename(clientNumber, referenceMonth string) string {
	return "fatura_" + clientNumber + "_" + referenceMonth + ".pdf"
}
