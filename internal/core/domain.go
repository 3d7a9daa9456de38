package core

import (
	"errors"
)

// MaxUploadFiles is the largest batch the backend accepts per upload request.
const MaxUploadFiles = 10

type (
	// Invoice is one stored billing document as the backend reports it.
	// Records are read-only on this side; they live for one listing.
	Invoice struct {
		ID             int    `json:"id"`
		ClientNumber   string `json:"clientNumber"`
		Distributor    string `json:"distributor"`
		ReferenceMonth string `json:"referenceMonth"`
	}

	// Customer populates the dashboard client filter.
	Customer struct {
		ID           int    `json:"id"`
		ClientNumber string `json:"clientNumber"`
		UCNumber     string `json:"ucNumber"`
	}

	// DashboardSummary is the server-computed aggregate for a filtered set
	// of invoices. Energy figures are kWh, financial figures reais.
	DashboardSummary struct {
		TotalEnergyConsumed    float64 `json:"totalEnergyConsumed"`
		TotalEnergyCompensated float64 `json:"totalEnergyCompensated"`
		TotalValueWithoutGD    float64 `json:"totalValueWithoutGD"`
		TotalEconomyGD         float64 `json:"totalEconomyGD"`
	}
)

var (
	ErrNoFiles      = errors.New("no files selected")
	ErrTooManyFiles = errors.New("too many files selected")
	ErrEmptyClient  = errors.New("empty client number")
	ErrEmptyPeriod  = errors.New("empty reference month")
)

// ValidateUploadCount enforces the 1..MaxUploadFiles batch size rule.
// The check runs before any backend call is made.
func ValidateUploadCount(n int) error {
	if n == 0 {
		return ErrNoFiles
	}
	if n > MaxUploadFiles {
		return ErrTooManyFiles
	}
	return nil
}
