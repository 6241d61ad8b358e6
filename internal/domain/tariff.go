package domain

import "github.com/shopspring/decimal"

// Tariff holds the billing parameters for reservation charges.
// It is an explicit value threaded into the billing calculator,
// never a process-wide singleton.
type Tariff struct {
	RatePerHour   decimal.Decimal
	MinimumCharge decimal.Decimal
}

// DefaultTariff returns the tariff applied when nothing is configured:
// 10 currency units per hour, no minimum charge.
func DefaultTariff() Tariff {
	return Tariff{
		RatePerHour:   decimal.NewFromInt(10),
		MinimumCharge: decimal.Zero,
	}
}
