package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Facility represents a parking lot or structure containing spaces
type Facility struct {
	ID        int64
	Name      string
	Address   *string
	Latitude  *decimal.Decimal
	Longitude *decimal.Decimal
	Capacity  int
	Schedule  *string // Free-form opening hours, e.g. "Lun-Dom 06:00-22:00"
	CreatedAt time.Time
}
