package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Combination is a client rate card entry keyed by (species, harvest type).
// Price is currency per container-norm; ContainerNorm is the number of
// containers equivalent to one standard 8-hour day.
type Combination struct {
	ID             string
	OrganizationID string
	ClientID       string
	SpeciesID      string
	HarvestTypeID  string
	Price          decimal.Decimal
	ContainerNorm  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	SpeciesName     *string
	HarvestTypeName *string
}

// HourlyRate returns the effective rate per 100%-window hour: the price of a
// full norm spread over the standard 8-hour day.
func (c Combination) HourlyRate() decimal.Decimal {
	return c.Price.Div(decimal.NewFromInt(8))
}
