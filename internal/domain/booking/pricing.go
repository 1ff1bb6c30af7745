package booking

import (
	"fmt"
	"math"
	"time"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
)

// PricingStrategy defines the interface for calculating booking prices.
type PricingStrategy interface {
	// Calculate returns the total price in cents for the given parameters.
	Calculate(params PricingParams) (int64, error)
}

// PricingParams holds the inputs for price calculation. Package is consulted
// in package mode, Services in flexible mode. Dates are optional; lodging only
// prices when both are present.
type PricingParams struct {
	Mode     BookingMode
	Guests   int
	Package  *catalog.Package
	Services []*catalog.Service
	CheckIn  *time.Time
	CheckOut *time.Time
}

// StandardPricingStrategy implements the guest house pricing rules.
type StandardPricingStrategy struct{}

// NewStandardPricingStrategy creates a new StandardPricingStrategy.
func NewStandardPricingStrategy() *StandardPricingStrategy {
	return &StandardPricingStrategy{}
}

// Calculate computes the total price in cents (ZAR).
//
// Package mode: package price per person x guest count.
//
// Flexible mode: non-lodging service prices are summed once; if both dates
// are set and a lodging service is selected, the first lodging service in
// selection order contributes price x nights. The whole bundle is then
// multiplied by guest count.
func (s *StandardPricingStrategy) Calculate(params PricingParams) (int64, error) {
	if params.Guests < 1 {
		return 0, domain.NewValidationError("guest count must be at least 1")
	}
	if params.CheckIn != nil && params.CheckOut != nil && params.CheckOut.Before(*params.CheckIn) {
		return 0, domain.NewValidationError("check-out date cannot be before check-in date")
	}

	switch params.Mode {
	case ModePackage:
		if params.Package == nil {
			return 0, domain.NewValidationError("a package must be selected for package bookings")
		}
		return params.Package.PriceCents() * int64(params.Guests), nil

	case ModeFlexible:
		if len(params.Services) == 0 {
			return 0, domain.NewValidationError("at least one service must be selected for flexible bookings")
		}

		var servicesTotal int64
		var lodging *catalog.Service
		for _, svc := range params.Services {
			if svc.IsLodging() {
				// Only the first lodging selection prices per night.
				if lodging == nil {
					lodging = svc
				}
				continue
			}
			servicesTotal += svc.PriceCents()
		}

		var lodgingCents int64
		if lodging != nil && params.CheckIn != nil && params.CheckOut != nil {
			lodgingCents = lodging.PriceCents() * int64(NightsBetween(*params.CheckIn, *params.CheckOut))
		}

		return (servicesTotal + lodgingCents) * int64(params.Guests), nil

	default:
		return 0, domain.NewValidationError(fmt.Sprintf("unknown booking mode: %s", params.Mode))
	}
}

// NightsBetween returns the number of nights between check-in and check-out,
// never negative. Same-day check-out counts as zero nights.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}
