package pricing

import (
	"time"

	"go.uber.org/zap"

	"nestcare/models"
)

func (e *DefaultPricingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultPricingEngine) location() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return time.UTC
}

func (e *DefaultPricingEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.NewNop()
}

func (e *DefaultPricingEngine) currency() string {
	if e.Currency != "" {
		return e.Currency
	}
	return "ZAR"
}

// CatalogVersion reports the version of the catalog snapshot in force.
// Anything derived from a computed price, such as a cached quote, must be
// keyed on it so a rate publish invalidates the derivation.
func (e *DefaultPricingEngine) CatalogVersion() int {
	return e.Catalog.Current().Version()
}

// ComputePricing validates the request and dispatches it into exactly one
// pricing strategy. Invalid requests are rejected before any calculation.
func (e *DefaultPricingEngine) ComputePricing(req models.BookingRequest) (*models.PricingBreakdown, error) {
	if err := e.validateRequest(req); err != nil {
		return nil, err
	}
	return computeBreakdown(e.Catalog.Current(), req, e.location(), e.currency(), e.logger())
}

// ComputeFinancials applies the fee and commission split to a priced
// booking. The result is a fresh immutable record; persistence and
// versioning belong to the booking workflow.
func (e *DefaultPricingEngine) ComputeFinancials(bd models.PricingBreakdown) (*models.BookingFinancials, error) {
	fin, err := splitBreakdown(bd, e.now())
	if err != nil {
		if HasCode(err, CodeNegativeEarnings) {
			// Mandatory alerting hook: this means a rate table or fee rule
			// is misconfigured.
			e.logger().Error("negative nanny earnings",
				zap.String("sub_type", string(bd.SubType)),
				zap.Float64("total_client_charge", bd.TotalClientCharge),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return fin, nil
}

// ValidateReconciliation checks a stored breakdown/financials pair against
// the current catalog. Mismatches are logged and reported, never repaired.
func (e *DefaultPricingEngine) ValidateReconciliation(bd models.PricingBreakdown, fin models.BookingFinancials) models.ValidationResult {
	res := validateReconciliation(e.Catalog.Current(), bd, fin)
	if !res.Passed {
		e.logger().Error("reconciliation mismatch",
			zap.String("financials_id", fin.ID),
			zap.String("booking_id", fin.BookingID),
			zap.Float64("variance", res.Variance),
			zap.Bool("identity_exact", res.IdentityExact),
			zap.String("detail", res.Detail),
		)
	}
	return res
}

// validateRequest enforces the structural booking invariants before any
// calculation happens.
func (e *DefaultPricingEngine) validateRequest(req models.BookingRequest) error {
	if len(req.Dates) == 0 {
		return NewInvalidBookingRequest("no dates selected")
	}

	mapped, ok := strategyCategory(req.SubType)
	if !ok {
		return NewInvalidBookingRequest("unknown booking sub-type %q", req.SubType)
	}
	if mapped != req.Category {
		return NewInvalidBookingRequest(
			"sub-type %q belongs to category %q, request says %q",
			req.SubType, mapped, req.Category,
		)
	}

	loc := e.location()
	today := e.now().In(loc)
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	seen := make(map[string]bool, len(req.Dates))
	for _, d := range req.Dates {
		day, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return NewInvalidBookingRequest("malformed date %q", d)
		}
		if seen[d] {
			return NewInvalidBookingRequest("duplicate date %q", d)
		}
		seen[d] = true
		if day.Before(todayMidnight) {
			return NewInvalidBookingRequest("date %q is in the past", d)
		}
	}

	if req.Category == models.CategoryHourly && len(req.TimeWindows) == 0 {
		return NewInvalidBookingRequest("hourly booking requires time windows")
	}

	if req.Category == models.CategoryMonthly {
		if req.HomeSizeTier == "" {
			return NewInvalidBookingRequest("monthly booking requires a home-size tier")
		}
		if req.LivingArrangement != models.LiveIn && req.LivingArrangement != models.LiveOut {
			return NewInvalidBookingRequest("monthly booking requires a living arrangement")
		}
	}
	return nil
}
