package pricing

import (
	"time"

	"nestcare/models"
	"nestcare/utils"
)

const (
	// feeWaiverDayThreshold waives the flat service fee on hourly and
	// per-day bookings of five or more selected dates.
	feeWaiverDayThreshold = 5

	// placementFeeFactor is the half-base placement fee charged on the three
	// larger home-size tiers.
	placementFeeFactor = 0.5

	// shortTermCommissionPct applies to hourly, per-day and gap-coverage
	// bookings regardless of amount.
	shortTermCommissionPct = 10.0

	// Monthly commission tiers, evaluated against the monthly base rate.
	// Boundary values belong to the lower tier.
	monthlyLowCommissionPct  = 10.0
	monthlyMidCommissionPct  = 12.0
	monthlyHighCommissionPct = 15.0
	monthlyLowRateCeiling    = 7000.0
	monthlyMidRateCeiling    = 10000.0
)

// serviceFee returns the flat service fee for a short-term booking, and
// whether the five-date waiver zeroed it.
func serviceFee(cat *RateCatalog, dateCount int) (fee float64, waived bool) {
	if dateCount >= feeWaiverDayThreshold {
		return 0, true
	}
	return cat.FlatServiceFee(), false
}

// placementFee is a step function over the ordered tier list: the two
// smallest tiers pay the flat fee, the larger three pay half the monthly
// base rate. The tier boundary is exact.
func placementFee(cat *RateCatalog, tier models.HomeSizeTier, monthlyBase float64) float64 {
	if IsSmallTier(tier) {
		return cat.FlatPlacementFee()
	}
	return utils.RoundMoney(monthlyBase * placementFeeFactor)
}

// commissionPercent picks the sliding-scale tier. For monthly placements the
// breakpoints are evaluated against the monthly base rate; short-term
// bookings pay the flat percentage.
func commissionPercent(bd models.PricingBreakdown) float64 {
	if bd.Cadence != models.CadenceMonthly {
		return shortTermCommissionPct
	}
	switch {
	case bd.MonthlyBaseRate <= monthlyLowRateCeiling:
		return monthlyLowCommissionPct
	case bd.MonthlyBaseRate <= monthlyMidRateCeiling:
		return monthlyMidCommissionPct
	default:
		return monthlyHighCommissionPct
	}
}

// splitBreakdown derives the financial split of a priced booking. Nanny
// earnings are the exact remainder of the client total after platform
// revenue; a negative remainder signals a rate-table misconfiguration and is
// raised, never clamped, since clamping would corrupt the reconciliation
// identity.
func splitBreakdown(bd models.PricingBreakdown, computedAt time.Time) (*models.BookingFinancials, error) {
	pct := commissionPercent(bd)
	commission := utils.RoundMoney(bd.TotalClientCharge * pct / 100)
	adminRevenue := utils.RoundMoney(bd.PlacementOrServiceFee + commission)
	nannyEarnings := utils.RoundMoney(bd.TotalClientCharge - adminRevenue)

	if nannyEarnings < 0 {
		return nil, NewNegativeEarnings(
			"fee %.2f + commission %.2f exceed client total %.2f",
			bd.PlacementOrServiceFee, commission, bd.TotalClientCharge,
		)
	}

	return &models.BookingFinancials{
		Currency:              bd.Currency,
		TotalClientCharge:     bd.TotalClientCharge,
		AmountDueNow:          bd.AmountDueNow,
		AmountDueAtSettlement: bd.AmountAtSettlement,
		CommissionPercent:     pct,
		CommissionAmount:      commission,
		PlacementOrServiceFee: bd.PlacementOrServiceFee,
		AdminTotalRevenue:     adminRevenue,
		NannyEarnings:         nannyEarnings,
		ComputedAt:            computedAt,
	}, nil
}
