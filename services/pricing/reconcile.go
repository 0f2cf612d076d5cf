package pricing

import (
	"fmt"

	"nestcare/models"
	"nestcare/utils"
)

// reconcileToleranceCents absorbs independent rounding paths when comparing
// the recomputed client total against the stored one. The revenue identity
// itself is checked with zero tolerance.
const reconcileToleranceCents = 1

// validateReconciliation recomputes the expected client total from the
// breakdown's resolved quantities and the current catalog, then checks the
// stored financials against it. On failure it reports; it never corrects
// stored values.
func validateReconciliation(cat *RateCatalog, bd models.PricingBreakdown, fin models.BookingFinancials) models.ValidationResult {
	identityExact := utils.MinorUnits(fin.TotalClientCharge) ==
		utils.MinorUnits(fin.AdminTotalRevenue)+utils.MinorUnits(fin.NannyEarnings)

	expected, err := recomputeTotal(cat, bd)
	if err != nil {
		return models.ValidationResult{
			Passed:        false,
			IdentityExact: identityExact,
			Detail:        fmt.Sprintf("recompute failed: %v", err),
		}
	}

	varianceCents := utils.MinorUnits(expected) - utils.MinorUnits(fin.TotalClientCharge)
	if varianceCents < 0 {
		varianceCents = -varianceCents
	}

	res := models.ValidationResult{
		Passed:        varianceCents <= reconcileToleranceCents && identityExact,
		Variance:      float64(varianceCents) / 100,
		IdentityExact: identityExact,
	}
	if !res.Passed {
		res.Detail = fmt.Sprintf(
			"expected total %.2f, stored %.2f; identity exact: %v",
			expected, fin.TotalClientCharge, identityExact,
		)
	}
	return res
}

// recomputeTotal re-derives the client total from catalog rates and the
// quantities recorded on the breakdown, independently of the strategy code
// that produced it.
func recomputeTotal(cat *RateCatalog, bd models.PricingBreakdown) (float64, error) {
	base, monthlyBase, err := recomputeBase(cat, bd)
	if err != nil {
		return 0, err
	}

	total := utils.RoundMoney(base)
	tier := cat.ResolveTier(bd.HomeSizeTier).Tier
	for _, it := range bd.AddOnItems {
		rate, err := expectedUnitRate(cat, it.Name, bd.Cadence, tier)
		if err != nil {
			return 0, err
		}
		total += utils.RoundMoney(rate * it.Quantity)
	}

	switch bd.Cadence {
	case models.CadenceProratedMonthly, models.CadenceMonthly:
		total += placementFee(cat, tier, monthlyBase)
	default:
		fee, _ := serviceFee(cat, bd.TotalDays)
		total += fee
	}
	return utils.RoundMoney(total), nil
}

func recomputeBase(cat *RateCatalog, bd models.PricingBreakdown) (base, monthlyBase float64, err error) {
	switch bd.Cadence {
	case models.CadenceHourly:
		weekdayRate, err := cat.HourlyRate(bd.SubType, models.Weekday)
		if err != nil {
			return 0, 0, err
		}
		weekendRate, err := cat.HourlyRate(bd.SubType, models.Weekend)
		if err != nil {
			return 0, 0, err
		}
		return weekdayRate*bd.WeekdayHours + weekendRate*bd.WeekendHours, 0, nil

	case models.CadencePerDay:
		weekdayRate, err := cat.PerDayRate(models.Weekday)
		if err != nil {
			return 0, 0, err
		}
		weekendRate, err := cat.PerDayRate(models.Weekend)
		if err != nil {
			return 0, 0, err
		}
		return weekdayRate*float64(bd.WeekdayCount) + weekendRate*float64(bd.WeekendCount), 0, nil

	case models.CadenceProratedMonthly:
		tier := cat.ResolveTier(bd.HomeSizeTier).Tier
		monthly, err := cat.MonthlyRate(tier, models.LiveOut)
		if err != nil {
			return 0, 0, err
		}
		return monthly * bd.ProrataMultiplier, monthly, nil

	case models.CadenceMonthly:
		tier := cat.ResolveTier(bd.HomeSizeTier).Tier
		monthly, err := cat.MonthlyRate(tier, bd.LivingArrangement)
		if err != nil {
			return 0, 0, err
		}
		return monthly, monthly, nil
	}
	return 0, 0, NewInvalidBookingRequest("unknown billing cadence %q", bd.Cadence)
}

// expectedUnitRate re-derives the catalog unit rate a stored line item
// should have been priced at.
func expectedUnitRate(cat *RateCatalog, name models.AddOn, cadence models.BillingCadence, tier models.HomeSizeTier) (float64, error) {
	switch name {
	case surchargeExtraChildren:
		return cat.ExtraChildMonthlyRate(), nil
	case surchargeExtraDependents:
		return cat.ExtraDependentMonthly(), nil
	}
	if cadence == models.CadenceHourly {
		switch name {
		case models.AddOnCooking:
			return cat.CookingDayRate(), nil
		case models.AddOnLightHousekeeping:
			return cat.HousekeepingDayRate(tier)
		case models.AddOnDrivingSupport:
			return cat.DrivingHourlyRate(), nil
		case models.AddOnSpecialNeeds:
			return cat.SpecialNeedsHourly(), nil
		}
		return 0, NewUnknownRateKey("no hourly-cadence rate for add-on %q", name)
	}
	return monthlyAddOnRate(cat, name, tier)
}
