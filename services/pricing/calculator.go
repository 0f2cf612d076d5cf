package pricing

import (
	"time"

	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/utils"
)

// Surcharge line items on monthly placements. They ride in the add-on item
// list so quotes stay a single ordered list of charges.
const (
	surchargeExtraChildren   models.AddOn = "extra_children"
	surchargeExtraDependents models.AddOn = "extra_dependents"
)

// extraChildThreshold is how many children the monthly base rate covers.
const extraChildThreshold = 2

// strategyCategory is the total, non-overlapping sub-type to strategy
// mapping. A booking whose category disagrees with it is rejected at the
// boundary before any calculation.
func strategyCategory(sub models.BookingSubType) (models.BookingCategory, bool) {
	switch sub {
	case models.SubTypeEmergency, models.SubTypeDateNight, models.SubTypeDateDay:
		return models.CategoryHourly, true
	case models.SubTypeDayCarer, models.SubTypeTemporarySupport:
		return models.CategoryDailyProrated, true
	case models.SubTypeLongTerm:
		return models.CategoryMonthly, true
	}
	return "", false
}

// computeBreakdown dispatches into exactly one of the three pricing
// strategies. Pure: no shared state between invocations, the catalog
// snapshot is read-only.
func computeBreakdown(cat *RateCatalog, req models.BookingRequest, loc *time.Location, currency string, logger *zap.Logger) (*models.PricingBreakdown, error) {
	switch req.Category {
	case models.CategoryHourly:
		return computeHourly(cat, req, loc, currency, logger)
	case models.CategoryDailyProrated:
		if req.SubType == models.SubTypeTemporarySupport {
			return computeGapCoverage(cat, req, loc, currency, logger)
		}
		return computePerDay(cat, req, loc, currency, logger)
	case models.CategoryMonthly:
		return computeMonthly(cat, req, currency, logger)
	}
	return nil, NewInvalidBookingRequest("unknown booking category %q", req.Category)
}

// resolveTierLogged applies the catalog tier rule and logs fallback
// resolutions; the family_hub fallback is a named rule, never silent.
func resolveTierLogged(cat *RateCatalog, tier models.HomeSizeTier, logger *zap.Logger) TierResolution {
	res := cat.ResolveTier(tier)
	if res.Fallback {
		logger.Warn("home-size tier fallback rule applied",
			zap.String("input_tier", string(tier)),
			zap.String("resolved_tier", string(res.Tier)),
			zap.String("reason", res.Reason),
		)
	}
	return res
}

// computeHourly prices emergency, date-night and date-day bookings: per-date
// hourly rate times billable hours, plus per-cadence add-ons, plus the flat
// service fee unless the five-date waiver applies. The whole charge is due
// up front.
func computeHourly(cat *RateCatalog, req models.BookingRequest, loc *time.Location, currency string, logger *zap.Logger) (*models.PricingBreakdown, error) {
	dur, err := resolveHourly(req.SubType, req.Dates, req.TimeWindows, loc)
	if err != nil {
		return nil, err
	}

	base := 0.0
	for _, dh := range dur.PerDate {
		rate, err := cat.HourlyRate(req.SubType, dh.Class)
		if err != nil {
			return nil, err
		}
		base += rate * dh.Hours
	}
	base = utils.RoundMoney(base)

	tierRes := resolveTierLogged(cat, req.HomeSizeTier, logger)
	items, err := priceAddOns(cat, req.AddOns, addOnContext{
		cadence:    models.CadenceHourly,
		tier:       tierRes.Tier,
		days:       len(req.Dates),
		totalHours: dur.TotalHours,
	})
	if err != nil {
		return nil, err
	}

	subtotal := sumCharges(base, items)
	fee, waived := serviceFee(cat, len(req.Dates))
	total := utils.RoundMoney(subtotal + fee)

	return &models.PricingBreakdown{
		Category:              req.Category,
		SubType:               req.SubType,
		HomeSizeTier:          req.HomeSizeTier,
		Cadence:               models.CadenceHourly,
		Currency:              currency,
		TotalHours:            dur.TotalHours,
		WeekdayHours:          dur.WeekdayHours,
		WeekendHours:          dur.WeekendHours,
		TotalDays:             len(req.Dates),
		BaseAmount:            base,
		AddOnItems:            items,
		Subtotal:              subtotal,
		PlacementOrServiceFee: fee,
		FeeWaived:             waived,
		TotalClientCharge:     total,
		AmountDueNow:          total,
		AmountAtSettlement:    0,
	}, nil
}

// computePerDay prices legacy day-carer bookings: weekday and weekend day
// counts times their day rates. Add-ons scale the monthly rate by days/30.
func computePerDay(cat *RateCatalog, req models.BookingRequest, loc *time.Location, currency string, logger *zap.Logger) (*models.PricingBreakdown, error) {
	dur, err := resolveDaily(req.Dates, loc)
	if err != nil {
		return nil, err
	}
	weekdayRate, err := cat.PerDayRate(models.Weekday)
	if err != nil {
		return nil, err
	}
	weekendRate, err := cat.PerDayRate(models.Weekend)
	if err != nil {
		return nil, err
	}
	base := utils.RoundMoney(float64(dur.WeekdayCount)*weekdayRate + float64(dur.WeekendCount)*weekendRate)

	pro := resolveProrata(req.Dates)
	tierRes := resolveTierLogged(cat, req.HomeSizeTier, logger)
	items, err := priceAddOns(cat, req.AddOns, addOnContext{
		cadence: models.CadencePerDay,
		tier:    tierRes.Tier,
		days:    pro.TotalDays,
		prorata: pro.Multiplier,
	})
	if err != nil {
		return nil, err
	}

	subtotal := sumCharges(base, items)
	fee, waived := serviceFee(cat, len(req.Dates))
	total := utils.RoundMoney(subtotal + fee)

	return &models.PricingBreakdown{
		Category:              req.Category,
		SubType:               req.SubType,
		HomeSizeTier:          req.HomeSizeTier,
		Cadence:               models.CadencePerDay,
		Currency:              currency,
		WeekdayCount:          dur.WeekdayCount,
		WeekendCount:          dur.WeekendCount,
		TotalDays:             pro.TotalDays,
		ProrataMultiplier:     pro.Multiplier,
		BaseAmount:            base,
		AddOnItems:            items,
		Subtotal:              subtotal,
		PlacementOrServiceFee: fee,
		FeeWaived:             waived,
		TotalClientCharge:     total,
		AmountDueNow:          total,
		AmountAtSettlement:    0,
	}, nil
}

// computeGapCoverage prices temporary-support bookings: the live-out monthly
// rate prorated over a flat 30-day month. The placement fee is due
// immediately; the prorated base and add-ons settle at end of booking.
func computeGapCoverage(cat *RateCatalog, req models.BookingRequest, loc *time.Location, currency string, logger *zap.Logger) (*models.PricingBreakdown, error) {
	if err := validateGapCoverageDates(req.Dates, loc); err != nil {
		return nil, err
	}
	tierRes := resolveTierLogged(cat, req.HomeSizeTier, logger)
	monthly, err := cat.MonthlyRate(tierRes.Tier, models.LiveOut)
	if err != nil {
		return nil, err
	}

	pro := resolveProrata(req.Dates)
	base := utils.RoundMoney(monthly * pro.Multiplier)

	items, err := priceAddOns(cat, req.AddOns, addOnContext{
		cadence: models.CadenceProratedMonthly,
		tier:    tierRes.Tier,
		days:    pro.TotalDays,
		prorata: pro.Multiplier,
	})
	if err != nil {
		return nil, err
	}

	subtotal := sumCharges(base, items)
	fee := placementFee(cat, tierRes.Tier, monthly)
	total := utils.RoundMoney(subtotal + fee)

	return &models.PricingBreakdown{
		Category:              req.Category,
		SubType:               req.SubType,
		HomeSizeTier:          tierRes.Tier,
		Cadence:               models.CadenceProratedMonthly,
		Currency:              currency,
		TotalDays:             pro.TotalDays,
		ProrataMultiplier:     pro.Multiplier,
		MonthlyBaseRate:       monthly,
		BaseAmount:            base,
		AddOnItems:            items,
		Subtotal:              subtotal,
		PlacementOrServiceFee: fee,
		TotalClientCharge:     total,
		AmountDueNow:          fee,
		AmountAtSettlement:    subtotal,
	}, nil
}

// computeMonthly prices long-term placements: the (tier, living arrangement)
// monthly rate, flat monthly add-ons, and per-unit surcharges for extra
// children and other dependents. The placement fee is due up front.
func computeMonthly(cat *RateCatalog, req models.BookingRequest, currency string, logger *zap.Logger) (*models.PricingBreakdown, error) {
	tierRes := resolveTierLogged(cat, req.HomeSizeTier, logger)
	monthly, err := cat.MonthlyRate(tierRes.Tier, req.LivingArrangement)
	if err != nil {
		return nil, err
	}
	base := utils.RoundMoney(monthly)

	items, err := priceAddOns(cat, req.AddOns, addOnContext{
		cadence: models.CadenceMonthly,
		tier:    tierRes.Tier,
	})
	if err != nil {
		return nil, err
	}
	items = append(items, monthlySurcharges(cat, req)...)

	subtotal := sumCharges(base, items)
	fee := placementFee(cat, tierRes.Tier, monthly)
	total := utils.RoundMoney(subtotal + fee)

	return &models.PricingBreakdown{
		Category:              req.Category,
		SubType:               req.SubType,
		HomeSizeTier:          tierRes.Tier,
		LivingArrangement:     req.LivingArrangement,
		Cadence:               models.CadenceMonthly,
		Currency:              currency,
		MonthlyBaseRate:       monthly,
		BaseAmount:            base,
		AddOnItems:            items,
		Subtotal:              subtotal,
		PlacementOrServiceFee: fee,
		TotalClientCharge:     total,
		AmountDueNow:          fee,
		AmountAtSettlement:    subtotal,
	}, nil
}

// monthlySurcharges builds per-unit surcharge line items for children beyond
// the included two and for other dependents beyond zero.
func monthlySurcharges(cat *RateCatalog, req models.BookingRequest) []models.AddOnLineItem {
	var items []models.AddOnLineItem
	if extra := req.ChildrenCount - extraChildThreshold; extra > 0 {
		items = append(items, finalizeItem(surchargeExtraChildren, cat.ExtraChildMonthlyRate(), float64(extra), "month"))
	}
	if req.OtherDependents > 0 {
		items = append(items, finalizeItem(surchargeExtraDependents, cat.ExtraDependentMonthly(), float64(req.OtherDependents), "month"))
	}
	return items
}

// sumCharges totals the base and finalized line items.
func sumCharges(base float64, items []models.AddOnLineItem) float64 {
	subtotal := base
	for _, it := range items {
		subtotal += it.LineTotal
	}
	return utils.RoundMoney(subtotal)
}
