package pricing

import (
	"nestcare/models"
	"nestcare/utils"
)

// addOnOrder fixes the order line items appear on a quote.
var addOnOrder = []models.AddOn{
	models.AddOnCooking,
	models.AddOnLightHousekeeping,
	models.AddOnDrivingSupport,
	models.AddOnSpecialNeeds,
	models.AddOnBackupNanny,
	models.AddOnECDTraining,
	models.AddOnMontessori,
}

// monthlyOnlyAddOns are available on long-term placements only.
var monthlyOnlyAddOns = map[models.AddOn]bool{
	models.AddOnBackupNanny: true,
	models.AddOnECDTraining: true,
	models.AddOnMontessori:  true,
}

// addOnContext carries the resolved duration an add-on is priced against.
type addOnContext struct {
	cadence    models.BillingCadence
	tier       models.HomeSizeTier // resolved via the catalog tier rule
	days       int
	totalHours float64
	prorata    float64
}

// priceAddOns builds one line item per selected add-on. Unit and quantity
// depend on billing cadence: within an hourly booking, cooking and
// light-housekeeping bill per day while driving and special-needs bill per
// hour; per-day and gap-coverage bookings scale the monthly add-on rate by
// the prorata multiplier; monthly placements pay the flat monthly rate.
// Unrecognized add-on keys and keys not applicable to the cadence are
// ignored, deliberately, to tolerate forward-compatible client flags.
func priceAddOns(cat *RateCatalog, selected []models.AddOn, ctx addOnContext) ([]models.AddOnLineItem, error) {
	chosen := make(map[models.AddOn]bool, len(selected))
	for _, a := range selected {
		chosen[a] = true
	}

	var items []models.AddOnLineItem
	for _, name := range addOnOrder {
		if !chosen[name] {
			continue
		}
		if ctx.cadence != models.CadenceMonthly && monthlyOnlyAddOns[name] {
			continue
		}
		item, ok, err := addOnLineItem(cat, name, ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func addOnLineItem(cat *RateCatalog, name models.AddOn, ctx addOnContext) (models.AddOnLineItem, bool, error) {
	var monthlyRate float64
	var err error

	switch ctx.cadence {
	case models.CadenceHourly:
		switch name {
		case models.AddOnCooking:
			return finalizeItem(name, cat.CookingDayRate(), float64(ctx.days), "day"), true, nil
		case models.AddOnLightHousekeeping:
			rate, err := cat.HousekeepingDayRate(ctx.tier)
			if err != nil {
				return models.AddOnLineItem{}, false, err
			}
			return finalizeItem(name, rate, float64(ctx.days), "day"), true, nil
		case models.AddOnDrivingSupport:
			return finalizeItem(name, cat.DrivingHourlyRate(), ctx.totalHours, "hour"), true, nil
		case models.AddOnSpecialNeeds:
			return finalizeItem(name, cat.SpecialNeedsHourly(), ctx.totalHours, "hour"), true, nil
		}
		return models.AddOnLineItem{}, false, nil

	case models.CadencePerDay, models.CadenceProratedMonthly:
		monthlyRate, err = monthlyAddOnRate(cat, name, ctx.tier)
		if err != nil {
			return models.AddOnLineItem{}, false, err
		}
		if monthlyRate == 0 {
			return models.AddOnLineItem{}, false, nil
		}
		return finalizeItem(name, monthlyRate, ctx.prorata, "month"), true, nil

	case models.CadenceMonthly:
		monthlyRate, err = monthlyAddOnRate(cat, name, ctx.tier)
		if err != nil {
			return models.AddOnLineItem{}, false, err
		}
		if monthlyRate == 0 {
			return models.AddOnLineItem{}, false, nil
		}
		return finalizeItem(name, monthlyRate, 1, "month"), true, nil
	}
	return models.AddOnLineItem{}, false, nil
}

// monthlyAddOnRate returns the flat monthly rate of an add-on, zero when the
// add-on has no monthly pricing.
func monthlyAddOnRate(cat *RateCatalog, name models.AddOn, tier models.HomeSizeTier) (float64, error) {
	switch name {
	case models.AddOnCooking:
		return cat.CookingMonthlyRate(), nil
	case models.AddOnLightHousekeeping:
		return cat.HousekeepingMonthlyRate(tier)
	case models.AddOnDrivingSupport:
		return cat.DrivingMonthlyRate(), nil
	case models.AddOnSpecialNeeds:
		return cat.SpecialNeedsMonthly(), nil
	case models.AddOnBackupNanny:
		return cat.BackupNannyMonthly(), nil
	case models.AddOnECDTraining:
		return cat.ECDTrainingMonthly(), nil
	case models.AddOnMontessori:
		return cat.MontessoriMonthly(), nil
	}
	return 0, nil
}

// finalizeItem rounds the line total at the point the item is finalized,
// never earlier.
func finalizeItem(name models.AddOn, unitRate, quantity float64, unit string) models.AddOnLineItem {
	return models.AddOnLineItem{
		Name:      name,
		UnitRate:  unitRate,
		Quantity:  quantity,
		Unit:      unit,
		LineTotal: utils.RoundMoney(unitRate * quantity),
	}
}
