package pricing

import (
	"strings"

	"nestcare/models"
)

// addOnAliases maps the preference keys and values older app builds send to
// canonical add-on keys. Unknown keys are ignored on purpose so newer client
// flags don't break pricing.
var addOnAliases = map[string]models.AddOn{
	"cooking":            models.AddOnCooking,
	"mealprep":           models.AddOnCooking,
	"meal_prep":          models.AddOnCooking,
	"lighthousekeeping":  models.AddOnLightHousekeeping,
	"light_housekeeping": models.AddOnLightHousekeeping,
	"housekeeping":       models.AddOnLightHousekeeping,
	"drivingsupport":     models.AddOnDrivingSupport,
	"driving_support":    models.AddOnDrivingSupport,
	"driving":            models.AddOnDrivingSupport,
	"specialneeds":       models.AddOnSpecialNeeds,
	"special_needs":      models.AddOnSpecialNeeds,
	"backupnanny":        models.AddOnBackupNanny,
	"backup_nanny":       models.AddOnBackupNanny,
	"standbynanny":       models.AddOnBackupNanny,
	"ecdtraining":        models.AddOnECDTraining,
	"ecd_training":       models.AddOnECDTraining,
	"ecd":                models.AddOnECDTraining,
	"montessori":         models.AddOnMontessori,
}

// NormalizeBookingInput converts the loosely-typed client payload into the
// canonical BookingRequest. Each add-on ends up with exactly one
// representation regardless of which alias or value shape selected it.
func NormalizeBookingInput(raw models.RawBookingInput) (models.BookingRequest, error) {
	category := models.BookingCategory(strings.ToLower(strings.TrimSpace(raw.Category)))
	switch category {
	case models.CategoryHourly, models.CategoryDailyProrated, models.CategoryMonthly:
	default:
		return models.BookingRequest{}, NewInvalidBookingRequest("unknown booking category %q", raw.Category)
	}

	subType := models.BookingSubType(strings.ToLower(strings.TrimSpace(raw.SubType)))
	if _, ok := strategyCategory(subType); !ok {
		return models.BookingRequest{}, NewInvalidBookingRequest("unknown booking sub-type %q", raw.SubType)
	}

	return models.BookingRequest{
		Category:          category,
		SubType:           subType,
		Dates:             raw.Dates,
		TimeWindows:       raw.TimeWindows,
		HomeSizeTier:      models.HomeSizeTier(strings.ToLower(strings.TrimSpace(raw.HomeSizeTier))),
		LivingArrangement: models.LivingArrangement(strings.ToLower(strings.TrimSpace(raw.LivingArrangement))),
		AddOns:            normalizeAddOns(raw.Preferences),
		ChildrenCount:     raw.ChildrenCount,
		OtherDependents:   raw.OtherDependents,
	}, nil
}

// normalizeAddOns flattens a preferences object into the canonical add-on
// set. Keys may carry booleans, truthy strings, or appear inside a
// householdSupport string array.
func normalizeAddOns(prefs map[string]interface{}) []models.AddOn {
	chosen := make(map[models.AddOn]bool)

	for key, value := range prefs {
		normKey := strings.ToLower(strings.TrimSpace(key))
		if normKey == "householdsupport" || normKey == "household_support" {
			for _, entry := range toStringSlice(value) {
				if addOn, ok := addOnAliases[strings.ToLower(strings.TrimSpace(entry))]; ok {
					chosen[addOn] = true
				}
			}
			continue
		}
		addOn, ok := addOnAliases[normKey]
		if !ok {
			continue
		}
		if truthy(value) {
			chosen[addOn] = true
		}
	}

	var out []models.AddOn
	for _, name := range addOnOrder {
		if chosen[name] {
			out = append(out, name)
		}
	}
	return out
}

func toStringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		var out []string
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{vv}
	}
	return nil
}

func truthy(v interface{}) bool {
	switch vv := v.(type) {
	case bool:
		return vv
	case string:
		switch strings.ToLower(strings.TrimSpace(vv)) {
		case "true", "yes", "1", "selected":
			return true
		}
	case float64:
		return vv != 0
	case int:
		return vv != 0
	}
	return false
}
