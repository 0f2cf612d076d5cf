package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nestcare/models"
)

func TestNormalizeCanonicalisesEnums(t *testing.T) {
	req, err := NormalizeBookingInput(models.RawBookingInput{
		Category:          "  Monthly ",
		SubType:           "LONG_TERM",
		Dates:             []string{"2025-04-01"},
		HomeSizeTier:      "Epic_Estates",
		LivingArrangement: " Live_In ",
		ChildrenCount:     2,
	})
	require.NoError(t, err)
	require.Equal(t, models.CategoryMonthly, req.Category)
	require.Equal(t, models.SubTypeLongTerm, req.SubType)
	require.Equal(t, models.TierEpicEstates, req.HomeSizeTier)
	require.Equal(t, models.LiveIn, req.LivingArrangement)
	require.Equal(t, 2, req.ChildrenCount)
}

func TestNormalizeRejectsUnknownCategoryAndSubType(t *testing.T) {
	_, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "weekly",
		SubType:  "long_term",
	})
	require.True(t, HasCode(err, CodeInvalidBookingRequest))

	_, err = NormalizeBookingInput(models.RawBookingInput{
		Category: "monthly",
		SubType:  "au_pair",
	})
	require.True(t, HasCode(err, CodeInvalidBookingRequest))
}

func TestNormalizeAddOnAliases(t *testing.T) {
	req, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "monthly",
		SubType:  "long_term",
		Preferences: map[string]interface{}{
			"mealPrep":     true,
			"Housekeeping": "yes",
			"driving":      1,
			"standbyNanny": "selected",
			"ecd":          true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, []models.AddOn{
		models.AddOnCooking,
		models.AddOnLightHousekeeping,
		models.AddOnDrivingSupport,
		models.AddOnBackupNanny,
		models.AddOnECDTraining,
	}, req.AddOns)
}

func TestNormalizeHouseholdSupportArray(t *testing.T) {
	// JSON decoding hands the array over as []interface{}.
	req, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "hourly",
		SubType:  "emergency",
		Preferences: map[string]interface{}{
			"householdSupport": []interface{}{"cooking", "Driving", "pet_sitting"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []models.AddOn{models.AddOnCooking, models.AddOnDrivingSupport}, req.AddOns)

	req, err = NormalizeBookingInput(models.RawBookingInput{
		Category: "hourly",
		SubType:  "emergency",
		Preferences: map[string]interface{}{
			"household_support": []string{"special_needs"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []models.AddOn{models.AddOnSpecialNeeds}, req.AddOns)
}

func TestNormalizeFalseyAndUnknownPreferencesIgnored(t *testing.T) {
	req, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "hourly",
		SubType:  "date_night",
		Preferences: map[string]interface{}{
			"cooking":       false,
			"driving":       "no",
			"montessori":    float64(0),
			"petSitting":    true,
			"pushConsent":   true,
			"special_needs": nil,
		},
	})
	require.NoError(t, err)
	require.Empty(t, req.AddOns)
}

func TestNormalizeDeduplicatesAcrossAliases(t *testing.T) {
	req, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "monthly",
		SubType:  "long_term",
		Preferences: map[string]interface{}{
			"cooking":          true,
			"mealprep":         "true",
			"householdSupport": []interface{}{"meal_prep"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []models.AddOn{models.AddOnCooking}, req.AddOns)
}

func TestNormalizeOutputOrderIsStable(t *testing.T) {
	prefs := map[string]interface{}{
		"montessori":   true,
		"cooking":      true,
		"backup_nanny": true,
	}
	first, err := NormalizeBookingInput(models.RawBookingInput{
		Category: "monthly", SubType: "long_term", Preferences: prefs,
	})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := NormalizeBookingInput(models.RawBookingInput{
			Category: "monthly", SubType: "long_term", Preferences: prefs,
		})
		require.NoError(t, err)
		require.Equal(t, first.AddOns, again.AddOns)
	}
}
