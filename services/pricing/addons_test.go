package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nestcare/models"
)

func TestHourlyCadenceMixedUnits(t *testing.T) {
	// Within an hourly booking, cooking and housekeeping bill per day while
	// driving and special-needs bill per hour.
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{
			models.AddOnCooking,
			models.AddOnLightHousekeeping,
			models.AddOnDrivingSupport,
			models.AddOnSpecialNeeds,
		},
		addOnContext{
			cadence:    models.CadenceHourly,
			tier:       models.TierFamilyHub,
			days:       2,
			totalHours: 10,
		},
	)
	require.NoError(t, err)
	require.Len(t, items, 4)

	require.Equal(t, models.AddOnCooking, items[0].Name)
	require.Equal(t, "day", items[0].Unit)
	require.Equal(t, 300.0, items[0].LineTotal) // 150 x 2 days

	require.Equal(t, models.AddOnLightHousekeeping, items[1].Name)
	require.Equal(t, 260.0, items[1].LineTotal) // 130 x 2 days

	require.Equal(t, models.AddOnDrivingSupport, items[2].Name)
	require.Equal(t, "hour", items[2].Unit)
	require.Equal(t, 200.0, items[2].LineTotal) // 20 x 10h

	require.Equal(t, models.AddOnSpecialNeeds, items[3].Name)
	require.Equal(t, 250.0, items[3].LineTotal) // 25 x 10h
}

func TestHousekeepingDayRateFollowsTier(t *testing.T) {
	cat := DefaultRateCatalog()
	expected := map[models.HomeSizeTier]float64{
		models.TierCozyNest:        100,
		models.TierFamilyHub:       130,
		models.TierGrandEstate:     170,
		models.TierEpicEstates:     210,
		models.TierMonumentalManor: 260,
	}
	for tier, rate := range expected {
		items, err := priceAddOns(cat,
			[]models.AddOn{models.AddOnLightHousekeeping},
			addOnContext{cadence: models.CadenceHourly, tier: tier, days: 1},
		)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, rate, items[0].UnitRate, "tier %s", tier)
	}
}

func TestProratedCadenceScalesMonthlyRates(t *testing.T) {
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{models.AddOnCooking, models.AddOnDrivingSupport},
		addOnContext{
			cadence: models.CadenceProratedMonthly,
			tier:    models.TierFamilyHub,
			days:    6,
			prorata: 0.2,
		},
	)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 300.0, items[0].LineTotal) // 1500 x 0.2
	require.Equal(t, "month", items[0].Unit)
	require.Equal(t, 180.0, items[1].LineTotal) // 900 x 0.2
}

func TestMonthlyOnlyAddOnsSkippedOffMonthly(t *testing.T) {
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{models.AddOnBackupNanny, models.AddOnECDTraining, models.AddOnMontessori},
		addOnContext{cadence: models.CadenceHourly, tier: models.TierFamilyHub, days: 1, totalHours: 5},
	)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMonthlyCadenceFlatRates(t *testing.T) {
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{models.AddOnBackupNanny, models.AddOnECDTraining, models.AddOnMontessori},
		addOnContext{cadence: models.CadenceMonthly, tier: models.TierFamilyHub},
	)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 750.0, items[0].LineTotal)
	require.Equal(t, 650.0, items[1].LineTotal)
	require.Equal(t, 1100.0, items[2].LineTotal)
}

func TestUnrecognizedAddOnIgnored(t *testing.T) {
	// Forward-compatible flags from newer clients must not break pricing.
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{"pet_sitting", models.AddOnCooking},
		addOnContext{cadence: models.CadenceHourly, tier: models.TierFamilyHub, days: 1},
	)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, models.AddOnCooking, items[0].Name)
}

func TestDuplicateSelectionPricedOnce(t *testing.T) {
	cat := DefaultRateCatalog()
	items, err := priceAddOns(cat,
		[]models.AddOn{models.AddOnCooking, models.AddOnCooking},
		addOnContext{cadence: models.CadenceHourly, tier: models.TierFamilyHub, days: 1},
	)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
