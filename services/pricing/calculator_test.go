package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nestcare/models"
)

// testEngine returns an engine with a fixed clock so "today" never drifts
// under the test dates.
func testEngine() *DefaultPricingEngine {
	return &DefaultPricingEngine{
		Catalog:  NewCatalogStore(DefaultRateCatalog()),
		Now:      func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) },
		Location: time.UTC,
		Currency: "ZAR",
	}
}

func TestEmergencyFiveHourScenario(t *testing.T) {
	// Emergency, one weekday, five hours, no add-ons:
	// 80/h x 5h = 400, plus the 35 service fee = 435.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category:    models.CategoryHourly,
		SubType:     models.SubTypeEmergency,
		Dates:       []string{monday},
		TimeWindows: []models.TimeWindow{{Start: mins(8, 0), End: mins(13, 0)}},
	})
	require.NoError(t, err)
	require.Equal(t, 400.0, bd.BaseAmount)
	require.Equal(t, 35.0, bd.PlacementOrServiceFee)
	require.Equal(t, 435.0, bd.TotalClientCharge)
	require.Equal(t, 435.0, bd.AmountDueNow)
	require.Equal(t, 0.0, bd.AmountAtSettlement)
}

func TestGapCoverageScenario(t *testing.T) {
	// Gap coverage, 6 days, family_hub: prorata 6/30 = 0.2 x 6800 = 1360 at
	// settlement; flat placement fee 2500 due now; no service fee on top.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category:     models.CategoryDailyProrated,
		SubType:      models.SubTypeTemporarySupport,
		Dates:        []string{monday, tuesday, wednesday, thursday, friday, saturday},
		HomeSizeTier: models.TierFamilyHub,
	})
	require.NoError(t, err)
	require.InDelta(t, 0.2, bd.ProrataMultiplier, 1e-12)
	require.Equal(t, 1360.0, bd.BaseAmount)
	require.Equal(t, 2500.0, bd.PlacementOrServiceFee)
	require.Equal(t, 2500.0, bd.AmountDueNow)
	require.Equal(t, 1360.0, bd.AmountAtSettlement)
	require.Equal(t, 3860.0, bd.TotalClientCharge)
}

func TestLongTermCookingScenario(t *testing.T) {
	// Long-term, epic_estates, live-out, cooking add-on: 11000 + 1500 =
	// 12500 monthly; placement fee round(11000 x 0.5) = 5500 due now.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category:          models.CategoryMonthly,
		SubType:           models.SubTypeLongTerm,
		Dates:             []string{"2025-04-01"},
		HomeSizeTier:      models.TierEpicEstates,
		LivingArrangement: models.LiveOut,
		AddOns:            []models.AddOn{models.AddOnCooking},
		ChildrenCount:     2,
	})
	require.NoError(t, err)
	require.Equal(t, 11000.0, bd.BaseAmount)
	require.Equal(t, 12500.0, bd.Subtotal)
	require.Equal(t, 5500.0, bd.PlacementOrServiceFee)
	require.Equal(t, 5500.0, bd.AmountDueNow)
	require.Equal(t, 12500.0, bd.AmountAtSettlement)
	require.Equal(t, 18000.0, bd.TotalClientCharge)
}

func TestDateDayHousekeepingScenario(t *testing.T) {
	// Date-day, one weekday, 8 hours, light-housekeeping on grand_estate:
	// hourly line 40 x 8 = 320, housekeeping day rate 170 x 1, fee 35. The
	// total is the sum of three independently computed lines.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category:     models.CategoryHourly,
		SubType:      models.SubTypeDateDay,
		Dates:        []string{wednesday},
		TimeWindows:  []models.TimeWindow{{Start: mins(9, 0), End: mins(17, 0)}},
		HomeSizeTier: models.TierGrandEstate,
		AddOns:       []models.AddOn{models.AddOnLightHousekeeping},
	})
	require.NoError(t, err)
	require.Equal(t, 320.0, bd.BaseAmount)
	require.Len(t, bd.AddOnItems, 1)
	require.Equal(t, 170.0, bd.AddOnItems[0].LineTotal)
	require.Equal(t, 35.0, bd.PlacementOrServiceFee)
	require.Equal(t, bd.BaseAmount+bd.AddOnItems[0].LineTotal+bd.PlacementOrServiceFee, bd.TotalClientCharge)
}

func TestPerDayStrategy(t *testing.T) {
	// Day-carer over Thu-Sun: 1 weekday x 350 + 3 weekend x 450 = 1700.
	// Four dates, so the service fee still applies.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category: models.CategoryDailyProrated,
		SubType:  models.SubTypeDayCarer,
		Dates:    []string{thursday, friday, saturday, sunday},
	})
	require.NoError(t, err)
	require.Equal(t, models.CadencePerDay, bd.Cadence)
	require.Equal(t, 1700.0, bd.BaseAmount)
	require.Equal(t, 35.0, bd.PlacementOrServiceFee)
	require.False(t, bd.FeeWaived)
	require.Equal(t, 1735.0, bd.TotalClientCharge)
}

func TestServiceFeeWaivedAtFiveDates(t *testing.T) {
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category: models.CategoryDailyProrated,
		SubType:  models.SubTypeDayCarer,
		Dates:    []string{monday, tuesday, wednesday, thursday, friday},
	})
	require.NoError(t, err)
	require.True(t, bd.FeeWaived)
	require.Equal(t, 0.0, bd.PlacementOrServiceFee)
}

func TestMonthlySurcharges(t *testing.T) {
	// Four children (two beyond the included two) and one other dependent:
	// 2 x 800 + 1 x 500 on top of base and add-ons.
	e := testEngine()
	bd, err := e.ComputePricing(models.BookingRequest{
		Category:          models.CategoryMonthly,
		SubType:           models.SubTypeLongTerm,
		Dates:             []string{"2025-04-01"},
		HomeSizeTier:      models.TierCozyNest,
		LivingArrangement: models.LiveIn,
		ChildrenCount:     4,
		OtherDependents:   1,
	})
	require.NoError(t, err)
	require.Equal(t, 7000.0, bd.BaseAmount)
	require.Len(t, bd.AddOnItems, 2)
	require.Equal(t, surchargeExtraChildren, bd.AddOnItems[0].Name)
	require.Equal(t, 1600.0, bd.AddOnItems[0].LineTotal)
	require.Equal(t, surchargeExtraDependents, bd.AddOnItems[1].Name)
	require.Equal(t, 500.0, bd.AddOnItems[1].LineTotal)
	require.Equal(t, 9100.0, bd.Subtotal)
}

func TestInvalidRequests(t *testing.T) {
	e := testEngine()

	cases := []struct {
		name string
		req  models.BookingRequest
	}{
		{"zero dates", models.BookingRequest{
			Category: models.CategoryHourly, SubType: models.SubTypeEmergency,
			TimeWindows: []models.TimeWindow{{Start: 0, End: 60}},
		}},
		{"past date", models.BookingRequest{
			Category: models.CategoryHourly, SubType: models.SubTypeEmergency,
			Dates:       []string{"2024-01-01"},
			TimeWindows: []models.TimeWindow{{Start: 0, End: 60}},
		}},
		{"duplicate date", models.BookingRequest{
			Category: models.CategoryHourly, SubType: models.SubTypeEmergency,
			Dates:       []string{monday, monday},
			TimeWindows: []models.TimeWindow{{Start: 0, End: 60}},
		}},
		{"category mismatch", models.BookingRequest{
			Category: models.CategoryMonthly, SubType: models.SubTypeEmergency,
			Dates: []string{monday},
		}},
		{"hourly without windows", models.BookingRequest{
			Category: models.CategoryHourly, SubType: models.SubTypeDateDay,
			Dates: []string{monday},
		}},
		{"monthly without tier", models.BookingRequest{
			Category: models.CategoryMonthly, SubType: models.SubTypeLongTerm,
			Dates: []string{monday}, LivingArrangement: models.LiveOut,
		}},
		{"monthly without living arrangement", models.BookingRequest{
			Category: models.CategoryMonthly, SubType: models.SubTypeLongTerm,
			Dates: []string{monday}, HomeSizeTier: models.TierFamilyHub,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.ComputePricing(tc.req)
			require.Error(t, err)
			require.True(t, HasCode(err, CodeInvalidBookingRequest), "got %v", err)
		})
	}
}

func TestComputePricingIdempotent(t *testing.T) {
	e := testEngine()
	req := models.BookingRequest{
		Category:     models.CategoryDailyProrated,
		SubType:      models.SubTypeTemporarySupport,
		Dates:        []string{monday, tuesday, wednesday, thursday, friday, saturday},
		HomeSizeTier: models.TierGrandEstate,
		AddOns:       []models.AddOn{models.AddOnCooking, models.AddOnDrivingSupport},
	}
	first, err := e.ComputePricing(req)
	require.NoError(t, err)
	second, err := e.ComputePricing(req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMonotonicityInHours(t *testing.T) {
	e := testEngine()
	prev := 0.0
	for hours := 1; hours <= 8; hours++ {
		bd, err := e.ComputePricing(models.BookingRequest{
			Category:    models.CategoryHourly,
			SubType:     models.SubTypeDateDay,
			Dates:       []string{monday},
			TimeWindows: []models.TimeWindow{{Start: mins(8, 0), End: mins(8+hours, 0)}},
		})
		require.NoError(t, err)
		require.Greater(t, bd.TotalClientCharge, prev)
		prev = bd.TotalClientCharge
	}
}

func TestMonotonicityInDays(t *testing.T) {
	e := testEngine()
	all := []string{monday, tuesday, wednesday, thursday, friday, saturday, "2025-03-10", "2025-03-11"}
	prev := 0.0
	for n := 5; n <= len(all); n++ {
		bd, err := e.ComputePricing(models.BookingRequest{
			Category:     models.CategoryDailyProrated,
			SubType:      models.SubTypeTemporarySupport,
			Dates:        all[:n],
			HomeSizeTier: models.TierFamilyHub,
		})
		require.NoError(t, err)
		require.Greater(t, bd.TotalClientCharge, prev)
		prev = bd.TotalClientCharge
	}
}

func TestUnknownRateKeyPropagates(t *testing.T) {
	doc := DefaultRateCatalog().Document()
	delete(doc.HourlyRates, models.SubTypeDateNight)
	e := testEngine()
	e.Catalog.Swap(NewRateCatalog(doc))

	_, err := e.ComputePricing(models.BookingRequest{
		Category:    models.CategoryHourly,
		SubType:     models.SubTypeDateNight,
		Dates:       []string{friday},
		TimeWindows: []models.TimeWindow{{Start: mins(18, 0), End: mins(23, 0)}},
	})
	require.Error(t, err)
	require.True(t, HasCode(err, CodeUnknownRateKey))
}
