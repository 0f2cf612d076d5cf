package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nestcare/models"
)

func pricedPair(t *testing.T, e *DefaultPricingEngine, req models.BookingRequest) (models.PricingBreakdown, models.BookingFinancials) {
	t.Helper()
	bd, err := e.ComputePricing(req)
	require.NoError(t, err)
	fin, err := e.ComputeFinancials(*bd)
	require.NoError(t, err)
	return *bd, *fin
}

func TestReconciliationPassesOnConsistentPair(t *testing.T) {
	e := testEngine()
	reqs := []models.BookingRequest{
		{
			Category:    models.CategoryHourly,
			SubType:     models.SubTypeEmergency,
			Dates:       []string{monday},
			TimeWindows: []models.TimeWindow{{Start: mins(8, 0), End: mins(13, 0)}},
		},
		{
			Category:     models.CategoryDailyProrated,
			SubType:      models.SubTypeTemporarySupport,
			Dates:        []string{monday, tuesday, wednesday, thursday, friday, saturday},
			HomeSizeTier: models.TierFamilyHub,
			AddOns:       []models.AddOn{models.AddOnCooking},
		},
		{
			Category: models.CategoryDailyProrated,
			SubType:  models.SubTypeDayCarer,
			Dates:    []string{thursday, friday, saturday},
		},
		{
			Category:          models.CategoryMonthly,
			SubType:           models.SubTypeLongTerm,
			Dates:             []string{"2025-04-01"},
			HomeSizeTier:      models.TierEpicEstates,
			LivingArrangement: models.LiveOut,
			AddOns:            []models.AddOn{models.AddOnCooking, models.AddOnMontessori},
			ChildrenCount:     3,
		},
	}
	for _, req := range reqs {
		bd, fin := pricedPair(t, e, req)
		res := e.ValidateReconciliation(bd, fin)
		require.True(t, res.Passed, "sub-type %s: %s", req.SubType, res.Detail)
		require.True(t, res.IdentityExact)
		require.LessOrEqual(t, res.Variance, 0.01)
	}
}

func TestReconciliationCatchesTamperedTotal(t *testing.T) {
	e := testEngine()
	bd, fin := pricedPair(t, e, models.BookingRequest{
		Category:    models.CategoryHourly,
		SubType:     models.SubTypeEmergency,
		Dates:       []string{monday},
		TimeWindows: []models.TimeWindow{{Start: mins(8, 0), End: mins(13, 0)}},
	})

	fin.TotalClientCharge += 0.50

	res := e.ValidateReconciliation(bd, fin)
	require.False(t, res.Passed)
	// Total moved but the split components did not, so the identity breaks too.
	require.False(t, res.IdentityExact)
	require.NotEmpty(t, res.Detail)
}

func TestReconciliationCatchesRateDrift(t *testing.T) {
	// A rate published after booking creation must surface as a variance,
	// not be silently absorbed.
	e := testEngine()
	bd, fin := pricedPair(t, e, models.BookingRequest{
		Category:     models.CategoryDailyProrated,
		SubType:      models.SubTypeTemporarySupport,
		Dates:        []string{monday, tuesday, wednesday, thursday, friday, saturday},
		HomeSizeTier: models.TierFamilyHub,
	})

	doc := DefaultRateCatalog().Document()
	doc.MonthlyRates = map[models.HomeSizeTier]map[models.LivingArrangement]float64{
		models.TierCozyNest:        {models.LiveOut: 5800, models.LiveIn: 7000},
		models.TierFamilyHub:       {models.LiveOut: 7400, models.LiveIn: 8800},
		models.TierGrandEstate:     {models.LiveOut: 9000, models.LiveIn: 10500},
		models.TierEpicEstates:     {models.LiveOut: 11000, models.LiveIn: 12800},
		models.TierMonumentalManor: {models.LiveOut: 14000, models.LiveIn: 16000},
	}
	doc.Version = 2
	e.Catalog.Swap(NewRateCatalog(doc))

	res := e.ValidateReconciliation(bd, fin)
	require.False(t, res.Passed)
	require.Greater(t, res.Variance, 0.01)
	// The stored record is still internally consistent.
	require.True(t, res.IdentityExact)
}

func TestReconciliationToleratesOneCent(t *testing.T) {
	e := testEngine()
	bd, fin := pricedPair(t, e, models.BookingRequest{
		Category:    models.CategoryHourly,
		SubType:     models.SubTypeDateDay,
		Dates:       []string{wednesday},
		TimeWindows: []models.TimeWindow{{Start: mins(9, 0), End: mins(17, 0)}},
	})

	// One minor unit of drift between independent rounding paths is absorbed,
	// as long as the stored record keeps its internal identity.
	fin.TotalClientCharge += 0.01
	fin.NannyEarnings += 0.01

	res := e.ValidateReconciliation(bd, fin)
	require.True(t, res.Passed, res.Detail)
	require.Equal(t, 0.01, res.Variance)
}
