package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nestcare/models"
	"nestcare/utils"
)

func TestCommissionTierBoundaries(t *testing.T) {
	// Monthly breakpoints are evaluated against the monthly base rate and
	// boundary values belong to the lower tier.
	cases := []struct {
		rate float64
		pct  float64
	}{
		{6999.99, 10},
		{7000.00, 10},
		{7000.01, 12},
		{9999.99, 12},
		{10000.00, 12},
		{10000.01, 15},
		{14000.00, 15},
	}
	for _, tc := range cases {
		bd := models.PricingBreakdown{Cadence: models.CadenceMonthly, MonthlyBaseRate: tc.rate}
		require.Equal(t, tc.pct, commissionPercent(bd), "rate %.2f", tc.rate)
	}
}

func TestShortTermCommissionIsFlat(t *testing.T) {
	for _, cadence := range []models.BillingCadence{
		models.CadenceHourly, models.CadencePerDay, models.CadenceProratedMonthly,
	} {
		bd := models.PricingBreakdown{Cadence: cadence, TotalClientCharge: 50000}
		require.Equal(t, shortTermCommissionPct, commissionPercent(bd), "cadence %s", cadence)
	}
}

func TestPlacementFeeStepFunction(t *testing.T) {
	cat := DefaultRateCatalog()

	// The two smallest tiers pay the flat fee regardless of base rate.
	require.Equal(t, 2500.0, placementFee(cat, models.TierCozyNest, 5800))
	require.Equal(t, 2500.0, placementFee(cat, models.TierFamilyHub, 6800))

	// The larger three pay half the monthly base.
	require.Equal(t, 4500.0, placementFee(cat, models.TierGrandEstate, 9000))
	require.Equal(t, 5500.0, placementFee(cat, models.TierEpicEstates, 11000))
	require.Equal(t, 7000.0, placementFee(cat, models.TierMonumentalManor, 14000))
}

func TestSplitEmergencyScenario(t *testing.T) {
	// 435 total: commission 10% = 43.50, admin 35 + 43.50 = 78.50, nanny
	// 356.50, and the identity holds to the cent.
	bd := models.PricingBreakdown{
		Cadence:               models.CadenceHourly,
		Currency:              "ZAR",
		TotalClientCharge:     435,
		AmountDueNow:          435,
		PlacementOrServiceFee: 35,
	}
	fin, err := splitBreakdown(bd, time.Now())
	require.NoError(t, err)
	require.Equal(t, 10.0, fin.CommissionPercent)
	require.Equal(t, 43.5, fin.CommissionAmount)
	require.Equal(t, 78.5, fin.AdminTotalRevenue)
	require.Equal(t, 356.5, fin.NannyEarnings)
	require.Equal(t,
		utils.MinorUnits(fin.TotalClientCharge),
		utils.MinorUnits(fin.AdminTotalRevenue)+utils.MinorUnits(fin.NannyEarnings),
	)
}

func TestSplitIdentityAcrossTotals(t *testing.T) {
	// The revenue identity must hold exactly for arbitrary 2-decimal totals,
	// including ones that are awkward in binary floating point.
	totals := []float64{0.01, 0.03, 1.10, 435, 3860, 12499.99, 18000, 99999.97}
	for _, total := range totals {
		bd := models.PricingBreakdown{
			Cadence:               models.CadenceHourly,
			TotalClientCharge:     total,
			PlacementOrServiceFee: 0,
		}
		fin, err := splitBreakdown(bd, time.Now())
		require.NoError(t, err)
		require.Equal(t,
			utils.MinorUnits(fin.TotalClientCharge),
			utils.MinorUnits(fin.AdminTotalRevenue)+utils.MinorUnits(fin.NannyEarnings),
			"total %.2f", total,
		)
		require.GreaterOrEqual(t, fin.NannyEarnings, 0.0)
		require.GreaterOrEqual(t, fin.CommissionAmount, 0.0)
	}
}

func TestNegativeEarningsRaisedNotClamped(t *testing.T) {
	// A fee above the client total means the rate tables are broken; the
	// splitter must refuse rather than clamp earnings to zero.
	bd := models.PricingBreakdown{
		Cadence:               models.CadenceMonthly,
		MonthlyBaseRate:       14000,
		TotalClientCharge:     100,
		PlacementOrServiceFee: 2500,
	}
	_, err := splitBreakdown(bd, time.Now())
	require.Error(t, err)
	require.True(t, HasCode(err, CodeNegativeEarnings))
}

func TestGapCoverageSplit(t *testing.T) {
	// Gap coverage scenario end to end: total 3860 with 2500 due now.
	bd := models.PricingBreakdown{
		Cadence:               models.CadenceProratedMonthly,
		TotalClientCharge:     3860,
		AmountDueNow:          2500,
		AmountAtSettlement:    1360,
		PlacementOrServiceFee: 2500,
	}
	fin, err := splitBreakdown(bd, time.Now())
	require.NoError(t, err)
	require.Equal(t, 386.0, fin.CommissionAmount)
	require.Equal(t, 2886.0, fin.AdminTotalRevenue)
	require.Equal(t, 974.0, fin.NannyEarnings)
	require.Equal(t, 2500.0, fin.AmountDueNow)
	require.Equal(t, 1360.0, fin.AmountDueAtSettlement)
}
