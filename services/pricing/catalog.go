package pricing

import (
	"sync/atomic"
	"time"

	"nestcare/models"
)

// RateCatalog is an immutable rate-table snapshot. All lookups fail with an
// unknownRateKey error when no entry exists; the only defined fallback is the
// family_hub home-size tier rule, which is explicit and logged by callers.
type RateCatalog struct {
	doc models.RateDocument
}

// NewRateCatalog wraps a rate document. The document must not be mutated
// after being handed over.
func NewRateCatalog(doc models.RateDocument) *RateCatalog {
	return &RateCatalog{doc: doc}
}

// DefaultRateCatalog returns the compiled-in rate tables. These are the
// consolidated single source of truth; a newer mongo rate document, when
// present, replaces them wholesale via the CatalogStore.
func DefaultRateCatalog() *RateCatalog {
	return NewRateCatalog(models.RateDocument{
		Version:   1,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		HourlyRates: map[models.BookingSubType]map[models.DayClass]float64{
			models.SubTypeEmergency: {models.Weekday: 80, models.Weekend: 90},
			models.SubTypeDateNight: {models.Weekday: 55, models.Weekend: 65},
			models.SubTypeDateDay:   {models.Weekday: 40, models.Weekend: 50},
		},
		PerDayRates: map[models.DayClass]float64{
			models.Weekday: 350,
			models.Weekend: 450,
		},
		MonthlyRates: map[models.HomeSizeTier]map[models.LivingArrangement]float64{
			models.TierCozyNest:        {models.LiveOut: 5800, models.LiveIn: 7000},
			models.TierFamilyHub:       {models.LiveOut: 6800, models.LiveIn: 8200},
			models.TierGrandEstate:     {models.LiveOut: 9000, models.LiveIn: 10500},
			models.TierEpicEstates:     {models.LiveOut: 11000, models.LiveIn: 12800},
			models.TierMonumentalManor: {models.LiveOut: 14000, models.LiveIn: 16000},
		},
		HousekeepingDayRates: map[models.HomeSizeTier]float64{
			models.TierCozyNest:        100,
			models.TierFamilyHub:       130,
			models.TierGrandEstate:     170,
			models.TierEpicEstates:     210,
			models.TierMonumentalManor: 260,
		},
		HousekeepingMonthlyRates: map[models.HomeSizeTier]float64{
			models.TierCozyNest:        800,
			models.TierFamilyHub:       1000,
			models.TierGrandEstate:     1300,
			models.TierEpicEstates:     1600,
			models.TierMonumentalManor: 2000,
		},
		CookingDayRate:          150,
		CookingMonthlyRate:      1500,
		DrivingHourlyRate:       20,
		DrivingMonthlyRate:      900,
		SpecialNeedsHourlyRate:  25,
		SpecialNeedsMonthlyRate: 1200,
		BackupNannyMonthlyRate:  750,
		ECDTrainingMonthlyRate:  650,
		MontessoriMonthlyRate:   1100,
		FlatServiceFee:          35,
		FlatPlacementFee:        2500,
		ExtraChildMonthlyRate:   800,
		ExtraDependentMonthly:   500,
	})
}

// Version returns the catalog document version.
func (c *RateCatalog) Version() int {
	return c.doc.Version
}

// Document returns a copy of the underlying rate document, for admin views.
func (c *RateCatalog) Document() models.RateDocument {
	return c.doc
}

// TierResolution records how a home-size tier input was resolved. Fallback
// resolutions are a named business rule ("unmapped tiers price as
// family_hub"), not a silent default, and must be logged by the caller.
type TierResolution struct {
	Tier     models.HomeSizeTier
	Fallback bool
	Reason   string
}

// ResolveTier maps a home-size tier input onto a catalog tier, applying the
// family_hub fallback rule for unmapped or missing tiers.
func (c *RateCatalog) ResolveTier(t models.HomeSizeTier) TierResolution {
	if _, ok := c.doc.MonthlyRates[t]; ok {
		return TierResolution{Tier: t}
	}
	reason := "unmapped home-size tier " + string(t)
	if t == "" {
		reason = "home-size tier not set"
	}
	return TierResolution{Tier: models.TierFamilyHub, Fallback: true, Reason: reason}
}

// HourlyRate looks up the hourly rate for a sub-type and day class.
func (c *RateCatalog) HourlyRate(sub models.BookingSubType, class models.DayClass) (float64, error) {
	byClass, ok := c.doc.HourlyRates[sub]
	if !ok {
		return 0, NewUnknownRateKey("no hourly rates for sub-type %q", sub)
	}
	rate, ok := byClass[class]
	if !ok {
		return 0, NewUnknownRateKey("no hourly %s rate for sub-type %q", class, sub)
	}
	return rate, nil
}

// PerDayRate looks up the legacy day-carer daily rate for a day class.
func (c *RateCatalog) PerDayRate(class models.DayClass) (float64, error) {
	rate, ok := c.doc.PerDayRates[class]
	if !ok {
		return 0, NewUnknownRateKey("no per-day %s rate", class)
	}
	return rate, nil
}

// MonthlyRate looks up the monthly base rate for a resolved tier and living
// arrangement.
func (c *RateCatalog) MonthlyRate(tier models.HomeSizeTier, la models.LivingArrangement) (float64, error) {
	byLA, ok := c.doc.MonthlyRates[tier]
	if !ok {
		return 0, NewUnknownRateKey("no monthly rates for tier %q", tier)
	}
	rate, ok := byLA[la]
	if !ok {
		return 0, NewUnknownRateKey("no monthly %s rate for tier %q", la, tier)
	}
	return rate, nil
}

// HousekeepingDayRate returns the light-housekeeping day rate for a resolved tier.
func (c *RateCatalog) HousekeepingDayRate(tier models.HomeSizeTier) (float64, error) {
	rate, ok := c.doc.HousekeepingDayRates[tier]
	if !ok {
		return 0, NewUnknownRateKey("no housekeeping day rate for tier %q", tier)
	}
	return rate, nil
}

// HousekeepingMonthlyRate returns the light-housekeeping monthly rate for a resolved tier.
func (c *RateCatalog) HousekeepingMonthlyRate(tier models.HomeSizeTier) (float64, error) {
	rate, ok := c.doc.HousekeepingMonthlyRates[tier]
	if !ok {
		return 0, NewUnknownRateKey("no housekeeping monthly rate for tier %q", tier)
	}
	return rate, nil
}

// IsSmallTier reports whether the tier falls in the two smallest home-size
// tiers, which pay the flat placement fee instead of the half-base fee.
func IsSmallTier(tier models.HomeSizeTier) bool {
	return tier == models.TierCozyNest || tier == models.TierFamilyHub
}

func (c *RateCatalog) FlatServiceFee() float64        { return c.doc.FlatServiceFee }
func (c *RateCatalog) FlatPlacementFee() float64      { return c.doc.FlatPlacementFee }
func (c *RateCatalog) CookingDayRate() float64        { return c.doc.CookingDayRate }
func (c *RateCatalog) CookingMonthlyRate() float64    { return c.doc.CookingMonthlyRate }
func (c *RateCatalog) DrivingHourlyRate() float64     { return c.doc.DrivingHourlyRate }
func (c *RateCatalog) DrivingMonthlyRate() float64    { return c.doc.DrivingMonthlyRate }
func (c *RateCatalog) SpecialNeedsHourly() float64    { return c.doc.SpecialNeedsHourlyRate }
func (c *RateCatalog) SpecialNeedsMonthly() float64   { return c.doc.SpecialNeedsMonthlyRate }
func (c *RateCatalog) BackupNannyMonthly() float64    { return c.doc.BackupNannyMonthlyRate }
func (c *RateCatalog) ECDTrainingMonthly() float64    { return c.doc.ECDTrainingMonthlyRate }
func (c *RateCatalog) MontessoriMonthly() float64     { return c.doc.MontessoriMonthlyRate }
func (c *RateCatalog) ExtraChildMonthlyRate() float64 { return c.doc.ExtraChildMonthlyRate }
func (c *RateCatalog) ExtraDependentMonthly() float64 { return c.doc.ExtraDependentMonthly }

// CatalogStore hands out the current catalog snapshot and swaps in refreshed
// ones atomically, so in-flight pricing never sees a partially updated table.
type CatalogStore struct {
	current atomic.Pointer[RateCatalog]
}

// NewCatalogStore creates a store seeded with the given catalog.
func NewCatalogStore(initial *RateCatalog) *CatalogStore {
	s := &CatalogStore{}
	s.current.Store(initial)
	return s
}

// Current returns the catalog snapshot in force.
func (s *CatalogStore) Current() *RateCatalog {
	return s.current.Load()
}

// Swap replaces the catalog snapshot. Copy-on-write: the old snapshot stays
// valid for computations already holding it.
func (s *CatalogStore) Swap(c *RateCatalog) {
	s.current.Store(c)
}
