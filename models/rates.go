package models

import "time"

// DayClass splits calendar dates into the two rate classes. Which days fall
// in each class depends on the rate structure (see services/pricing).
type DayClass string

const (
	Weekday DayClass = "weekday"
	Weekend DayClass = "weekend"
)

// RateDocument is a versioned rate-catalog snapshot as stored in mongo.
// Documents are append-only reference data; the engine loads the newest one
// at startup and swaps it in atomically.
type RateDocument struct {
	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	// HourlyRates: subType -> dayClass -> R/hour.
	HourlyRates map[BookingSubType]map[DayClass]float64 `bson:"hourly_rates" json:"hourlyRates"`
	// PerDayRates: dayClass -> R/day (legacy day-carer bookings).
	PerDayRates map[DayClass]float64 `bson:"per_day_rates" json:"perDayRates"`
	// MonthlyRates: tier -> livingArrangement -> R/month.
	MonthlyRates map[HomeSizeTier]map[LivingArrangement]float64 `bson:"monthly_rates" json:"monthlyRates"`

	// Add-on tables.
	HousekeepingDayRates     map[HomeSizeTier]float64 `bson:"housekeeping_day_rates" json:"housekeepingDayRates"`
	HousekeepingMonthlyRates map[HomeSizeTier]float64 `bson:"housekeeping_monthly_rates" json:"housekeepingMonthlyRates"`
	CookingDayRate           float64                  `bson:"cooking_day_rate" json:"cookingDayRate"`
	CookingMonthlyRate       float64                  `bson:"cooking_monthly_rate" json:"cookingMonthlyRate"`
	DrivingHourlyRate        float64                  `bson:"driving_hourly_rate" json:"drivingHourlyRate"`
	DrivingMonthlyRate       float64                  `bson:"driving_monthly_rate" json:"drivingMonthlyRate"`
	SpecialNeedsHourlyRate   float64                  `bson:"special_needs_hourly_rate" json:"specialNeedsHourlyRate"`
	SpecialNeedsMonthlyRate  float64                  `bson:"special_needs_monthly_rate" json:"specialNeedsMonthlyRate"`
	BackupNannyMonthlyRate   float64                  `bson:"backup_nanny_monthly_rate" json:"backupNannyMonthlyRate"`
	ECDTrainingMonthlyRate   float64                  `bson:"ecd_training_monthly_rate" json:"ecdTrainingMonthlyRate"`
	MontessoriMonthlyRate    float64                  `bson:"montessori_monthly_rate" json:"montessoriMonthlyRate"`

	// Fees and surcharges.
	FlatServiceFee        float64 `bson:"flat_service_fee" json:"flatServiceFee"`
	FlatPlacementFee      float64 `bson:"flat_placement_fee" json:"flatPlacementFee"`
	ExtraChildMonthlyRate float64 `bson:"extra_child_monthly_rate" json:"extraChildMonthlyRate"`
	ExtraDependentMonthly float64 `bson:"extra_dependent_monthly" json:"extraDependentMonthly"`
}
