package models

// BillingCadence is how a priced booking is billed out.
type BillingCadence string

const (
	CadenceHourly          BillingCadence = "hourly"
	CadencePerDay          BillingCadence = "per_day"
	CadenceProratedMonthly BillingCadence = "prorated_monthly"
	CadenceMonthly         BillingCadence = "monthly"
)

// AddOnLineItem is one finalized add-on charge on a quote.
type AddOnLineItem struct {
	Name      AddOn   `bson:"name" json:"name"`
	UnitRate  float64 `bson:"unit_rate" json:"unitRate"`
	Quantity  float64 `bson:"quantity" json:"quantity"`
	Unit      string  `bson:"unit" json:"unit"` // "hour", "day" or "month"
	LineTotal float64 `bson:"line_total" json:"lineTotal"`
}

// PricingBreakdown is the client-facing quote. Immutable once computed.
type PricingBreakdown struct {
	Category          BookingCategory   `bson:"category" json:"category"`
	SubType           BookingSubType    `bson:"sub_type" json:"subType"`
	HomeSizeTier      HomeSizeTier      `bson:"home_size_tier,omitempty" json:"homeSizeTier,omitempty"`
	LivingArrangement LivingArrangement `bson:"living_arrangement,omitempty" json:"livingArrangement,omitempty"`
	Cadence           BillingCadence    `bson:"cadence" json:"cadence"`
	Currency          string            `bson:"currency" json:"currency"`

	// Resolved duration, populated per cadence.
	TotalHours        float64 `bson:"total_hours,omitempty" json:"totalHours,omitempty"`
	WeekdayHours      float64 `bson:"weekday_hours,omitempty" json:"weekdayHours,omitempty"`
	WeekendHours      float64 `bson:"weekend_hours,omitempty" json:"weekendHours,omitempty"`
	WeekdayCount      int     `bson:"weekday_count,omitempty" json:"weekdayCount,omitempty"`
	WeekendCount      int     `bson:"weekend_count,omitempty" json:"weekendCount,omitempty"`
	TotalDays         int     `bson:"total_days,omitempty" json:"totalDays,omitempty"`
	ProrataMultiplier float64 `bson:"prorata_multiplier,omitempty" json:"prorataMultiplier,omitempty"`

	// MonthlyBaseRate is the catalog monthly rate the booking was priced
	// against. Zero for hourly and per-day bookings. The commission
	// breakpoints and the large-tier placement fee are evaluated against it.
	MonthlyBaseRate float64 `bson:"monthly_base_rate,omitempty" json:"monthlyBaseRate,omitempty"`

	BaseAmount float64         `bson:"base_amount" json:"baseAmount"`
	AddOnItems []AddOnLineItem `bson:"add_on_items,omitempty" json:"addOnItems,omitempty"`
	Subtotal   float64         `bson:"subtotal" json:"subtotal"` // base + add-ons, before fee

	// Placement fee (monthly / gap coverage) or flat service fee
	// (hourly / per-day); zero when waived.
	PlacementOrServiceFee float64 `bson:"placement_or_service_fee" json:"placementOrServiceFee"`
	FeeWaived             bool    `bson:"fee_waived,omitempty" json:"feeWaived,omitempty"`

	TotalClientCharge  float64 `bson:"total_client_charge" json:"totalClientCharge"`
	AmountDueNow       float64 `bson:"amount_due_now" json:"amountDueNow"`
	AmountAtSettlement float64 `bson:"amount_at_settlement" json:"amountAtSettlement"`
}
