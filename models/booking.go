package models

// BookingCategory determines the billing cadence of a booking.
type BookingCategory string

const (
	CategoryHourly        BookingCategory = "hourly"
	CategoryDailyProrated BookingCategory = "daily_prorated"
	CategoryMonthly       BookingCategory = "monthly"
)

// BookingSubType is the specific service kind requested.
type BookingSubType string

const (
	SubTypeEmergency        BookingSubType = "emergency"
	SubTypeDateNight        BookingSubType = "date_night"
	SubTypeDateDay          BookingSubType = "date_day"
	SubTypeDayCarer         BookingSubType = "day_carer"
	SubTypeTemporarySupport BookingSubType = "temporary_support"
	SubTypeLongTerm         BookingSubType = "long_term"
)

// HomeSizeTier is one of five ordered property-size classifications.
type HomeSizeTier string

const (
	TierCozyNest        HomeSizeTier = "cozy_nest"
	TierFamilyHub       HomeSizeTier = "family_hub"
	TierGrandEstate     HomeSizeTier = "grand_estate"
	TierEpicEstates     HomeSizeTier = "epic_estates"
	TierMonumentalManor HomeSizeTier = "monumental_manor"
)

// OrderedTiers lists the home-size tiers from smallest to largest. Fee and
// rate rules are step functions over this order, so it must not be reshuffled.
var OrderedTiers = []HomeSizeTier{
	TierCozyNest,
	TierFamilyHub,
	TierGrandEstate,
	TierEpicEstates,
	TierMonumentalManor,
}

// LivingArrangement applies to monthly placements only.
type LivingArrangement string

const (
	LiveIn  LivingArrangement = "live_in"
	LiveOut LivingArrangement = "live_out"
)

// AddOn is a canonical add-on service key. Applicability depends on the
// booking category; see services/pricing.
type AddOn string

const (
	AddOnCooking           AddOn = "cooking"
	AddOnLightHousekeeping AddOn = "light_housekeeping"
	AddOnDrivingSupport    AddOn = "driving_support"
	AddOnSpecialNeeds      AddOn = "special_needs"
	AddOnBackupNanny       AddOn = "backup_nanny"
	AddOnECDTraining       AddOn = "ecd_training"
	AddOnMontessori        AddOn = "montessori"
)

// TimeWindow is a daily care window in minutes from midnight. End < Start
// means the window wraps past midnight into the next day.
type TimeWindow struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// BookingRequest carries the client-selected parameters of a booking. It is
// immutable for the lifetime of a pricing computation.
type BookingRequest struct {
	Category          BookingCategory   `bson:"category" json:"category"`
	SubType           BookingSubType    `bson:"sub_type" json:"subType"`
	Dates             []string          `bson:"dates" json:"dates"` // "YYYY-MM-DD", distinct, ascending
	TimeWindows       []TimeWindow      `bson:"time_windows,omitempty" json:"timeWindows,omitempty"`
	HomeSizeTier      HomeSizeTier      `bson:"home_size_tier,omitempty" json:"homeSizeTier,omitempty"`
	LivingArrangement LivingArrangement `bson:"living_arrangement,omitempty" json:"livingArrangement,omitempty"`
	AddOns            []AddOn           `bson:"add_ons,omitempty" json:"addOns,omitempty"`
	ChildrenCount     int               `bson:"children_count,omitempty" json:"childrenCount,omitempty"`
	OtherDependents   int               `bson:"other_dependents,omitempty" json:"otherDependents,omitempty"`
}

// RawBookingInput is the loosely-typed payload received from clients. Older
// app builds send add-on selections under several alias keys and mixed types,
// so the input is normalized into a BookingRequest at the boundary.
type RawBookingInput struct {
	Category          string                 `json:"category"`
	SubType           string                 `json:"subType"`
	Dates             []string               `json:"dates"`
	TimeWindows       []TimeWindow           `json:"timeWindows,omitempty"`
	HomeSizeTier      string                 `json:"homeSizeTier,omitempty"`
	LivingArrangement string                 `json:"livingArrangement,omitempty"`
	ChildrenCount     int                    `json:"childrenCount,omitempty"`
	OtherDependents   int                    `json:"otherDependents,omitempty"`
	Preferences       map[string]interface{} `json:"preferences,omitempty"`
}
