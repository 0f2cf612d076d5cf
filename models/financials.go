package models

import "time"

// BookingFinancials is the persisted financial split of a booking. Records
// are append-only: a modified booking gets a new record with a higher
// Version that supersedes the previous one, never an in-place update.
type BookingFinancials struct {
	ID         string `bson:"id" json:"id"`
	BookingID  string `bson:"booking_id" json:"bookingId"`
	Version    int    `bson:"version" json:"version"`
	Supersedes string `bson:"supersedes,omitempty" json:"supersedes,omitempty"`

	Currency              string  `bson:"currency" json:"currency"`
	TotalClientCharge     float64 `bson:"total_client_charge" json:"totalClientCharge"`
	AmountDueNow          float64 `bson:"amount_due_now" json:"amountDueNow"`
	AmountDueAtSettlement float64 `bson:"amount_due_at_settlement" json:"amountDueAtSettlement"`
	CommissionPercent     float64 `bson:"commission_percent" json:"commissionPercent"`
	CommissionAmount      float64 `bson:"commission_amount" json:"commissionAmount"`
	PlacementOrServiceFee float64 `bson:"placement_or_service_fee" json:"placementOrServiceFee"`
	AdminTotalRevenue     float64 `bson:"admin_total_revenue" json:"adminTotalRevenue"`
	NannyEarnings         float64 `bson:"nanny_earnings" json:"nannyEarnings"`

	ComputedAt time.Time `bson:"computed_at" json:"computedAt"`
}

// ValidationResult is the outcome of a reconciliation check.
type ValidationResult struct {
	Passed bool `bson:"passed" json:"passed"`
	// Variance between the independently recomputed client total and the
	// stored one. At most one minor currency unit when Passed.
	Variance float64 `bson:"variance" json:"variance"`
	// IdentityExact reports whether total == admin revenue + nanny earnings
	// held with zero tolerance.
	IdentityExact bool   `bson:"identity_exact" json:"identityExact"`
	Detail        string `bson:"detail,omitempty" json:"detail,omitempty"`
}
