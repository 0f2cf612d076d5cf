package models

import "time"

// BookingRecord is a persisted booking together with its quote and the ID of
// the financials version currently in force.
type BookingRecord struct {
	ID                  string           `bson:"id" json:"id"`
	ClientID            string           `bson:"client_id" json:"clientId"`
	NannyID             string           `bson:"nanny_id,omitempty" json:"nannyId,omitempty"`
	Request             BookingRequest   `bson:"request" json:"request"`
	Breakdown           PricingBreakdown `bson:"breakdown" json:"breakdown"`
	CurrentFinancialsID string           `bson:"current_financials_id" json:"currentFinancialsId"`
	Status              string           `bson:"status" json:"status"` // "quoted", "confirmed", "cancelled"
	CreatedAt           time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time        `bson:"updated_at" json:"updatedAt"`
}
