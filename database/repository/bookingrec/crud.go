package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"nestcare/models"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, rec models.BookingRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var rec models.BookingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateQuote swaps in a superseding quote and the financials version now in
// force. The booking record points at the current version; prior financials
// stay untouched in their own collection.
func (r *mongoBookingRepo) UpdateQuote(ctx context.Context, id string, bd models.PricingBreakdown, financialsID string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"breakdown":             bd,
		"current_financials_id": financialsID,
		"updated_at":            time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

// SetStatus updates the booking lifecycle status.
func (r *mongoBookingRepo) SetStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
