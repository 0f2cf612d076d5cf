package financialsRepo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nestcare/models"
)

// Append inserts a new financials version and returns the stored record.
// The version number picks up from the newest record for the booking; the
// previous version is referenced, never touched. Concurrent appends for one
// booking race on the next version number; the unique (booking_id, version)
// index fails the loser's insert rather than storing a duplicate version.
func (r *mongoFinancialsRepo) Append(ctx context.Context, fin models.BookingFinancials) (*models.BookingFinancials, error) {
	if fin.ID == "" {
		fin.ID = uuid.New().String()
	}

	prev, err := r.GetCurrent(ctx, fin.BookingID)
	if err == nil && prev != nil {
		fin.Version = prev.Version + 1
		fin.Supersedes = prev.ID
	} else {
		fin.Version = 1
	}

	if _, err := r.coll.InsertOne(ctx, fin); err != nil {
		return nil, err
	}
	return &fin, nil
}

// GetByID returns one financials version by its ID.
func (r *mongoFinancialsRepo) GetByID(ctx context.Context, id string) (*models.BookingFinancials, error) {
	var fin models.BookingFinancials
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&fin); err != nil {
		return nil, err
	}
	return &fin, nil
}

// GetCurrent returns the newest financials version for a booking.
func (r *mongoFinancialsRepo) GetCurrent(ctx context.Context, bookingID string) (*models.BookingFinancials, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	var fin models.BookingFinancials
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}, opts).Decode(&fin); err != nil {
		return nil, err
	}
	return &fin, nil
}

// History returns every financials version for a booking, oldest first.
func (r *mongoFinancialsRepo) History(ctx context.Context, bookingID string) ([]models.BookingFinancials, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.BookingFinancials
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}
