package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"nestcare/database"
	"nestcare/models"
)

// BookingRepository is the persisted-booking data access layer.
type BookingRepository interface {
	Create(ctx context.Context, rec models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	UpdateQuote(ctx context.Context, id string, bd models.PricingBreakdown, financialsID string) error
	SetStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
