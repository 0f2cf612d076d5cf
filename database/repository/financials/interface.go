package financialsRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"nestcare/database"
	"nestcare/models"
)

// FinancialsRepository stores BookingFinancials versions. The collection is
// append-only: recomputation inserts a superseding version, nothing is
// updated in place or deleted, so the audit trail stays intact.
type FinancialsRepository interface {
	Append(ctx context.Context, fin models.BookingFinancials) (*models.BookingFinancials, error)
	GetByID(ctx context.Context, id string) (*models.BookingFinancials, error)
	GetCurrent(ctx context.Context, bookingID string) (*models.BookingFinancials, error)
	History(ctx context.Context, bookingID string) ([]models.BookingFinancials, error)
}

type mongoFinancialsRepo struct {
	coll *mongo.Collection
}

// NewMongoFinancialsRepo returns a FinancialsRepository backed by MongoDB.
func NewMongoFinancialsRepo() FinancialsRepository {
	repo := &mongoFinancialsRepo{
		coll: database.DB().Collection("booking_financials"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create financials indexes: %v\n", err)
	}
	return repo
}
