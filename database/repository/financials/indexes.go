package financialsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for the financials collection. The unique
// (booking_id, version) index is what keeps the append-only version chain
// free of duplicates when two requotes of one booking land at the same time.
func (r *mongoFinancialsRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}, {Key: "version", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("booking_version_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create financials indexes: %w", err)
	}
	return nil
}
