package ratesRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nestcare/database"
	"nestcare/models"
)

// RateRepository reads and appends versioned rate-catalog documents. Rate
// documents are append-only reference data; publishing new rates means
// inserting a higher version, never editing an existing document.
type RateRepository interface {
	GetLatest(ctx context.Context) (*models.RateDocument, error)
	Publish(ctx context.Context, doc models.RateDocument) error
}

type mongoRateRepo struct {
	coll *mongo.Collection
}

// NewMongoRateRepo returns a RateRepository backed by MongoDB.
func NewMongoRateRepo() RateRepository {
	return &mongoRateRepo{
		coll: database.DB().Collection("rate_documents"),
	}
}

// GetLatest returns the newest rate document, or mongo.ErrNoDocuments when
// none has been published.
func (r *mongoRateRepo) GetLatest(ctx context.Context) (*models.RateDocument, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	var doc models.RateDocument
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Publish appends a new rate document. Its version must exceed the latest.
func (r *mongoRateRepo) Publish(ctx context.Context, doc models.RateDocument) error {
	latest, err := r.GetLatest(ctx)
	if err == nil && latest != nil && doc.Version <= latest.Version {
		return errors.New("rate document version must increase")
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return err
}
