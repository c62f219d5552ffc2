package quoteRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicely/models"
	"invoicely/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoQuoteRepo implements QuoteRepository using MongoDB.
type MongoQuoteRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoQuoteRepo creates a QuoteRepository backed by the "quotes" collection.
func NewMongoQuoteRepo(db *mongo.Database, timeout time.Duration) QuoteRepository {
	repo := &MongoQuoteRepo{coll: db.Collection("quotes"), timeout: timeout}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("quote indexes not created", zap.Error(err))
	}
	return repo
}

func (r *MongoQuoteRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithTimeout(parent, 5*time.Second)
	}
	return context.WithTimeout(parent, r.timeout)
}

func (r *MongoQuoteRepo) ensureIndexes() error {
	ctx, cancel := r.newContext(context.Background())
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_number")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_desc_idx")},
	})
	if err != nil {
		return fmt.Errorf("failed to create quote indexes: %w", err)
	}
	return nil
}

func (r *MongoQuoteRepo) Create(ctx context.Context, q *models.Quote) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return models.WrapStore("failed to create quote", err)
	}
	return nil
}

func (r *MongoQuoteRepo) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var q models.Quote
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFound("quote", id)
		}
		return nil, models.WrapStore("failed to fetch quote "+id, err)
	}
	return &q, nil
}

func (r *MongoQuoteRepo) List(ctx context.Context) ([]models.Quote, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, models.WrapStore("failed to retrieve quotes", err)
	}
	defer cursor.Close(ctx)

	quotes := []models.Quote{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, models.WrapStore("failed to decode quotes", err)
	}
	return quotes, nil
}

func (r *MongoQuoteRepo) Update(ctx context.Context, id string, changes QuoteChanges) (*models.Quote, error) {
	set := bson.M{
		"validUntil":         changes.ValidUntil,
		"clientName":         changes.ClientName,
		"clientEmail":        changes.ClientEmail,
		"vehicleInformation": changes.VehicleInformation,
		"items":              changes.Items,
		"total":              changes.Total,
	}
	if changes.Status != nil {
		set["status"] = *changes.Status
	}
	return r.findAndSet(ctx, id, set)
}

func (r *MongoQuoteRepo) SetStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	return r.findAndSet(ctx, id, bson.M{"status": status})
}

func (r *MongoQuoteRepo) findAndSet(ctx context.Context, id string, set bson.M) (*models.Quote, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var q models.Quote
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFound("quote", id)
		}
		return nil, models.WrapStore("failed to update quote "+id, err)
	}
	return &q, nil
}

func (r *MongoQuoteRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return models.WrapStore("failed to delete quote "+id, err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFound("quote", id)
	}
	return nil
}
