package recordsRepo

import (
	"context"
	"time"

	"invoicely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new diagnostic record.
func (r *mongoRecordRepo) Create(ctx context.Context, record *models.DiagnosticRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return models.WrapStore("failed to store diagnostic record", err)
	}
	return nil
}

// Latest fetches the most recent records.
func (r *mongoRecordRepo) Latest(ctx context.Context, limit int64) ([]models.DiagnosticRecord, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.WrapStore("failed to retrieve diagnostic records", err)
	}
	defer cursor.Close(ctx)

	records := []models.DiagnosticRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, models.WrapStore("failed to decode diagnostic records", err)
	}
	return records, nil
}
