package configRepo

import (
	"context"
	"errors"
	"time"

	"invoicely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// singletonID pins the config to one document so that concurrent first reads
// collapse into a single upsert.
const singletonID = "business-config"

// MongoBusinessConfigRepo implements BusinessConfigRepository using MongoDB.
type MongoBusinessConfigRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBusinessConfigRepo uses the "businessconfigs" collection.
func NewMongoBusinessConfigRepo(db *mongo.Database, timeout time.Duration) BusinessConfigRepository {
	return &MongoBusinessConfigRepo{coll: db.Collection("businessconfigs"), timeout: timeout}
}

func (r *MongoBusinessConfigRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithTimeout(parent, 5*time.Second)
	}
	return context.WithTimeout(parent, r.timeout)
}

func (r *MongoBusinessConfigRepo) Find(ctx context.Context) (*models.BusinessConfig, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var cfg models.BusinessConfig
	if err := r.coll.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&cfg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.WrapStore("failed to fetch business config", err)
	}
	return &cfg, nil
}

func (r *MongoBusinessConfigRepo) GetOrCreate(ctx context.Context) (*models.BusinessConfig, error) {
	onInsert := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range models.DefaultBusinessConfigFields() {
		onInsert[k] = v
	}
	return r.upsert(ctx, bson.M{"$setOnInsert": onInsert})
}

func (r *MongoBusinessConfigRepo) Save(ctx context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now().UTC()

	// $set and $setOnInsert may not name the same path.
	onInsert := bson.M{}
	for k, v := range models.DefaultBusinessConfigFields() {
		if _, patched := set[k]; !patched {
			onInsert[k] = v
		}
	}
	update := bson.M{"$set": set}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	return r.upsert(ctx, update)
}

func (r *MongoBusinessConfigRepo) upsert(ctx context.Context, update bson.M) (*models.BusinessConfig, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var cfg models.BusinessConfig
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": singletonID}, update, opts).Decode(&cfg); err != nil {
		return nil, models.WrapStore("failed to save business config", err)
	}
	return &cfg, nil
}
