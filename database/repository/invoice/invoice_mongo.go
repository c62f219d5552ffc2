package invoiceRepo

import (
	"context"
	"errors"
	"time"

	"invoicely/models"
	"invoicely/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "invoices"

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo(db *mongo.Database, timeout time.Duration) InvoiceRepository {
	repo := &MongoInvoiceRepo{coll: db.Collection(collectionName), timeout: timeout}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("invoice indexes not created", zap.Error(err))
	}
	return repo
}

// newContext bounds a single round trip to the configured timeout.
func (r *MongoInvoiceRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return models.WrapStore("failed to create invoice", err)
	}
	return nil
}

// GetByID retrieves an invoice by its public id.
func (r *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFound("invoice", id)
		}
		return nil, models.WrapStore("failed to fetch invoice "+id, err)
	}
	return &inv, nil
}

// List returns every invoice sorted by creation time, newest first.
func (r *MongoInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.WrapStore("failed to retrieve invoices", err)
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, models.WrapStore("failed to decode invoices", err)
	}
	return invoices, nil
}

// Update replaces the mutable fields and returns the updated document.
func (r *MongoInvoiceRepo) Update(ctx context.Context, id string, changes InvoiceChanges) (*models.Invoice, error) {
	set := bson.M{
		"dueDate":            changes.DueDate,
		"clientName":         changes.ClientName,
		"clientEmail":        changes.ClientEmail,
		"vehicleInformation": changes.VehicleInformation,
		"items":              changes.Items,
		"workDescription":    changes.WorkDescription,
		"total":              changes.Total,
	}
	if changes.Status != nil {
		set["status"] = *changes.Status
	}
	return r.findAndSet(ctx, id, set)
}

// SetStatus changes only the status field.
func (r *MongoInvoiceRepo) SetStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	return r.findAndSet(ctx, id, bson.M{"status": status})
}

func (r *MongoInvoiceRepo) findAndSet(ctx context.Context, id string, set bson.M) (*models.Invoice, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inv models.Invoice
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFound("invoice", id)
		}
		return nil, models.WrapStore("failed to update invoice "+id, err)
	}
	return &inv, nil
}

// Delete removes an invoice document by its id.
func (r *MongoInvoiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return models.WrapStore("failed to delete invoice "+id, err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFound("invoice", id)
	}
	return nil
}
