package recordsRepo

import (
	"context"
	"time"

	"invoicely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DiagnosticRecordRepository writes and reads the free-form key/value collection.
type DiagnosticRecordRepository interface {
	Create(ctx context.Context, record *models.DiagnosticRecord) error
	// Latest returns up to limit records, newest first.
	Latest(ctx context.Context, limit int64) ([]models.DiagnosticRecord, error)
}

type mongoRecordRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoRecordRepo returns a DiagnosticRecordRepository using the "tests" collection.
func NewMongoRecordRepo(db *mongo.Database, timeout time.Duration) DiagnosticRecordRepository {
	return &mongoRecordRepo{
		coll:    db.Collection("tests"),
		timeout: timeout,
	}
}

func (r *mongoRecordRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(parent, timeout)
}
