package recordsRepo

import (
	"context"
	"testing"
	"time"

	"invoicely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRecordRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create stamps time", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		rec := &models.DiagnosticRecord{Key: "test-1", Value: map[string]any{"message": "hi"}}

		require.NoError(mt, (&mongoRecordRepo{coll: mt.Coll, timeout: time.Second}).Create(context.Background(), rec))
		assert.False(mt, rec.CreatedAt.IsZero())
	})

	mt.Run("latest", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.tests", mtest.FirstBatch,
			bson.D{{Key: "key", Value: "test-2"}, {Key: "value", Value: bson.D{{Key: "n", Value: 2}}}},
			bson.D{{Key: "key", Value: "test-1"}, {Key: "value", Value: bson.D{{Key: "n", Value: 1}}}},
		))

		records, err := (&mongoRecordRepo{coll: mt.Coll, timeout: time.Second}).Latest(context.Background(), 3)
		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, "test-2", records[0].Key)
	})

	mt.Run("round trips are bounded by the timeout", func(mt *mtest.T) {
		repo := &mongoRecordRepo{coll: mt.Coll, timeout: 50 * time.Millisecond}
		ctx, cancel := repo.newContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(mt, ok)
		assert.WithinDuration(mt, time.Now().Add(50*time.Millisecond), deadline, 40*time.Millisecond)

		ctx, cancel = (&mongoRecordRepo{coll: mt.Coll}).newContext(context.Background())
		defer cancel()
		deadline, ok = ctx.Deadline()
		require.True(mt, ok)
		assert.WithinDuration(mt, time.Now().Add(5*time.Second), deadline, time.Second)
	})
}
