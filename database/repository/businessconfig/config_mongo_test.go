package configRepo

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

func TestMongoBusinessConfigRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	repo := func(mt *mtest.T) *MongoBusinessConfigRepo {
		return &MongoBusinessConfigRepo{coll: mt.Coll, timeout: time.Second}
	}

	mt.Run("find absent returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.businessconfigs", mtest.FirstBatch))

		cfg, err := repo(mt).Find(context.Background())
		require.NoError(mt, err)
		assert.Nil(mt, cfg)
	})

	mt.Run("get or create returns defaults", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: singletonID},
			{Key: "businessName", Value: ""},
			{Key: "hourlyRate", Value: 0.0},
		}}))

		cfg, err := repo(mt).GetOrCreate(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, "", cfg.BusinessName)
		assert.Equal(mt, 0.0, cfg.HourlyRate)
	})

	mt.Run("save merges", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: singletonID},
			{Key: "businessName", Value: "Shop"},
			{Key: "hourlyRate", Value: 95.0},
		}}))

		name := "Shop"
		rate := models.Amount(95)
		cfg, err := repo(mt).Save(context.Background(), models.BusinessConfigPatch{BusinessName: &name, HourlyRate: &rate})
		require.NoError(mt, err)
		assert.Equal(mt, "Shop", cfg.BusinessName)
		assert.Equal(mt, 95.0, cfg.HourlyRate)
	})

	mt.Run("save failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad"}))

		_, err := repo(mt).Save(context.Background(), models.BusinessConfigPatch{})
		var se *models.StoreError
		assert.ErrorAs(mt, err, &se)
	})
}
