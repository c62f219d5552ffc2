package invoiceRepo

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

func invoiceDoc(id, number string, status models.InvoiceStatus) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "number", Value: number},
		{Key: "date", Value: "2026-10-01"},
		{Key: "dueDate", Value: "2026-10-31"},
		{Key: "clientName", Value: "Ada"},
		{Key: "clientEmail", Value: "ada@example.com"},
		{Key: "items", Value: bson.A{
			bson.D{
				{Key: "description", Value: "Brake pads"},
				{Key: "type", Value: "parts"},
				{Key: "quantity", Value: 2.0},
				{Key: "price", Value: 10.0},
				{Key: "total", Value: 20.0},
			},
		}},
		{Key: "total", Value: 20.0},
		{Key: "status", Value: string(status)},
	}
}

func newTestRepo(mt *mtest.T) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{coll: mt.Coll, timeout: time.Second}
}

func TestMongoInvoiceRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "db.invoices"

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := newTestRepo(mt).Create(context.Background(), &models.Invoice{ID: "inv-1", Number: "INV-1"})
		assert.NoError(mt, err)
	})

	mt.Run("create duplicate number is a store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		err := newTestRepo(mt).Create(context.Background(), &models.Invoice{ID: "inv-1", Number: "INV-1"})
		var se *models.StoreError
		assert.ErrorAs(mt, err, &se)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, invoiceDoc("inv-1", "INV-1", models.InvoicePaid)))

		inv, err := newTestRepo(mt).GetByID(context.Background(), "inv-1")
		require.NoError(mt, err)
		assert.Equal(mt, "INV-1", inv.Number)
		assert.Equal(mt, models.InvoicePaid, inv.Status)
		require.Len(mt, inv.Items, 1)
		assert.Equal(mt, models.KindParts, inv.Items[0].Kind)
		assert.Equal(mt, 20.0, inv.Items[0].LineTotal)
	})

	mt.Run("get missing id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := newTestRepo(mt).GetByID(context.Background(), "nope")
		assert.True(mt, models.IsNotFound(err))
	})

	mt.Run("list", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			invoiceDoc("inv-2", "INV-2", models.InvoicePending),
			invoiceDoc("inv-1", "INV-1", models.InvoicePaid),
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		invoices, err := newTestRepo(mt).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, invoices, 2)
		assert.Equal(mt, "inv-2", invoices[0].ID)
	})

	mt.Run("list empty returns empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		invoices, err := newTestRepo(mt).List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, invoices)
		assert.Empty(mt, invoices)
	})

	mt.Run("set status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value", Value: invoiceDoc("inv-1", "INV-1", models.InvoiceOverdue),
		}))

		inv, err := newTestRepo(mt).SetStatus(context.Background(), "inv-1", models.InvoiceOverdue)
		require.NoError(mt, err)
		assert.Equal(mt, models.InvoiceOverdue, inv.Status)
	})

	mt.Run("update missing id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := newTestRepo(mt).Update(context.Background(), "nope", InvoiceChanges{ClientName: "x"})
		assert.True(mt, models.IsNotFound(err))
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, newTestRepo(mt).Delete(context.Background(), "inv-1"))
	})

	mt.Run("delete missing id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := newTestRepo(mt).Delete(context.Background(), "nope")
		assert.True(mt, models.IsNotFound(err))
	})

	mt.Run("delete store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		err := newTestRepo(mt).Delete(context.Background(), "inv-1")
		assert.Error(mt, err)
		assert.False(mt, models.IsNotFound(err))
	})
}

func TestInvoiceChangesApply(t *testing.T) {
	paid := models.InvoicePaid
	inv := models.Invoice{ID: "inv-1", Number: "INV-1", Status: models.InvoicePending}

	InvoiceChanges{ClientName: "Bob", Total: 12.5, Status: &paid}.Apply(&inv)

	assert.Equal(t, "Bob", inv.ClientName)
	assert.Equal(t, 12.5, inv.Total)
	assert.Equal(t, models.InvoicePaid, inv.Status)
	assert.Equal(t, "INV-1", inv.Number)
	assert.NotNil(t, inv.Items)
}
