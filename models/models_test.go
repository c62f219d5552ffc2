package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := map[string]float64{
		`12.5`:    12.5,
		`"12.50"`: 12.5,
		`" 7 "`:   7,
		`""`:      0,
		`null`:    0,
	}
	for in, want := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(in), &a), in)
		assert.Equal(t, want, a.Float64(), in)
	}

	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, InvoiceOverdue.Valid())
	assert.False(t, InvoiceStatus("converted").Valid())
	assert.True(t, QuoteConverted.Valid())
	assert.False(t, QuoteStatus("paid").Valid())
}

func TestLineItemKindLabel(t *testing.T) {
	assert.Equal(t, "Labor", KindLabor.Label())
	assert.Equal(t, "Other", LineItemKind("").Label())
	assert.Equal(t, "tyres", LineItemKind("tyres").Label())
	assert.False(t, LineItemKind("tyres").Valid())
}

func TestErrorTaxonomy(t *testing.T) {
	nf := NewNotFound("invoice", "abc")
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", nf)))
	assert.False(t, IsValidation(nf))

	cause := errors.New("socket closed")
	wrapped := WrapStore("find invoice", cause)
	var se *StoreError
	require.ErrorAs(t, wrapped, &se)
	assert.ErrorIs(t, wrapped, cause)

	assert.Same(t, nf, WrapStore("find invoice", nf))
	assert.Nil(t, WrapStore("noop", nil))
}

func TestBusinessConfigPatch(t *testing.T) {
	name := "Garage"
	rate := Amount(40)
	patch := BusinessConfigPatch{BusinessName: &name, HourlyRate: &rate}

	assert.Equal(t, map[string]any{"businessName": "Garage", "hourlyRate": 40.0}, patch.Fields())

	cfg := BusinessConfig{City: "Leeds"}
	patch.Apply(&cfg)
	assert.Equal(t, "Garage", cfg.BusinessName)
	assert.Equal(t, "Leeds", cfg.City)
	assert.Equal(t, 40.0, cfg.HourlyRate)
}

func TestVehicleInfoJSON(t *testing.T) {
	var v VehicleInfo
	require.NoError(t, json.Unmarshal([]byte(`{"year":2014,"make":"Ford","mileage":120000.5,"vin":"1FA","owner":{"seats":5}}`), &v))
	assert.Equal(t, "2014", v.Year)
	assert.Equal(t, "Ford", v.Make)
	assert.Equal(t, "120000.5", v.Mileage)
	assert.Equal(t, "1FA", v.Extra["vin"])
	assert.Equal(t, map[string]any{"seats": int64(5)}, v.Extra["owner"])

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"year":"2014","make":"Ford","mileage":"120000.5","vin":"1FA","owner":{"seats":5}}`, string(out))

	var plain VehicleInfo
	require.NoError(t, json.Unmarshal([]byte(`{"make":"Volvo"}`), &plain))
	assert.Equal(t, VehicleInfo{Make: "Volvo"}, plain)

	assert.Error(t, json.Unmarshal([]byte(`{"year":[2014]}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`"Ford"`), &v))
}

func TestVehicleInfoBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "year", Value: int32(2014)},
		{Key: "model", Value: "Focus"},
		{Key: "plate", Value: "AB12 CDE"},
	})
	require.NoError(t, err)

	var v VehicleInfo
	require.NoError(t, bson.Unmarshal(raw, &v))
	assert.Equal(t, "2014", v.Year)
	assert.Equal(t, "Focus", v.Model)
	assert.Equal(t, "AB12 CDE", v.Extra["plate"])

	again, err := bson.Marshal(v)
	require.NoError(t, err)
	var back bson.M
	require.NoError(t, bson.Unmarshal(again, &back))
	assert.Equal(t, bson.M{"year": "2014", "model": "Focus", "plate": "AB12 CDE"}, back)
}
