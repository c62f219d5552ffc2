package pricing

import (
	"testing"

	"invoicely/models"

	"github.com/stretchr/testify/assert"
)

func TestTotalMatchesSumOfLines(t *testing.T) {
	cases := []struct {
		name  string
		items []models.LineItem
		want  string
	}{
		{"empty", nil, "0.00"},
		{"single part", []models.LineItem{{Quantity: 2, UnitPrice: 10}}, "20.00"},
		{"mixed", []models.LineItem{
			{Kind: models.KindParts, Quantity: 3, UnitPrice: 0.1},
			{Kind: models.KindLabor, Quantity: 1.5, UnitPrice: 85},
			{Kind: models.KindFee, Quantity: 1, UnitPrice: 4.99},
		}, "132.79"},
		{"fractional cents", []models.LineItem{{Quantity: 1, UnitPrice: 0.005}, {Quantity: 1, UnitPrice: 0.005}}, "0.01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(Total(tc.items)))

			var lines float64
			for _, it := range tc.items {
				lines += LineTotal(it.Quantity, it.UnitPrice)
			}
			assert.Equal(t, Format(lines), Format(Total(tc.items)))
		})
	}
}

func TestRecomputeOverwritesClientLineTotals(t *testing.T) {
	in := []models.LineItem{{Quantity: 2, UnitPrice: 10, LineTotal: 999}}

	out, total := Recompute(in)

	assert.Equal(t, 20.0, out[0].LineTotal)
	assert.Equal(t, 20.0, total)
	assert.Equal(t, 999.0, in[0].LineTotal)
}

func TestFormatKeepsStoredPrecision(t *testing.T) {
	v := LineTotal(3, 0.1)

	assert.InDelta(t, 0.3, v, 1e-12)
	assert.Equal(t, "0.30", Format(v))
	assert.Equal(t, "1234.50", Format(1234.5))
}

func TestFormatRoundsShortestDecimalHalfUp(t *testing.T) {
	assert.Equal(t, "1.01", Format(1.005))
	assert.Equal(t, "2.68", Format(2.675))
	assert.Equal(t, "0.13", Format(0.125))
}
