// Package pricing computes line and document totals. Arithmetic runs in
// decimal; results are stored as float64 at full precision and only rounded
// to cents when formatted for display.
package pricing

import (
	"invoicely/models"

	"github.com/shopspring/decimal"
)

// LineTotal returns quantity x unitPrice.
func LineTotal(quantity, unitPrice float64) float64 {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).InexactFloat64()
}

// Total sums quantity x unitPrice across items.
func Total(items []models.LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)))
	}
	return sum.InexactFloat64()
}

// Recompute overwrites every item's LineTotal and returns the new items with
// their sum.
func Recompute(items []models.LineItem) ([]models.LineItem, float64) {
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		it.LineTotal = LineTotal(it.Quantity, it.UnitPrice)
		out[i] = it
	}
	return out, Total(out)
}

// Format renders v with exactly two decimals.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
