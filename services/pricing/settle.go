package pricing

import (
	"fmt"
	"strings"

	"invoicely/models"
)

// Settle validates submitted items and decides the stored totals. With
// recompute set, every line total and the document total are derived from
// quantity x unitPrice; otherwise the client's figures are kept as sent.
func Settle(items []models.LineItem, clientTotal float64, recompute bool) ([]models.LineItem, float64, error) {
	for i, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return nil, 0, models.NewValidation(fmt.Sprintf("items[%d].description", i), "is required")
		}
		if !it.Kind.Valid() {
			return nil, 0, models.NewValidation(fmt.Sprintf("items[%d].type", i), fmt.Sprintf("unknown kind %q", it.Kind))
		}
		if it.Quantity < 0 {
			return nil, 0, models.NewValidation(fmt.Sprintf("items[%d].quantity", i), "must not be negative")
		}
		if it.UnitPrice < 0 {
			return nil, 0, models.NewValidation(fmt.Sprintf("items[%d].price", i), "must not be negative")
		}
	}

	if recompute {
		out, total := Recompute(items)
		return out, total, nil
	}
	if clientTotal < 0 {
		return nil, 0, models.NewValidation("total", "must not be negative")
	}
	return append([]models.LineItem{}, items...), clientTotal, nil
}
