package models

// LineItemKind classifies a billable line.
type LineItemKind string

const (
	KindParts LineItemKind = "parts"
	KindLabor LineItemKind = "labor"
	KindFee   LineItemKind = "fee"
)

// LineItemType is one entry of the static line-item-types listing.
type LineItemType struct {
	Value LineItemKind `json:"value"`
	Label string       `json:"label"`
}

// LineItemTypes is the ordered catalogue of kinds served to clients.
var LineItemTypes = []LineItemType{
	{Value: KindParts, Label: "Parts"},
	{Value: KindLabor, Label: "Labor"},
	{Value: KindFee, Label: "Fee"},
}

// Valid reports whether k is one of the known kinds.
func (k LineItemKind) Valid() bool {
	for _, t := range LineItemTypes {
		if t.Value == k {
			return true
		}
	}
	return false
}

// Label returns the display label for k, the literal code for unknown kinds
// and "Other" when k is empty.
func (k LineItemKind) Label() string {
	if k == "" {
		return "Other"
	}
	for _, t := range LineItemTypes {
		if t.Value == k {
			return t.Label
		}
	}
	return string(k)
}

// LineItem is a single row on an invoice or quote.
type LineItem struct {
	Description string       `bson:"description" json:"description"`
	Kind        LineItemKind `bson:"type" json:"type"`
	Quantity    float64      `bson:"quantity" json:"quantity"`
	UnitPrice   float64      `bson:"price" json:"price"`
	LineTotal   float64      `bson:"total" json:"total"` // quantity x price, fixed at write time
}
