package render

import "invoicely/models"

type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindQuote   DocumentKind = "quote"
)

// Printable is the view of an invoice or quote that the document template
// consumes.
type Printable struct {
	Kind            DocumentKind
	Number          string
	Date            string
	SecondaryDate   string // due date or valid-until date
	ClientName      string
	ClientEmail     string
	Vehicle         models.VehicleInfo
	Items           []models.LineItem
	WorkDescription string
	Total           float64
}

func FromInvoice(inv *models.Invoice) Printable {
	return Printable{
		Kind:            KindInvoice,
		Number:          inv.Number,
		Date:            inv.Date,
		SecondaryDate:   inv.DueDate,
		ClientName:      inv.ClientName,
		ClientEmail:     inv.ClientEmail,
		Vehicle:         inv.VehicleInformation,
		Items:           inv.Items,
		WorkDescription: inv.WorkDescription,
		Total:           inv.Total,
	}
}

func FromQuote(q *models.Quote) Printable {
	return Printable{
		Kind:          KindQuote,
		Number:        q.Number,
		Date:          q.Date,
		SecondaryDate: q.ValidUntil,
		ClientName:    q.ClientName,
		ClientEmail:   q.ClientEmail,
		Vehicle:       q.VehicleInformation,
		Items:         q.Items,
		Total:         q.Total,
	}
}
