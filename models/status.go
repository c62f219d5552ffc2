package models

// InvoiceStatus is the payment state of an invoice. Any value may follow any
// other; there is no transition graph.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// QuoteStatus is the decision state of a quote.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteAccepted  QuoteStatus = "accepted"
	QuoteRejected  QuoteStatus = "rejected"
	QuoteConverted QuoteStatus = "converted"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuotePending, QuoteAccepted, QuoteRejected, QuoteConverted:
		return true
	}
	return false
}
