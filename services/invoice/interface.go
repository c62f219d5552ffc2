package invoice

import (
	"context"
	"time"

	invoiceRepo "invoicely/database/repository/invoice"
	"invoicely/models"
	"invoicely/services/numbering"
)

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, input models.InvoiceInput) (*models.Invoice, error)
	SetInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo      invoiceRepo.InvoiceRepository
	Sequencer numbering.Sequencer
	// RecomputeTotals derives totals server-side instead of trusting the client.
	RecomputeTotals bool
	// Now is overridable in tests.
	Now func() time.Time
}

func (s *DefaultInvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
