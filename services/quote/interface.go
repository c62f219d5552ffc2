package quote

import (
	"context"
	"time"

	invoiceRepo "invoicely/database/repository/invoice"
	quoteRepo "invoicely/database/repository/quote"
	"invoicely/models"
	"invoicely/services/numbering"
)

type QuoteService interface {
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	GetQuote(ctx context.Context, id string) (*models.Quote, error)
	CreateQuote(ctx context.Context, input models.QuoteInput) (*models.Quote, error)
	UpdateQuote(ctx context.Context, id string, input models.QuoteInput) (*models.Quote, error)
	SetQuoteStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	// ConvertQuote creates an invoice from the quote and marks the quote
	// converted. An empty dueDate means today plus ConversionDueDays.
	ConvertQuote(ctx context.Context, id string, dueDate string) (*models.Invoice, error)
}

type DefaultQuoteService struct {
	Repo              quoteRepo.QuoteRepository
	Invoices          invoiceRepo.InvoiceRepository
	Sequencer         numbering.Sequencer
	RecomputeTotals   bool
	ConversionDueDays int
	Now               func() time.Time
}

func (s *DefaultQuoteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
