package repository

import (
	"time"

	configRepo "invoicely/database/repository/businessconfig"
	invoiceRepo "invoicely/database/repository/invoice"
	memoryRepo "invoicely/database/repository/memory"
	quoteRepo "invoicely/database/repository/quote"
	recordsRepo "invoicely/database/repository/records"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	InvoiceRepository          = invoiceRepo.InvoiceRepository
	QuoteRepository            = quoteRepo.QuoteRepository
	BusinessConfigRepository   = configRepo.BusinessConfigRepository
	DiagnosticRecordRepository = recordsRepo.DiagnosticRecordRepository
)

// Set bundles one repository per collection.
type Set struct {
	Invoices       InvoiceRepository
	Quotes         QuoteRepository
	BusinessConfig BusinessConfigRepository
	Records        DiagnosticRecordRepository
}

// NewMongoSet builds MongoDB-backed repositories on db.
func NewMongoSet(db *mongo.Database, timeout time.Duration) Set {
	return Set{
		Invoices:       invoiceRepo.NewMongoInvoiceRepo(db, timeout),
		Quotes:         quoteRepo.NewMongoQuoteRepo(db, timeout),
		BusinessConfig: configRepo.NewMongoBusinessConfigRepo(db, timeout),
		Records:        recordsRepo.NewMongoRecordRepo(db, timeout),
	}
}

// NewMemorySet builds repositories over a fresh in-process store.
func NewMemorySet() Set {
	s := memoryRepo.NewStore()
	return Set{
		Invoices:       s.Invoices(),
		Quotes:         s.Quotes(),
		BusinessConfig: s.BusinessConfig(),
		Records:        s.Records(),
	}
}
