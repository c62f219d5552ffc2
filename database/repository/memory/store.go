// Package memoryRepo keeps every collection in process memory behind the same
// repository interfaces as the MongoDB implementation. It backs the test
// suites and DATABASE_URL=memory development runs.
package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	configRepo "invoicely/database/repository/businessconfig"
	invoiceRepo "invoicely/database/repository/invoice"
	quoteRepo "invoicely/database/repository/quote"
	recordsRepo "invoicely/database/repository/records"
	"invoicely/models"
)

// Store holds all collections under one lock.
type Store struct {
	mu       sync.RWMutex
	invoices map[string]models.Invoice
	quotes   map[string]models.Quote
	config   *models.BusinessConfig
	records  []models.DiagnosticRecord
	now      func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		invoices: map[string]models.Invoice{},
		quotes:   map[string]models.Quote{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Invoices() invoiceRepo.InvoiceRepository             { return &invoices{s} }
func (s *Store) Quotes() quoteRepo.QuoteRepository                   { return &quotes{s} }
func (s *Store) BusinessConfig() configRepo.BusinessConfigRepository { return &businessConfig{s} }
func (s *Store) Records() recordsRepo.DiagnosticRecordRepository     { return &records{s} }

func cloneItems(items []models.LineItem) []models.LineItem {
	return append([]models.LineItem{}, items...)
}

type invoices struct{ s *Store }

func (r *invoices) Create(_ context.Context, inv *models.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.invoices[inv.ID]; ok {
		return models.WrapStore("failed to create invoice", fmt.Errorf("duplicate id %s", inv.ID))
	}
	for _, existing := range r.s.invoices {
		if existing.Number == inv.Number {
			return models.WrapStore("failed to create invoice", fmt.Errorf("duplicate number %s", inv.Number))
		}
	}
	stored := *inv
	stored.Items = cloneItems(inv.Items)
	stored.VehicleInformation = inv.VehicleInformation.Clone()
	r.s.invoices[inv.ID] = stored
	return nil
}

func (r *invoices) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, models.NewNotFound("invoice", id)
	}
	inv.Items = cloneItems(inv.Items)
	inv.VehicleInformation = inv.VehicleInformation.Clone()
	return &inv, nil
}

func (r *invoices) List(_ context.Context) ([]models.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		inv.Items = cloneItems(inv.Items)
		inv.VehicleInformation = inv.VehicleInformation.Clone()
		out = append(out, inv)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *invoices) Update(_ context.Context, id string, changes invoiceRepo.InvoiceChanges) (*models.Invoice, error) {
	return r.mutate(id, changes.Apply)
}

func (r *invoices) SetStatus(_ context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	return r.mutate(id, func(inv *models.Invoice) { inv.Status = status })
}

func (r *invoices) mutate(id string, fn func(*models.Invoice)) (*models.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, models.NewNotFound("invoice", id)
	}
	fn(&inv)
	inv.VehicleInformation = inv.VehicleInformation.Clone()
	inv.UpdatedAt = r.s.now()
	r.s.invoices[id] = inv

	out := inv
	out.Items = cloneItems(inv.Items)
	out.VehicleInformation = inv.VehicleInformation.Clone()
	return &out, nil
}

func (r *invoices) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.invoices[id]; !ok {
		return models.NewNotFound("invoice", id)
	}
	delete(r.s.invoices, id)
	return nil
}

type quotes struct{ s *Store }

func (r *quotes) Create(_ context.Context, q *models.Quote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.quotes[q.ID]; ok {
		return models.WrapStore("failed to create quote", fmt.Errorf("duplicate id %s", q.ID))
	}
	for _, existing := range r.s.quotes {
		if existing.Number == q.Number {
			return models.WrapStore("failed to create quote", fmt.Errorf("duplicate number %s", q.Number))
		}
	}
	stored := *q
	stored.Items = cloneItems(q.Items)
	stored.VehicleInformation = q.VehicleInformation.Clone()
	r.s.quotes[q.ID] = stored
	return nil
}

func (r *quotes) GetByID(_ context.Context, id string) (*models.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.quotes[id]
	if !ok {
		return nil, models.NewNotFound("quote", id)
	}
	q.Items = cloneItems(q.Items)
	q.VehicleInformation = q.VehicleInformation.Clone()
	return &q, nil
}

func (r *quotes) List(_ context.Context) ([]models.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Quote, 0, len(r.s.quotes))
	for _, q := range r.s.quotes {
		q.Items = cloneItems(q.Items)
		q.VehicleInformation = q.VehicleInformation.Clone()
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *quotes) Update(_ context.Context, id string, changes quoteRepo.QuoteChanges) (*models.Quote, error) {
	return r.mutate(id, changes.Apply)
}

func (r *quotes) SetStatus(_ context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	return r.mutate(id, func(q *models.Quote) { q.Status = status })
}

func (r *quotes) mutate(id string, fn func(*models.Quote)) (*models.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[id]
	if !ok {
		return nil, models.NewNotFound("quote", id)
	}
	fn(&q)
	q.VehicleInformation = q.VehicleInformation.Clone()
	q.UpdatedAt = r.s.now()
	r.s.quotes[id] = q

	out := q
	out.Items = cloneItems(q.Items)
	out.VehicleInformation = q.VehicleInformation.Clone()
	return &out, nil
}

func (r *quotes) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.quotes[id]; !ok {
		return models.NewNotFound("quote", id)
	}
	delete(r.s.quotes, id)
	return nil
}

type businessConfig struct{ s *Store }

func (r *businessConfig) Find(_ context.Context) (*models.BusinessConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.config == nil {
		return nil, nil
	}
	cfg := *r.s.config
	return &cfg, nil
}

func (r *businessConfig) GetOrCreate(_ context.Context) (*models.BusinessConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.config == nil {
		r.s.config = &models.BusinessConfig{UpdatedAt: r.s.now()}
	}
	cfg := *r.s.config
	return &cfg, nil
}

func (r *businessConfig) Save(_ context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.config == nil {
		r.s.config = &models.BusinessConfig{}
	}
	patch.Apply(r.s.config)
	r.s.config.UpdatedAt = r.s.now()
	cfg := *r.s.config
	return &cfg, nil
}

type records struct{ s *Store }

func (r *records) Create(_ context.Context, record *models.DiagnosticRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.s.now()
	}
	r.s.records = append(r.s.records, *record)
	return nil
}

func (r *records) Latest(_ context.Context, limit int64) ([]models.DiagnosticRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.DiagnosticRecord, 0, len(r.s.records))
	for i := len(r.s.records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.s.records[i])
	}
	return out, nil
}
