package invoice

import (
	"context"

	"invoicely/models"
)

// SetInvoiceStatus accepts any known status from any current status,
// including the current one and moves back to pending.
func (s *DefaultInvoiceService) SetInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, models.NewValidation("status", "unknown invoice status "+string(status))
	}
	return s.Repo.SetStatus(ctx, id, status)
}
