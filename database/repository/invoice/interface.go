package invoiceRepo

import (
	"context"

	"invoicely/models"
)

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice document.
	Create(ctx context.Context, inv *models.Invoice) error
	// GetByID retrieves an invoice by its public id.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	// List returns every invoice, newest first.
	List(ctx context.Context) ([]models.Invoice, error)
	// Update replaces the mutable fields and returns the stored result.
	Update(ctx context.Context, id string, changes InvoiceChanges) (*models.Invoice, error)
	// SetStatus changes only the status field.
	SetStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error)
	// Delete removes an invoice by id.
	Delete(ctx context.Context, id string) error
}

// InvoiceChanges is the full set of client-editable invoice fields.
// Status is left untouched when nil.
type InvoiceChanges struct {
	DueDate            string
	ClientName         string
	ClientEmail        string
	VehicleInformation models.VehicleInfo
	Items              []models.LineItem
	WorkDescription    string
	Total              float64
	Status             *models.InvoiceStatus
}

// Apply writes the changes onto inv.
func (c InvoiceChanges) Apply(inv *models.Invoice) {
	inv.DueDate = c.DueDate
	inv.ClientName = c.ClientName
	inv.ClientEmail = c.ClientEmail
	inv.VehicleInformation = c.VehicleInformation
	inv.Items = append([]models.LineItem{}, c.Items...)
	inv.WorkDescription = c.WorkDescription
	inv.Total = c.Total
	if c.Status != nil {
		inv.Status = *c.Status
	}
}
