package quoteRepo

import (
	"context"

	"invoicely/models"
)

// QuoteRepository defines methods for quote data access.
type QuoteRepository interface {
	Create(ctx context.Context, q *models.Quote) error
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	// List returns every quote, newest first.
	List(ctx context.Context) ([]models.Quote, error)
	Update(ctx context.Context, id string, changes QuoteChanges) (*models.Quote, error)
	SetStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error)
	Delete(ctx context.Context, id string) error
}

// QuoteChanges is the full set of client-editable quote fields.
type QuoteChanges struct {
	ValidUntil         string
	ClientName         string
	ClientEmail        string
	VehicleInformation models.VehicleInfo
	Items              []models.LineItem
	Total              float64
	Status             *models.QuoteStatus
}

// Apply writes the changes onto q.
func (c QuoteChanges) Apply(q *models.Quote) {
	q.ValidUntil = c.ValidUntil
	q.ClientName = c.ClientName
	q.ClientEmail = c.ClientEmail
	q.VehicleInformation = c.VehicleInformation
	q.Items = append([]models.LineItem{}, c.Items...)
	q.Total = c.Total
	if c.Status != nil {
		q.Status = *c.Status
	}
}
