package invoice

import (
	"context"
	"strings"

	invoiceRepo "invoicely/database/repository/invoice"
	"invoicely/models"
	"invoicely/services/numbering"
	"invoicely/services/pricing"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultInvoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultInvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateInvoice stores a new pending invoice numbered INV-<n> and dated today.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	items, total, err := pricing.Settle(input.Items, input.Total.Float64(), s.RecomputeTotals)
	if err != nil {
		return nil, err
	}

	number, err := s.Sequencer.Next(ctx, numbering.InvoicePrefix)
	if err != nil {
		return nil, models.WrapStore("failed to number invoice", err)
	}

	now := s.now()
	inv := &models.Invoice{
		ID:                 uuid.New().String(),
		Number:             number,
		Date:               now.Format(dateLayout),
		DueDate:            strings.TrimSpace(input.DueDate),
		ClientName:         strings.TrimSpace(input.ClientName),
		ClientEmail:        strings.TrimSpace(input.ClientEmail),
		VehicleInformation: vehicleOrEmpty(input.VehicleInformation),
		Items:              items,
		WorkDescription:    input.WorkDescription,
		Total:              total,
		Status:             models.InvoicePending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("invoice created", zap.String("id", inv.ID), zap.String("number", inv.Number))
	return inv, nil
}

// UpdateInvoice replaces the editable fields; status changes only when supplied.
// An unknown id is reported before the body is validated.
func (s *DefaultInvoiceService) UpdateInvoice(ctx context.Context, id string, input models.InvoiceInput) (*models.Invoice, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	changes := invoiceRepo.InvoiceChanges{
		DueDate:            strings.TrimSpace(input.DueDate),
		ClientName:         strings.TrimSpace(input.ClientName),
		ClientEmail:        strings.TrimSpace(input.ClientEmail),
		VehicleInformation: vehicleOrEmpty(input.VehicleInformation),
		WorkDescription:    input.WorkDescription,
	}
	var err error
	changes.Items, changes.Total, err = pricing.Settle(input.Items, input.Total.Float64(), s.RecomputeTotals)
	if err != nil {
		return nil, err
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, models.NewValidation("status", "unknown invoice status "+string(input.Status))
		}
		status := input.Status
		changes.Status = &status
	}
	return s.Repo.Update(ctx, id, changes)
}

func (s *DefaultInvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validateInput(input models.InvoiceInput) error {
	switch {
	case strings.TrimSpace(input.ClientName) == "":
		return models.NewValidation("clientName", "is required")
	case strings.TrimSpace(input.ClientEmail) == "":
		return models.NewValidation("clientEmail", "is required")
	case strings.TrimSpace(input.DueDate) == "":
		return models.NewValidation("dueDate", "is required")
	}
	return nil
}

func vehicleOrEmpty(v *models.VehicleInfo) models.VehicleInfo {
	if v == nil {
		return models.VehicleInfo{}
	}
	return *v
}
