package quote

import (
	"context"
	"strings"

	quoteRepo "invoicely/database/repository/quote"
	"invoicely/models"
	"invoicely/services/numbering"
	"invoicely/services/pricing"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultQuoteService) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultQuoteService) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultQuoteService) CreateQuote(ctx context.Context, input models.QuoteInput) (*models.Quote, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	items, total, err := pricing.Settle(input.Items, input.Total.Float64(), s.RecomputeTotals)
	if err != nil {
		return nil, err
	}

	number, err := s.Sequencer.Next(ctx, numbering.QuotePrefix)
	if err != nil {
		return nil, models.WrapStore("failed to number quote", err)
	}

	now := s.now()
	q := &models.Quote{
		ID:                 uuid.New().String(),
		Number:             number,
		Date:               now.Format(dateLayout),
		ValidUntil:         strings.TrimSpace(input.ValidUntil),
		ClientName:         strings.TrimSpace(input.ClientName),
		ClientEmail:        strings.TrimSpace(input.ClientEmail),
		VehicleInformation: vehicleOrEmpty(input.VehicleInformation),
		Items:              items,
		Total:              total,
		Status:             models.QuotePending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(ctx, q); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("quote created", zap.String("id", q.ID), zap.String("number", q.Number))
	return q, nil
}

// UpdateQuote reports an unknown id before validating the body.
func (s *DefaultQuoteService) UpdateQuote(ctx context.Context, id string, input models.QuoteInput) (*models.Quote, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	changes := quoteRepo.QuoteChanges{
		ValidUntil:         strings.TrimSpace(input.ValidUntil),
		ClientName:         strings.TrimSpace(input.ClientName),
		ClientEmail:        strings.TrimSpace(input.ClientEmail),
		VehicleInformation: vehicleOrEmpty(input.VehicleInformation),
	}
	var err error
	changes.Items, changes.Total, err = pricing.Settle(input.Items, input.Total.Float64(), s.RecomputeTotals)
	if err != nil {
		return nil, err
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, models.NewValidation("status", "unknown quote status "+string(input.Status))
		}
		status := input.Status
		changes.Status = &status
	}
	return s.Repo.Update(ctx, id, changes)
}

func (s *DefaultQuoteService) SetQuoteStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, models.NewValidation("status", "unknown quote status "+string(status))
	}
	return s.Repo.SetStatus(ctx, id, status)
}

func (s *DefaultQuoteService) DeleteQuote(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validateInput(input models.QuoteInput) error {
	switch {
	case strings.TrimSpace(input.ClientName) == "":
		return models.NewValidation("clientName", "is required")
	case strings.TrimSpace(input.ClientEmail) == "":
		return models.NewValidation("clientEmail", "is required")
	case strings.TrimSpace(input.ValidUntil) == "":
		return models.NewValidation("validUntil", "is required")
	}
	return nil
}

func vehicleOrEmpty(v *models.VehicleInfo) models.VehicleInfo {
	if v == nil {
		return models.VehicleInfo{}
	}
	return *v
}
