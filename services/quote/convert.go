package quote

import (
	"context"
	"strings"

	"invoicely/models"
	"invoicely/services/numbering"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultConversionDueDays = 30

func (s *DefaultQuoteService) ConvertQuote(ctx context.Context, id string, dueDate string) (*models.Invoice, error) {
	logger := utils.GetLogger()

	q, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	number, err := s.Sequencer.Next(ctx, numbering.InvoicePrefix)
	if err != nil {
		return nil, models.WrapStore("failed to number invoice", err)
	}

	now := s.now()
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		days := s.ConversionDueDays
		if days <= 0 {
			days = defaultConversionDueDays
		}
		dueDate = now.AddDate(0, 0, days).Format(dateLayout)
	}

	inv := &models.Invoice{
		ID:                 uuid.New().String(),
		Number:             number,
		Date:               now.Format(dateLayout),
		DueDate:            dueDate,
		ClientName:         q.ClientName,
		ClientEmail:        q.ClientEmail,
		VehicleInformation: q.VehicleInformation,
		Items:              append([]models.LineItem{}, q.Items...),
		Total:              q.Total,
		Status:             models.InvoicePending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	if _, err := s.Repo.SetStatus(ctx, q.ID, models.QuoteConverted); err != nil {
		logger.Error("failed to mark quote converted, removing invoice",
			zap.String("quoteId", q.ID), zap.String("invoiceId", inv.ID), zap.Error(err))
		if delErr := s.Invoices.Delete(context.WithoutCancel(ctx), inv.ID); delErr != nil {
			logger.Error("failed to remove invoice after conversion failure",
				zap.String("invoiceId", inv.ID), zap.Error(delErr))
		}
		return nil, models.WrapStore("failed to mark quote converted", err)
	}

	logger.Info("quote converted",
		zap.String("quoteId", q.ID), zap.String("invoiceNumber", inv.Number))
	return inv, nil
}
