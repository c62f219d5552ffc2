package diagnostics

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	recordsRepo "invoicely/database/repository/records"
	"invoicely/models"
)

// pullLimit is how many records Pull returns.
const pullLimit = 3

type DiagnosticsService interface {
	// Store writes a diagnostic record and returns it.
	Store(ctx context.Context) (*models.DiagnosticRecord, error)
	// Pull returns the newest diagnostic records.
	Pull(ctx context.Context) ([]models.DiagnosticRecord, error)
}

type DefaultDiagnosticsService struct {
	Repo recordsRepo.DiagnosticRecordRepository
	Now  func() time.Time
}

func (s *DefaultDiagnosticsService) Store(ctx context.Context) (*models.DiagnosticRecord, error) {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	rec := &models.DiagnosticRecord{
		Key: fmt.Sprintf("test-%d", now.UnixMilli()),
		Value: map[string]any{
			"message":      "Hello MongoDB!",
			"timestamp":    now,
			"randomNumber": rand.IntN(1000),
		},
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DefaultDiagnosticsService) Pull(ctx context.Context) ([]models.DiagnosticRecord, error) {
	return s.Repo.Latest(ctx, pullLimit)
}
