package configRepo

import (
	"context"

	"invoicely/models"
)

// BusinessConfigRepository stores the single business profile document.
type BusinessConfigRepository interface {
	// Find returns the stored config, or nil when none exists yet.
	Find(ctx context.Context) (*models.BusinessConfig, error)
	// GetOrCreate returns the stored config, inserting the default first when absent.
	GetOrCreate(ctx context.Context) (*models.BusinessConfig, error)
	// Save merges patch into the stored config, creating it when absent.
	Save(ctx context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error)
}
