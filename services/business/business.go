package business

import (
	"context"

	configRepo "invoicely/database/repository/businessconfig"
	"invoicely/models"
)

type BusinessService interface {
	// GetConfig returns the stored profile, creating an empty one on first read.
	GetConfig(ctx context.Context) (*models.BusinessConfig, error)
	// SaveConfig merges the supplied fields into the profile.
	SaveConfig(ctx context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error)
	// ConfigForRender never writes; a missing profile renders as empty.
	ConfigForRender(ctx context.Context) (*models.BusinessConfig, error)
}

type DefaultBusinessService struct {
	Repo configRepo.BusinessConfigRepository
}

func (s *DefaultBusinessService) GetConfig(ctx context.Context) (*models.BusinessConfig, error) {
	return s.Repo.GetOrCreate(ctx)
}

func (s *DefaultBusinessService) SaveConfig(ctx context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error) {
	return s.Repo.Save(ctx, patch)
}

func (s *DefaultBusinessService) ConfigForRender(ctx context.Context) (*models.BusinessConfig, error) {
	cfg, err := s.Repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &models.BusinessConfig{}, nil
	}
	return cfg, nil
}
