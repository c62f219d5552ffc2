package business

import (
	"context"
	"testing"

	memoryRepo "invoicely/database/repository/memory"
	"invoicely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigForRenderDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	repo := memoryRepo.NewStore().BusinessConfig()
	svc := &DefaultBusinessService{Repo: repo}

	cfg, err := svc.ConfigForRender(ctx)
	require.NoError(t, err)
	assert.Empty(t, cfg.BusinessName)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGetConfigPersistsDefault(t *testing.T) {
	ctx := context.Background()
	repo := memoryRepo.NewStore().BusinessConfig()
	svc := &DefaultBusinessService{Repo: repo}

	_, err := svc.GetConfig(ctx)
	require.NoError(t, err)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestSaveConfigMerges(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultBusinessService{Repo: memoryRepo.NewStore().BusinessConfig()}

	name, city := "Northside Motors", "Leeds"
	rate := models.Amount(65)
	_, err := svc.SaveConfig(ctx, models.BusinessConfigPatch{BusinessName: &name, HourlyRate: &rate})
	require.NoError(t, err)

	saved, err := svc.SaveConfig(ctx, models.BusinessConfigPatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Northside Motors", saved.BusinessName)
	assert.Equal(t, "Leeds", saved.City)
	assert.Equal(t, 65.0, saved.HourlyRate)

	rendered, err := svc.ConfigForRender(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.BusinessName, rendered.BusinessName)
}
