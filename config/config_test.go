package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "invoicely", cfg.DatabaseName)
	assert.Equal(t, "admin123", cfg.AppPassword)
	assert.True(t, cfg.RecomputeTotals)
	assert.Equal(t, 30, cfg.ConversionDueDays)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout())
	assert.False(t, cfg.UsesMemoryStore())
	assert.Equal(t, cfg, AppConfig)
}

func TestLoadConfigEnvironmentAliases(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "memory")
	t.Setenv("APP_PASSWORD", "s3cret")
	t.Setenv("RECOMPUTE_TOTALS", "false")
	t.Setenv("ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.UsesMemoryStore())
	assert.Equal(t, "s3cret", cfg.AppPassword)
	assert.False(t, cfg.RecomputeTotals)
	assert.True(t, IsProduction())
}

func TestStoreTimeoutFallback(t *testing.T) {
	assert.Equal(t, 5*time.Second, Config{}.StoreTimeout())
	assert.Equal(t, 2*time.Second, Config{StoreTimeoutSeconds: 2}.StoreTimeout())
}
