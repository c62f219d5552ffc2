package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	StaticDir         string `mapstructure:"STATIC_DIR"`

	// Shared secret checked by /api/verify-password.
	AppPassword string `mapstructure:"APP_PASSWORD"`
	// Bearer token for the /admin endpoints; empty leaves them open.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	// Redis configuration. An empty address disables Redis.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSequenceDB int    `mapstructure:"REDIS_SEQUENCE_DB"`

	// Document behaviour.
	RecomputeTotals     bool `mapstructure:"RECOMPUTE_TOTALS"`
	ConversionDueDays   int  `mapstructure:"CONVERSION_DUE_DAYS"`
	StoreTimeoutSeconds int  `mapstructure:"STORE_TIMEOUT_SECONDS"`
}

// MemoryDatabaseURL selects the in-process store instead of MongoDB.
const MemoryDatabaseURL = "memory"

var AppConfig Config

// LoadConfig reads config.yaml (from "." or "./config") and the environment
// into AppConfig and returns it.
func LoadConfig() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	// Names used by the earlier Node deployment.
	_ = v.BindEnv("APP_PORT", "APP_PORT", "PORT")
	_ = v.BindEnv("DATABASE_URL", "DATABASE_URL", "MONGODB_URI")

	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "invoicely")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("APP_PASSWORD", "admin123")
	v.SetDefault("ADMIN_TOKEN", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SEQUENCE_DB", 0)
	v.SetDefault("RECOMPUTE_TOTALS", true)
	v.SetDefault("CONVERSION_DUE_DAYS", 30)
	v.SetDefault("STORE_TIMEOUT_SECONDS", 5)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
	return cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMemoryStore reports whether the in-process store was selected.
func (c Config) UsesMemoryStore() bool {
	return c.DatabaseURL == MemoryDatabaseURL
}

// StoreTimeout bounds a single document-store round trip.
func (c Config) StoreTimeout() time.Duration {
	if c.StoreTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}
