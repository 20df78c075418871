package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source kinds.
const (
	CatalogSourceStatic = "static"
	CatalogSourceSheets = "sheets"
)

const defaultEURRate = 117.0

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Currency  CurrencyConfig
	Scheduler SchedulerConfig
	MongoDB   MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string
}

// CatalogConfig selects where fuels, tractors, operations and crops come from.
type CatalogConfig struct {
	Source          string
	CredentialsPath string
	SpreadsheetID   string
	RefreshCron     string
}

// CurrencyConfig controls the EUR display rate.
type CurrencyConfig struct {
	DefaultEURRate float64
	RateURL        string
	RateCron       string
	RateTTL        time.Duration
}

// SchedulerConfig holds cron-related settings.
type SchedulerConfig struct {
	Timezone string
}

// MongoDBConfig holds settings for the calculation archive. An empty URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether a MongoDB archive should be opened.
func (m MongoDBConfig) Enabled() bool {
	return m.URI != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("EUR_RATE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("parse EUR_RATE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Source:          getenvWithDefault("CATALOG_SOURCE", CatalogSourceStatic),
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("CATALOG_SPREADSHEET_ID"),
			RefreshCron:     getenvWithDefault("CATALOG_REFRESH_CRON", "0 */6 * * *"),
		},
		Currency: CurrencyConfig{
			DefaultEURRate: parseRate(os.Getenv("EUR_RATE_DEFAULT")),
			RateURL:        os.Getenv("EUR_RATE_URL"),
			RateCron:       getenvWithDefault("EUR_RATE_CRON", "0 8 * * *"),
			RateTTL:        ttl,
		},
		Scheduler: SchedulerConfig{
			Timezone: getenvWithDefault("TIMEZONE", "Europe/Belgrade"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "agrocalc"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceSheets:
		if c.Catalog.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided for the sheets catalog")
		}
		if c.Catalog.SpreadsheetID == "" {
			return errors.New("CATALOG_SPREADSHEET_ID must be provided for the sheets catalog")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceStatic, CatalogSourceSheets, c.Catalog.Source)
	}

	if c.Catalog.RefreshCron == "" {
		return errors.New("CATALOG_REFRESH_CRON must not be empty")
	}

	if c.Currency.DefaultEURRate <= 0 {
		c.Currency.DefaultEURRate = defaultEURRate
	}

	if c.Currency.RateTTL <= 0 {
		return errors.New("EUR_RATE_TTL must be positive")
	}

	if c.Scheduler.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseRate mirrors the settings screen: anything unreadable or non-positive falls
// back to the default rate.
func parseRate(v string) float64 {
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil || rate <= 0 {
		return defaultEURRate
	}
	return rate
}
