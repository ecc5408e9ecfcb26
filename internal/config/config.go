package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port             string
	Environment      string
	LogLevel         string
	CatalogueBackend string
	Database         DatabaseConfig
	Shipping         ShippingConfig
	Admin            AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ShippingConfig struct {
	FlatRate decimal.Decimal
	// FreeOver is the free-shipping threshold; nil disables it.
	FreeOver *decimal.Decimal
}

type AdminConfig struct {
	// APIKeyHash is the bcrypt hash of the admin API key. Empty disables
	// the admin endpoints.
	APIKeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOGUE_BACKEND", "memory")
	viper.SetDefault("SHIPPING_FLAT_RATE", "7.50")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:             getEnvOrViper("PORT", "8080"),
		Environment:      getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:         getEnvOrViper("LOG_LEVEL", "info"),
		CatalogueBackend: getEnvOrViper("CATALOGUE_BACKEND", "memory"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Admin: AdminConfig{
			APIKeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
	}

	flatRate, err := decimal.NewFromString(getEnvOrViper("SHIPPING_FLAT_RATE", "7.50"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FLAT_RATE: %w", err)
	}
	cfg.Shipping.FlatRate = flatRate

	if raw := getEnvOrViper("SHIPPING_FREE_OVER", ""); raw != "" {
		freeOver, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHIPPING_FREE_OVER: %w", err)
		}
		cfg.Shipping.FreeOver = &freeOver
	}

	switch cfg.CatalogueBackend {
	case "memory", "postgres":
	default:
		return nil, fmt.Errorf("CATALOGUE_BACKEND must be memory or postgres, got %q", cfg.CatalogueBackend)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
