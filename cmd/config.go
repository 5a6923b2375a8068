package cmd

import (
	"log/slog"
	"os"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort                 string
	StorageDriver            string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	ShipmentProgressSchedule string
	LogLevel                 slog.Level
}

// LoadConfig reads the environment after merging envFile into it. A missing
// file is not an error; variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("env file", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from lookup, applying defaults for unset keys.
func ConfigFromEnv(lookup func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:                 get("HTTP_PORT", "8080"),
		StorageDriver:            strings.ToLower(get("STORAGE_DRIVER", StorageMemory)),
		DBHost:                   get("DB_HOST", "localhost"),
		DBPort:                   get("DB_PORT", "5432"),
		DBUser:                   get("DB_USER", ""),
		DBPassword:               get("DB_PASSWORD", ""),
		DBName:                   get("DB_NAME", ""),
		DBSslMode:                get("DB_SSLMODE", "disable"),
		ShipmentProgressSchedule: get("SHIPMENT_PROGRESS_SCHEDULE", ""),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBUser == "" || cfg.DBName == "" {
			return Config{}, errs.NewValueIsRequiredError("DB_USER and DB_NAME")
		}
	default:
		return Config{}, errs.NewValueIsInvalidError("STORAGE_DRIVER")
	}

	return cfg, nil
}
