package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL   string
	SessionFile  string
	HTTPTimeout  time.Duration
	PageSize     int
	WarehouseURL string

	// Fixture server settings, used by payrolld.
	ServerAddr   string
	ServerSecret string
}

func Load() Config {
	return Config{
		APIBaseURL:   getEnv("PAYROLL_API_URL", "http://127.0.0.1:8000/api/v1/"),
		SessionFile:  getEnv("PAYROLL_SESSION_FILE", ""),
		HTTPTimeout:  getEnvDuration("PAYROLL_HTTP_TIMEOUT", 30*time.Second),
		PageSize:     getEnvInt("PAYROLL_PAGE_SIZE", 100),
		WarehouseURL: getEnv("PAYROLL_WAREHOUSE_URL", ""),
		ServerAddr:   getEnv("PAYROLLD_ADDR", ":8000"),
		ServerSecret: getEnv("PAYROLLD_SECRET", "dev-secret"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
