package config

import (
	"errors"
	"os"
)

type Config struct {
	// App
	AppEnv   string
	Port     string
	LogLevel string

	// ClickUp
	ClickUpToken   string
	ClickUpBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ClickUpToken:   os.Getenv("CLICKUP_TOKEN"),
		ClickUpBaseURL: getEnv("CLICKUP_BASE_URL", "https://api.clickup.com/api/v2"),
	}

	if cfg.ClickUpToken == "" {
		return nil, errors.New("CLICKUP_TOKEN is not set")
	}

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
