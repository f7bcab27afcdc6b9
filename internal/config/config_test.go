package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLICKUP_TOKEN", "pk_test_token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.clickup.com/api/v2", cfg.ClickUpBaseURL)
	assert.Equal(t, "pk_test_token", cfg.ClickUpToken)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLICKUP_TOKEN", "pk_test_token")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CLICKUP_BASE_URL", "http://localhost:9999/api/v2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9999/api/v2", cfg.ClickUpBaseURL)
}

func TestLoad_MissingTokenFails(t *testing.T) {
	t.Setenv("CLICKUP_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLICKUP_TOKEN")
}
