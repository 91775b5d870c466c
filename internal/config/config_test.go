package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "APP_ENV", "API_BASE_PATH", "LOG_LEVEL", "STORAGE_DRIVER", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "/api", cfg.APIBasePath)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_DRIVER", "DYNAMO")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://b.test")

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StorageDynamo, cfg.StorageDriver)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsDevelopment())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Load()
	cfg.StorageDriver = "postgres"
	assert.ErrorContains(t, cfg.Validate(), "unknown storage driver")
}

func TestValidate_BasePath(t *testing.T) {
	cfg := Load()
	cfg.APIBasePath = "api"
	assert.ErrorContains(t, cfg.Validate(), "must start with '/'")
}
