package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadConfigDatabaseOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "54321")
	t.Setenv("DB_USER", "metrics")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "metricsdb")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "54321", cfg.DBPort)
	assert.Equal(t, "metrics", cfg.DBUser)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, "metricsdb", cfg.DBName)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	err := ValidateConfig(&Config{
		JWTSecret: "secret",
		DBSSLMode: "disable",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_SSL_MODE")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
