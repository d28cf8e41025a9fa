package config

import (
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_AUTO_CREATE_SCHEMA", "false")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.AutoCreateSchema)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("EXPORT_URL_EXPIRY_SEC", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 900, cfg.ExportURLExpiry)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
}

func newKoanf(t *testing.T, values map[string]any) *koanf.Koanf {
	t.Helper()
	k := koanf.New(".")
	for key, v := range values {
		require.NoError(t, k.Set(key, v))
	}
	return k
}

func TestGetEnv(t *testing.T) {
	k := newKoanf(t, map[string]any{"TEST_ENV_VAR": "value"})

	assert.Equal(t, "value", getEnv(k, "TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv(k, "NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	k := newKoanf(t, map[string]any{
		"T": "true",
		"F": "false",
		"X": "invalid",
	})

	assert.True(t, getEnvBool(k, "T", false))
	assert.False(t, getEnvBool(k, "F", true))
	assert.True(t, getEnvBool(k, "X", true))
	assert.True(t, getEnvBool(k, "MISSING", true))
}

func TestGetEnvInt(t *testing.T) {
	k := newKoanf(t, map[string]any{
		"N": "123",
		"X": "invalid",
	})

	assert.Equal(t, 123, getEnvInt(k, "N", 0))
	assert.Equal(t, 10, getEnvInt(k, "X", 10))
	assert.Equal(t, 10, getEnvInt(k, "MISSING", 10))
}
